package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sajjad-MoBe/LogKVStore/internal/kverrors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// RecoveryMiddleware recovers panics and writes JSON errors
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := kverrors.RecoverError(rec)
				writeError(w, err, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// writeError writes an error response to the client
func writeError(w http.ResponseWriter, err error, statusCode int) {
	errType := string(kverrors.ErrorTypeInternal)
	if kvErr, ok := err.(*kverrors.KVError); ok {
		errType = string(kvErr.Type)
	}

	response := ErrorResponse{}
	response.Error.Type = errType
	response.Error.Message = err.Error()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// statusFor maps a core error to an HTTP status code
func statusFor(err error) int {
	switch {
	case kverrors.IsInvalidKey(err), kverrors.IsInvalidValue(err), kverrors.IsInvalidInput(err):
		return http.StatusBadRequest
	case kverrors.IsWriteFailure(err), kverrors.IsReadFailure(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// LoggingMiddleware logs request details
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		log.Printf("%s %s %d", r.Method, r.URL.Path, rw.statusCode)
	})
}

// responseWriter is a custom response writer that captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
