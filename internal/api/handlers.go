package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sajjad-MoBe/LogKVStore/internal/kverrors"
	"github.com/sajjad-MoBe/LogKVStore/internal/storage"

	"github.com/gorilla/mux"
)

// Handler handles HTTP requests for the key-value store
type Handler struct {
	engine  *storage.Engine
	metrics *Metrics
}

// NewHandler creates a new API handler
func NewHandler(engine *storage.Engine, metrics *Metrics) *Handler {
	return &Handler{
		engine:  engine,
		metrics: metrics,
	}
}

// GetValue handles GET requests for retrieving values
func (h *Handler) GetValue(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeError(w,
			kverrors.New(kverrors.ErrorTypeInvalidInput, "key is required", nil),
			http.StatusBadRequest,
		)
		return
	}

	value, ok := h.engine.Get(key)
	if !ok {
		writeError(w,
			kverrors.New(kverrors.ErrorTypeInvalidInput, "key not found: "+key, nil),
			http.StatusNotFound,
		)
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"key":   key,
		"value": value,
	}, http.StatusOK)
}

// SetValue handles PUT requests for setting values
func (h *Handler) SetValue(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeError(w,
			kverrors.New(kverrors.ErrorTypeInvalidInput, "key is required", nil),
			http.StatusBadRequest,
		)
		return
	}

	var request struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w,
			kverrors.New(kverrors.ErrorTypeInvalidInput, "invalid request body", err),
			http.StatusBadRequest,
		)
		return
	}

	if err := h.engine.Set(key, request.Value); err != nil {
		writeError(w, err, statusFor(err))
		return
	}

	h.publishEngineMetrics()
	h.writeJSON(w, map[string]interface{}{
		"key":   key,
		"value": request.Value,
	}, http.StatusOK)
}

// ListKeys handles GET requests for listing all keys
func (h *Handler) ListKeys(w http.ResponseWriter, r *http.Request) {
	keys := h.engine.Keys()
	h.writeJSON(w, map[string]interface{}{
		"keys":  keys,
		"count": len(keys),
	}, http.StatusOK)
}

// Stats handles GET requests for engine statistics
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	m := h.engine.Metrics()
	h.publishEngineMetrics()
	h.writeJSON(w, map[string]interface{}{
		"keys":              h.engine.Len(),
		"sets":              m.SetCount,
		"gets":              m.GetCount,
		"recovered_records": m.RecoveredRecords,
		"skipped_lines":     m.SkippedLines,
		"errors":            m.ErrorCount,
	}, http.StatusOK)
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// The engine is purely in-memory on the read path; reaching this
	// handler with a live engine is the health signal.
	h.writeJSON(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"keys":      h.engine.Len(),
	}, http.StatusOK)
}

func (h *Handler) publishEngineMetrics() {
	if h.metrics == nil {
		return
	}
	m := h.engine.Metrics()
	h.metrics.UpdateEngineMetrics(h.engine.Len(), m.SetCount, m.GetCount, m.RecoveredRecords, m.SkippedLines)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
