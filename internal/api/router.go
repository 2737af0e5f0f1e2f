package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router creates and configures the HTTP router
func Router(handler *Handler, metrics *Metrics, tracer *Tracer) http.Handler {
	router := mux.NewRouter()

	middleware := []mux.MiddlewareFunc{
		LoggingMiddleware,
		RecoveryMiddleware,
	}
	if metrics != nil {
		middleware = append(middleware, metrics.Middleware)
	}
	if tracer != nil {
		middleware = append(middleware, tracer.Middleware)
	}
	router.Use(middleware...)

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	api.HandleFunc("/stats", handler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/keys", handler.ListKeys).Methods(http.MethodGet)
	api.HandleFunc("/keys/{key}", handler.GetValue).Methods(http.MethodGet)
	api.HandleFunc("/keys/{key}", handler.SetValue).Methods(http.MethodPut)

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}
