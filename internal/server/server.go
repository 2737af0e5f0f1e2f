package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
)

// Server wraps the HTTP server for the key-value node
type Server struct {
	httpServer *http.Server
}

// New creates a server for handler on address
func New(handler http.Handler, address string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    address,
			Handler: handler,
		},
	}
}

// Start runs the HTTP server and blocks until it stops
func (s *Server) Start() error {
	log.Printf("Node HTTP server starting on %s", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
