package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sajjad-MoBe/LogKVStore/internal/api"
	"github.com/sajjad-MoBe/LogKVStore/internal/server"
	"github.com/sajjad-MoBe/LogKVStore/internal/storage"

	"github.com/spf13/cobra"
)

var (
	serveAddress   string
	serveDataFile  string
	jaegerEndpoint string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the key-value store over HTTP",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", ":8080", "Address for the node server to listen on")
	serveCmd.Flags().StringVarP(&serveDataFile, "data", "d", storage.DefaultDataFile, "Path to the append-only log file")
	serveCmd.Flags().StringVar(&jaegerEndpoint, "jaeger", "", "Jaeger collector endpoint for tracing (disabled when empty)")
}

func runServe(cmd *cobra.Command, args []string) {
	// Open the engine; recovery replays the log before we serve anything
	engine, err := storage.Open(serveDataFile)
	if err != nil {
		log.Fatalf("Failed to open engine: %v", err)
	}
	defer engine.Close()

	metrics := api.NewMetrics()

	var tracer *api.Tracer
	if jaegerEndpoint != "" {
		tracer, err = api.NewTracer("kvstore", jaegerEndpoint)
		if err != nil {
			log.Fatalf("Failed to initialize tracing: %v", err)
		}
	}

	handler := api.NewHandler(engine, metrics)
	srv := server.New(api.Router(handler, metrics, tracer), serveAddress)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v\n", err)
			cancel()
		}
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown\n", sig)
	case <-ctx.Done():
		log.Println("Shutting down due to error")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("Error during shutdown: %v\n", err)
	}
	if tracer != nil {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v\n", err)
		}
	}
}
