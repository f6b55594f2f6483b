package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/inference-gateway/deskcast/config"
	constants "github.com/inference-gateway/deskcast/internal/constants"
	display "github.com/inference-gateway/deskcast/internal/display"
	handlers "github.com/inference-gateway/deskcast/internal/handlers"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	pointer "github.com/inference-gateway/deskcast/internal/pointer"
	cobra "github.com/spf13/cobra"

	_ "github.com/inference-gateway/deskcast/internal/display/robot"
	_ "github.com/inference-gateway/deskcast/internal/display/x11"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pointer server",
	Long: `Start an HTTP server that accepts pointer and keyboard events from viewers over
WebSocket and replays them on the host, and serves captures of the host screen.

Endpoints:
  GET /health          - Health check
  GET /api/v1/status   - Backend and mapping settings
  GET /api/v1/frame    - PNG screen capture, letterboxed with ?width=&height=
  WS  /ws/pointer      - Pointer, keyboard and frame channel`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		port, _ := cmd.Flags().GetInt("port")
		host, _ := cmd.Flags().GetString("host")

		if port != 0 {
			cfg.Server.Port = port
		}
		if host != "" {
			cfg.Server.Host = host
		}

		return startServer(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "server port (default: 8080)")
	serveCmd.Flags().String("host", "", "server host (default: 127.0.0.1)")
}

func startServer(cfg *config.Config) error {
	provider, err := display.Select(cfg.Pointer.Backend)
	if err != nil {
		return fmt.Errorf("failed to select display backend: %w", err)
	}

	controller, err := provider.GetController(cfg.Pointer.Display)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", provider.Info().Name, err)
	}

	backend := provider.Info().Name
	pointers := pointer.NewService(cfg, controller, backend)
	defer func() {
		if err := pointers.Close(); err != nil {
			logger.Warn("Failed to close pointer controller", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg, backend, pointers),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting pointer server", "address", addr, "backend", backend, "fit_mode", cfg.Pointer.FitMode)
		serverErrors <- server.ListenAndServe()
	}()

	printServerInfo(addr, backend)

	return waitForShutdown(server, serverErrors)
}

func newRouter(cfg *config.Config, backend string, pointers handlers.PointerHandler) http.Handler {
	apiHandler := handlers.NewAPIHandler(cfg, backend, pointers)
	wsHandler := handlers.NewWebSocketHandler(cfg, pointers)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", apiHandler.HandleHealth)
	mux.HandleFunc("/api/v1/status", apiHandler.HandleStatus)
	mux.HandleFunc("/api/v1/frame", apiHandler.HandleFrame)
	mux.HandleFunc("/ws/pointer", wsHandler.HandleWebSocket)

	return mux
}

func printServerInfo(addr, backend string) {
	fmt.Printf("Pointer server listening on http://%s\n", addr)
	fmt.Printf("   Backend: %s\n", backend)
	fmt.Printf("\nAvailable endpoints:\n")
	fmt.Printf("   GET  /health          - Health check\n")
	fmt.Printf("   GET  /api/v1/status   - Backend and mapping settings\n")
	fmt.Printf("   GET  /api/v1/frame    - PNG screen capture\n")
	fmt.Printf("   WS   /ws/pointer      - Pointer, keyboard and frame channel\n\n")
}

func waitForShutdown(server *http.Server, serverErrors chan error) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("Shutting down pointer server", "signal", sig.String())
		fmt.Printf("\nShutting down gracefully...\n")

		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Warn("Failed to force close server", "error", closeErr)
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
