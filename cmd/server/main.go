// Command server exposes meter identification as a JSON REST API.
//
// Endpoints:
//
//	POST /api/identify   body: {"text":"...","resplit":"none","scheme":"IAST"}
//	POST /api/scan       body: {"text":"...","scheme":"SLP"}
//	GET  /api/meters[?family=11]
//	GET  /healthz
//
// Responses are JSON, or MessagePack when the request accepts
// application/msgpack.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/cors"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/config"
	"github.com/cours-de-latin/chandas/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)

	id, err := newIdentifier(cfg.Identify, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(id, cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// newIdentifier builds the identifier from the identify settings,
// loading the catalogue extension when one is configured.
func newIdentifier(cfg config.IdentifyConfig, logger *slog.Logger) (*chandas.Identifier, error) {
	opts := []chandas.Option{
		chandas.WithLogger(logger),
		chandas.WithWorkers(cfg.Workers),
		chandas.WithPinMiddle(cfg.PinMiddle),
		chandas.WithDefaultMode(cfg.Mode()),
	}
	if cfg.CatalogPath != "" {
		c, err := chandas.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog loaded", slog.String("path", cfg.CatalogPath))
		opts = append(opts, chandas.WithCatalog(c))
	}
	return chandas.New(opts...), nil
}

// newHandler assembles routes and middleware.
func newHandler(id *chandas.Identifier, cfg *config.Config, logger *slog.Logger) http.Handler {
	api := &api{id: id, scheme: cfg.Identify.DefaultScheme, maxBody: cfg.Server.MaxBodyBytes, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/identify", api.handleIdentify)
	mux.HandleFunc("/api/scan", api.handleScan)
	mux.HandleFunc("/api/meters", api.handleMeters)
	mux.HandleFunc("/healthz", api.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins(),
		AllowedMethods:   cfg.CORS.Methods(),
		AllowedHeaders:   cfg.CORS.Headers(),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})

	return chain(recovery(logger), requestID, requestLogger(logger), c.Handler)(mux)
}
