package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/config"
	"github.com/SolaireOfAndor/Summit-sub001/internal/observability"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	flag.Parse()

	cfg, err := config.Load(config.WithEnvFile(*envFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	// A malformed record stops the site before it serves anything.
	store, err := catalog.Open()
	if err != nil {
		var violation *catalog.SchemaViolation
		if errors.As(err, &violation) {
			logger.Fatal("property catalog failed validation",
				zap.Int("index", violation.Index),
				zap.String("record", violation.Record),
				zap.String("field", violation.Field),
				zap.String("reason", violation.Reason),
			)
		}
		logger.Fatal("failed to load property catalog", zap.Error(err))
	}
	guides, err := cms.LoadGuides()
	if err != nil {
		logger.Fatal("failed to load guides", zap.Error(err))
	}
	logger.Info("content loaded", zap.Int("properties", store.Len()), zap.Int("guides", guides.Len()))

	srv, err := newServer(cfg, logger, store, guides)
	if err != nil {
		logger.Fatal("failed to initialise server", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr), zap.Bool("dev", cfg.DevMode))
	go func() {
		serverLogger.Info("summit living web listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
