package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/congo-pay/simplewallet/internal/config"
	"github.com/congo-pay/simplewallet/internal/infra"
	"github.com/congo-pay/simplewallet/internal/logging"
	"github.com/congo-pay/simplewallet/internal/server"
)

func main() {
	cfg, err := config.LoadSimulator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.LogLevel)

	backends, err := infra.OpenBackends(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("open state backend", "error", err)
		os.Exit(1)
	}
	defer backends.Close()

	srv, err := server.New(cfg, backends.Store, backends.Cache, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		backends.Close()
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()
	logger.Info("simulator listening", "address", cfg.Address(), "backend", cfg.StateBackend)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			backends.Close()
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		backends.Close()
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
