package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/hyperledger/sawtooth-sdk-go/processor"

	"github.com/congo-pay/simplewallet/internal/config"
	"github.com/congo-pay/simplewallet/internal/handler"
	"github.com/congo-pay/simplewallet/internal/logging"
	"github.com/congo-pay/simplewallet/internal/wallet"
)

func main() {
	cfg, err := config.LoadProcessor(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.LogLevel)

	reg := handler.DefaultRegistration()
	h := handler.New(reg, wallet.NewApplicator(logger), logger)

	tp := processor.NewTransactionProcessor(cfg.ValidatorURL)
	tp.SetMaxQueueSize(uint(cfg.MaxQueueSize))
	if cfg.ThreadCount > 0 {
		tp.SetThreadCount(uint(cfg.ThreadCount))
	}
	tp.AddHandler(h)
	tp.ShutdownOnSignal(syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting transaction processor",
		"validator", cfg.ValidatorURL,
		"family", reg.Family,
		"versions", reg.Versions,
		"namespaces", reg.Prefixes,
	)

	if err := tp.Start(); err != nil {
		logger.Error("transaction processor stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("transaction processor exited cleanly")
}
