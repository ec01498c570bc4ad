package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/congo-pay/txengine/internal/config"
	"github.com/congo-pay/txengine/internal/engine"
	"github.com/congo-pay/txengine/internal/logging"
	"github.com/congo-pay/txengine/internal/record"
	"github.com/congo-pay/txengine/internal/report"
	"github.com/congo-pay/txengine/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel).With("run_id", uuid.NewString())

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: txengine <transactions.csv>")
		os.Exit(1)
	}
	path := os.Args[1]

	recs, err := record.ReadFile(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	runner := engine.Runner{
		Limit: cfg.WorkerLimit,
		OnRecordError: func(client uint32, rec record.Transaction, err error) {
			logger.Debug("record discarded", "client", client, "tx", rec.TX, "kind", rec.Kind.String(), "error", err)
		},
	}

	start := time.Now()
	reg, stats, err := runner.Run(context.Background(), recs)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	snapshot := reg.Snapshot()
	if err := report.Write(os.Stdout, snapshot); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}

	logger.Info("run complete",
		"records", stats.Records,
		"clients", stats.Clients,
		"discarded", stats.Discarded,
		"duration", time.Since(start).String(),
	)

	if !cfg.Serve {
		return
	}

	srv, err := server.New(cfg, snapshot, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
