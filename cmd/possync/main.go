package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RachelleMaina/stocka-sync/internal/client/api"
	"github.com/RachelleMaina/stocka-sync/internal/client/cli"
	"github.com/RachelleMaina/stocka-sync/internal/client/iocli"
	"github.com/RachelleMaina/stocka-sync/internal/client/pull"
	"github.com/RachelleMaina/stocka-sync/internal/client/status"
	"github.com/RachelleMaina/stocka-sync/internal/client/storage/boltdb"
	"github.com/RachelleMaina/stocka-sync/internal/client/sync"
	"github.com/RachelleMaina/stocka-sync/internal/client/trigger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Backoffice URL")
	dbPath := flag.String("db", "possync.db", "Path to local database")
	probeInterval := flag.Duration("probe-interval", trigger.DefaultProbeInterval, "Connectivity probe interval for watch mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// watch runs until interrupted; every other command is one-shot
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	bus := status.NewBus(logger)
	defer bus.Close()

	worker := sync.NewWorker(store, store, store, apiClient, bus, logger)
	puller := pull.NewOrchestrator(store, store, apiClient, logger)
	triggers := trigger.NewSource(logger, apiClient, *probeInterval)

	c := cli.New(iocli.NewStdio(), apiClient, store, store, store, worker, puller, triggers, bus, logger)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Stocka POS Sync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
