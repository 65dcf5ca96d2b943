package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RachelleMaina/stocka-sync/internal/models"
	"github.com/RachelleMaina/stocka-sync/internal/server/handlers"
	"github.com/RachelleMaina/stocka-sync/internal/server/jwt"
	"github.com/RachelleMaina/stocka-sync/internal/server/middleware"
	"github.com/RachelleMaina/stocka-sync/internal/server/pairing"
	"github.com/RachelleMaina/stocka-sync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "backoffice.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "Secret for signing device tokens (required)")
	tokenTTL := flag.Duration("token-ttl", 30*24*time.Hour, "Device token lifetime")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")

	issuePairing := flag.Bool("issue-pairing-code", false, "Issue a pairing code and exit")
	pairingBiz := flag.String("business-location", "", "Business location for the pairing code")
	pairingStore := flag.String("store-location", "", "Store location for the pairing code")
	pairingTTL := flag.Duration("pairing-ttl", 24*time.Hour, "Pairing code lifetime")

	seedDemo := flag.Bool("seed-demo", false, "Seed a demo catalog for the given scope and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Admin one-shots run against the same database and exit without
	// starting the HTTP server.
	if *issuePairing {
		if err := issuePairingCode(ctx, store, *pairingBiz, *pairingStore, *pairingTTL); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue pairing code: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *seedDemo {
		if err := seedDemoCatalog(ctx, store, *pairingBiz, *pairingStore); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed demo catalog: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *jwtSecret == "" {
		fmt.Fprintln(os.Stderr, "--jwt-secret is required")
		os.Exit(1)
	}

	jwtSvc := jwt.NewService(*jwtSecret, *tokenTTL)
	router := newRouter(logger, store, jwtSvc)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("backoffice listening", "addr", *addr, "version", Version)
		errC <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}

// newRouter assembles the HTTP API
func newRouter(logger *slog.Logger, store *sqlite.Storage, jwtSvc *jwt.Service) http.Handler {
	deviceHandler := handlers.NewDeviceHandler(logger, store, store, jwtSvc)
	saleHandler := handlers.NewSaleHandler(logger, store)
	snapshotHandler := handlers.NewSnapshotHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, Version)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health"}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		// Registration exchanges a guessable pairing code, throttle it
		r.With(middleware.RateLimitMiddleware(10, 5*time.Minute, logger)).
			Post("/devices/register", deviceHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(logger, jwtSvc))
			r.Post("/sales", saleHandler.Submit)
			r.Get("/snapshot", snapshotHandler.Get)
		})
	})

	return r
}

// issuePairingCode mints a single-use code for one location scope and prints
// it once. Only the hash is stored; a lost code has to be reissued.
func issuePairingCode(ctx context.Context, store *sqlite.Storage, bizID, storeID string, ttl time.Duration) error {
	if bizID == "" || storeID == "" {
		return fmt.Errorf("--business-location and --store-location are required")
	}

	code, err := pairing.GenerateCode()
	if err != nil {
		return err
	}

	hash, err := pairing.HashCode(code)
	if err != nil {
		return err
	}

	now := time.Now()
	pc := &models.PairingCode{
		ID:                 uuid.New().String(),
		CodeHash:           hash,
		BusinessLocationID: bizID,
		StoreLocationID:    storeID,
		CreatedAt:          now,
		ExpiresAt:          now.Add(ttl),
	}

	if err := store.CreatePairingCode(ctx, pc); err != nil {
		return err
	}

	fmt.Println("=== Pairing Code Issued ===")
	fmt.Printf("Code:              %s\n", code)
	fmt.Printf("Business location: %s\n", bizID)
	fmt.Printf("Store location:    %s\n", storeID)
	fmt.Printf("Expires:           %s\n", pc.ExpiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("The code is shown only once. Enter it on the device with 'possync register'.")

	return nil
}

func seedDemoCatalog(ctx context.Context, store *sqlite.Storage, bizID, storeID string) error {
	if bizID == "" || storeID == "" {
		return fmt.Errorf("--business-location and --store-location are required")
	}

	if err := store.SeedDemoCatalog(ctx, bizID, storeID); err != nil {
		return err
	}

	fmt.Printf("✓ Demo catalog seeded for %s/%s\n", bizID, storeID)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("Stocka Backoffice\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
