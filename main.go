package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/friday-picker/cliparse"
	"github.com/danielhkuo/friday-picker/db"
	"github.com/danielhkuo/friday-picker/metrics"
	"github.com/danielhkuo/friday-picker/middleware"
	"github.com/danielhkuo/friday-picker/router"
	"github.com/danielhkuo/friday-picker/scheduler"
	"github.com/danielhkuo/friday-picker/seed"
	"github.com/danielhkuo/friday-picker/store"
)

func main() {
	var err error

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}

	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.New(dbConn, loc)

	ctx := context.Background()
	if err := seed.Users(ctx, st, cfg.Users); err != nil {
		slog.Error("seeding users failed", "error", err)
		os.Exit(1)
	}
	if cfg.SeedDemo {
		weekID, err := seed.Demo(ctx, st)
		if err != nil {
			slog.Error("seeding demo data failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded", "week_id", weekID)
	}

	rec := metrics.New()

	// Weekly reset
	resetJob, err := scheduler.NewWeeklyReset(st, cfg.ResetSchedule, loc, rec)
	if err != nil {
		slog.Error("invalid reset schedule", "error", err, "schedule", cfg.ResetSchedule)
		os.Exit(1)
	}
	resetJob.Start()
	defer resetJob.Stop()

	// Create router
	mux := router.NewRouter(st, rec)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "week", st.CurrentWeekID())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
