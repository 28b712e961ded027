package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/quickvote/quickvote/cliparse"
	"github.com/quickvote/quickvote/router"
	"github.com/quickvote/quickvote/scheduler"
	"github.com/quickvote/quickvote/store"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	setupLogger()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the document store
	kv, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open store", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	elections := store.NewElectionStore(kv)
	receipts := store.NewReceiptStore(kv)
	slog.Info("store ready", "type", cfg.DatabaseType)

	// Start the auto-close sweep
	closer := scheduler.NewAutoCloser(elections, cfg.AutoCloseInterval, time.Now)
	closer.Start(context.Background())
	defer closer.Stop()

	// Create router
	mux := router.NewRouter(elections, receipts, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogger picks human-readable output on a terminal and JSON otherwise.
func setupLogger() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
