package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/vincera/internal/catalog"
	"github.com/claude/vincera/internal/config"
	"github.com/claude/vincera/internal/server"
	"github.com/claude/vincera/internal/storage"
	"github.com/claude/vincera/internal/store"
	"github.com/claude/vincera/internal/timer"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("Vincera starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the record store
	rs, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		log.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	log.Info("record store ready", "dir", rs.Dir())

	syncState, err := storage.OpenSyncState(cfg.Storage.DataDir)
	if err != nil {
		log.Error("failed to open sync state", "error", err)
		os.Exit(1)
	}
	defer syncState.Close()

	// Resolve the exercise catalog: remote, cached, bundled.
	var client *catalog.Client
	if cfg.Catalog.URL != "" {
		client, err = catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout())
		if err != nil {
			log.Error("invalid catalog url", "error", err)
			os.Exit(1)
		}
	}
	loader := catalog.NewLoader(client, rs, catalog.Bundled(), syncState, log)

	ctx := context.Background()
	exercises, err := loader.Load(ctx)
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}

	// Create stores
	stores := server.Stores{
		Splits:    store.NewSplitStore(rs),
		Days:      store.NewDayStore(rs),
		Workouts:  store.NewWorkoutStore(rs),
		Exercises: store.NewExerciseStore(rs, exercises),
		Products:  store.NewProductStore(rs),
	}

	rest := timer.New(cfg.Timer.Duration())

	// Create server
	srv := server.New(stores, rest, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}
