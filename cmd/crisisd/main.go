// Command crisisd runs the crisis-management simulation server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talgya/crisis-sim/internal/api"
	"github.com/talgya/crisis-sim/internal/archive"
	"github.com/talgya/crisis-sim/internal/config"
	"github.com/talgya/crisis-sim/internal/content"
	"github.com/talgya/crisis-sim/internal/entropy"
	"github.com/talgya/crisis-sim/internal/game"
	"github.com/talgya/crisis-sim/internal/llm"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("crisisd starting",
		"port", cfg.Port,
		"mode", cfg.ContentMode,
		"seed", cfg.Seed,
		"archive", cfg.ArchivePath != "",
	)

	rand := entropy.NewSource(cfg.Seed)
	images := llm.NewImagePicker(rand)
	template := content.NewTemplateProvider(rand, images)

	provider := content.Provider(template)
	if cfg.ContentMode == config.ModeGemini {
		gemini, err := llm.NewGemini(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		provider = content.NewGeneratorProvider(gemini, rand, images)
	}

	var archiver game.Archiver
	if cfg.ArchivePath != "" {
		db, err := archive.Open(cfg.ArchivePath)
		if err != nil {
			slog.Error("failed to open archive", "path", cfg.ArchivePath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		archiver = db
		slog.Info("archive opened", "path", cfg.ArchivePath)
	}

	engine := game.NewGameEngine(game.NewSessionStore(), provider, template, archiver, logger)

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: (&api.Server{
			Engine:  engine,
			Origins: cfg.CORSOrigins,
			Logger:  logger,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("crisisd stopped")
}

func logLevel(name string) slog.Level {
	switch name {
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
