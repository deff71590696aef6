package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/config"
	"github.com/tantran2612/vidscribe/internal/export"
	"github.com/tantran2612/vidscribe/internal/intake"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/pipeline"
	"github.com/tantran2612/vidscribe/internal/server"
	"github.com/tantran2612/vidscribe/internal/transcriber"
	"github.com/tantran2612/vidscribe/internal/watcher"
	"github.com/tantran2612/vidscribe/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "vidscribe starting on port %s", cfg.Server.Port)

	if err := os.MkdirAll(cfg.Paths.Audio, 0755); err != nil {
		log.Error(ctx, "Failed to create audio dir: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	acq := acquirer.New(cfg, exec, log)
	tr := transcriber.New(cfg, log)
	comp := composer.New(cfg, log)
	pipe := pipeline.New(acq, tr, comp, log)
	srv := server.New(cfg, pipe, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)

	if cfg.Paths.Intake != "" {
		w, err := startIntake(ctx, cfg, tr, comp, log, errChan)
		if err != nil {
			log.Error(ctx, "Failed to start intake watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()
	}

	go func() {
		if err := srv.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "vidscribe stopped")
}

// startIntake wires the intake watcher: dropped audio files are
// transcribed, composed and exported without going through HTTP.
func startIntake(ctx context.Context, cfg *config.Config, tr transcriber.Transcriber, comp composer.Composer, log logger.Logger, errChan chan<- error) (watcher.Watcher, error) {
	for _, dir := range []string{cfg.Paths.Intake, cfg.Paths.IntakeOutput} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	exp := export.New(cfg.Paths.IntakeOutput, log)
	proc := intake.New(tr, comp, exp, cfg.Paths.IntakeOutput, log)

	w, err := watcher.New(cfg.Paths.Intake, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Intake mode enabled: %s -> %s", cfg.Paths.Intake, cfg.Paths.IntakeOutput)
	return w, nil
}
