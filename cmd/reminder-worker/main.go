package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"finman/internal/config"
	"finman/internal/database"
	"finman/internal/logger"
	"finman/internal/notify"
	"finman/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	once := flag.Bool("once", false, "Run a single dispatch pass and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg, *once); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config, once bool) error {
	log := logger.Named("reminder-worker")

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbManager.Close()

	notifier, err := notify.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	defer notifier.Close()

	reminders := services.NewReminderService(dbManager.DB(), notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if once {
		dispatch(ctx, reminders, cfg.ReminderWindow, log)
		return nil
	}

	scheduler, err := newScheduler(cfg.ReminderSchedule, func() {
		dispatch(ctx, reminders, cfg.ReminderWindow, log)
	})
	if err != nil {
		return err
	}

	log.Infow("Starting reminder worker", "schedule", cfg.ReminderSchedule, "window", cfg.ReminderWindow)
	scheduler.Start()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Stop returns a context that is done once running jobs finish.
	select {
	case <-scheduler.Stop().Done():
		log.Info("Reminder worker shutdown complete")
	case <-time.After(shutdownTimeout):
		log.Warn("Shutdown timeout reached")
	}
	return nil
}

// newScheduler registers job on a standard five-field cron spec.
func newScheduler(spec string, job func()) (*cron.Cron, error) {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return scheduler, nil
}

func dispatch(ctx context.Context, reminders services.ReminderServicer, window time.Duration, log *zap.SugaredLogger) {
	result, err := reminders.DispatchDue(ctx, window)
	if err != nil {
		log.Errorw("Reminder dispatch failed", "error", err)
		return
	}
	log.Infow("Reminder dispatch complete",
		"checked", result.Checked,
		"sent", result.Sent,
		"failed", result.Failed)
}
