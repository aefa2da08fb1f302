package app

import (
	"context"
	"time"

	"github.com/studentai/campus_bot/internal/dialog"
	"go.uber.org/zap"
)

// Janitor periodically expires appointment dialogs that sat idle for too
// long, so an abandoned conversation does not stay open forever.
type Janitor struct {
	sessions *dialog.Manager
	maxIdle  time.Duration
	interval time.Duration
	notify   func(ctx context.Context, chatID int64)
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewJanitor(
	sessions *dialog.Manager,
	maxIdle time.Duration,
	notify func(ctx context.Context, chatID int64),
	logger *zap.Logger,
) *Janitor {
	return &Janitor{
		sessions: sessions,
		maxIdle:  maxIdle,
		interval: time.Minute,
		notify:   notify,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the expiry loop.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("Starting session janitor", zap.Duration("max_idle", j.maxIdle))
	go j.run(ctx)
}

// Stop stops the expiry loop.
func (j *Janitor) Stop() {
	j.logger.Info("Stopping session janitor")
	close(j.stopChan)
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.expire(ctx)
		case <-j.stopChan:
			j.logger.Info("Session janitor stopped")
			return
		case <-ctx.Done():
			j.logger.Info("Session janitor cancelled")
			return
		}
	}
}

func (j *Janitor) expire(ctx context.Context) {
	expired := j.sessions.ExpireIdle(j.maxIdle)
	for _, chatID := range expired {
		j.logger.Info("Dialog session expired",
			zap.Int64("chat_id", chatID),
			zap.Duration("max_idle", j.maxIdle))
		if j.notify != nil {
			j.notify(ctx, chatID)
		}
	}
}
