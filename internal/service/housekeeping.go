package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Housekeeper runs periodic maintenance jobs. Today that is a single sweep
// deleting settled support sessions past the retention window; TTL expiry is
// still decided at exchange time, never by this sweep.
type Housekeeper struct {
	cron      *cron.Cron
	sessions  *SupportSessionService
	retention time.Duration
	logger    *slog.Logger
}

// NewHousekeeper creates a Housekeeper with the given retention window.
func NewHousekeeper(sessions *SupportSessionService, retention time.Duration, logger *slog.Logger) *Housekeeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Housekeeper{
		cron:      cron.New(),
		sessions:  sessions,
		retention: retention,
		logger:    logger.With("component", "housekeeper"),
	}
}

// Start schedules the sweep and starts the cron runner.
func (h *Housekeeper) Start() error {
	_, err := h.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := h.sessions.PurgeSettled(ctx, h.retention); err != nil {
			h.logger.Error("support session sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	h.cron.Start()
	h.logger.Info("housekeeper started", "retention", h.retention.String())
	return nil
}

// Stop gracefully stops the cron runner.
func (h *Housekeeper) Stop() {
	h.cron.Stop()
	h.logger.Info("housekeeper stopped")
}
