package relay

import (
	"context"
	"log/slog"
	"time"

	"grocery-admin/internal/infra/events"
	"grocery-admin/internal/infra/readstore"
	"grocery-admin/internal/infra/repository"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/config"
	"grocery-admin/internal/usecase/shared"
)

const maxRetryDelay = 10 * time.Minute

// Relay drains queued notification jobs to the event publisher. A job is
// published and marked sent inside one transaction, so delivery is at least
// once: a crash after publish and before commit re-sends it.
type Relay struct {
	uow       shared.UnitOfWork
	jobs      *readstore.NotificationReadStore
	publisher events.Publisher
	clock     clock.Clock
	cfg       config.RelayConfig
}

func NewRelay(uow shared.UnitOfWork, jobs *readstore.NotificationReadStore, publisher events.Publisher, clk clock.Clock, cfg config.RelayConfig) *Relay {
	return &Relay{
		uow:       uow,
		jobs:      jobs,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.DrainOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("notification relay pass failed", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// DrainOnce handles one batch and reports how many jobs were published.
func (r *Relay) DrainOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()

		due, err := r.jobs.ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		repo := repository.NewNotificationRepository(tx.DB())
		for _, job := range due {
			headers := map[string]any{
				"job_id":   job.ID.String(),
				"job_kind": job.Kind,
			}
			if err := r.publisher.Publish(ctx, job.Topic, job.Payload, headers); err != nil {
				slog.Warn("failed to publish notification job",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", err.Error())
				retryAt := now.Add(retryDelay(int(job.Attempts) + 1))
				if err := repo.MarkFailed(ctx, job.ID, err.Error(), r.cfg.MaxAttempts, retryAt); err != nil {
					return err
				}
				continue
			}
			if err := repo.MarkSent(ctx, job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

// retryDelay doubles from 5s per attempt, capped at maxRetryDelay.
func retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 8 {
		return maxRetryDelay
	}
	d := time.Duration(1<<(attempt-1)) * 5 * time.Second
	return min(d, maxRetryDelay)
}
