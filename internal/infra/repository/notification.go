package repository

import (
	"context"
	"time"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

const (
	createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

	markNotificationJobSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

	// A failed attempt is requeued with a later run_at until maxAttempts is reached.
	markNotificationJobFailedSQL = `
UPDATE notification_jobs
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'queued' END,
    run_at = $4,
    updated_at = now()
WHERE id = $1`
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, createNotificationJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt), JobStatusQueued)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, jobID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markNotificationJobSentSQL, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, maxAttempts int, retryAt time.Time) error {
	_, err := r.db.Exec(ctx, markNotificationJobFailedSQL,
		jobID,
		pgtype.Text{String: lastError, Valid: true},
		maxAttempts,
		pgconv.TimeToPgtype(retryAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
