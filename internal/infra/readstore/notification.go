package readstore

import (
	"context"
	"time"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SKIP LOCKED lets several relay instances drain the queue without
// handing the same job to two of them.
const claimDueNotificationJobsSQL = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, created_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

type notificationJobRecord struct {
	ID        uuid.UUID   `db:"id"`
	Kind      string      `db:"kind"`
	Topic     string      `db:"topic"`
	Payload   []byte      `db:"payload"`
	RunAt     time.Time   `db:"run_at"`
	Attempts  int32       `db:"attempts"`
	Status    string      `db:"status"`
	LastError pgtype.Text `db:"last_error"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

type NotificationReadStore struct{}

func NewNotificationReadStore() *NotificationReadStore {
	return &NotificationReadStore{}
}

// ClaimDue locks up to limit queued jobs due at now. tx must be a transaction;
// the locks are released when it ends.
func (s *NotificationReadStore) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*queries.NotificationJobView, error) {
	rows, err := tx.Query(ctx, claimDueNotificationJobsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[notificationJobRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(recs))
	for i, rec := range recs {
		result[i] = toNotificationJobView(rec)
	}
	return result, nil
}

func toNotificationJobView(rec notificationJobRecord) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:        rec.ID,
		Kind:      rec.Kind,
		Topic:     rec.Topic,
		Payload:   rec.Payload,
		RunAt:     rec.RunAt,
		Attempts:  rec.Attempts,
		Status:    rec.Status,
		LastError: pgconv.StringPtrFromPgtype(rec.LastError),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
