package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

// CreateAttempt сохраняет попытку в состоянии pending
func (r *DispatchRepository) CreateAttempt(ctx context.Context, a *models.DispatchAttempt) error {
	query := `
		INSERT INTO dispatch_attempts (alert_id, incident_id, recipient_user_id, target_device_id, state, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		a.AlertID,
		a.IncidentID,
		a.RecipientUserID,
		a.TargetDeviceID,
		string(a.State),
		a.Attempts,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatch attempt: %w", err)
	}
	return nil
}

// FinishAttempt фиксирует терминальное состояние; уже завершенные попытки не трогаются
func (r *DispatchRepository) FinishAttempt(ctx context.Context, a *models.DispatchAttempt) error {
	query := `
		UPDATE dispatch_attempts SET
			state = $2,
			attempts = $3,
			delivered_at = $4,
			failure_reason = NULLIF($5, '')
		WHERE alert_id = $1 AND state = 'pending';
	`
	_, err := r.db.Exec(ctx, query,
		a.AlertID,
		string(a.State),
		a.Attempts,
		a.DeliveredAt,
		a.FailureReason,
	)
	if err != nil {
		return fmt.Errorf("failed to finish dispatch attempt: %w", err)
	}
	return nil
}

// FailStalePending переводит зависшие pending-попытки в failed
func (r *DispatchRepository) FailStalePending(ctx context.Context, olderThan time.Time, reason string) (int64, error) {
	query := `
		UPDATE dispatch_attempts SET
			state = 'failed',
			failure_reason = $2
		WHERE state = 'pending' AND created_at < $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, olderThan, reason)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale attempts: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *DispatchRepository) ListByIncident(ctx context.Context, incidentID string) ([]*models.DispatchAttempt, error) {
	query := `
		SELECT
			alert_id::text,
			incident_id,
			recipient_user_id,
			target_device_id,
			state,
			attempts,
			delivered_at,
			COALESCE(failure_reason, ''),
			created_at
		FROM dispatch_attempts
		WHERE incident_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch attempts: %w", err)
	}

	attempts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.DispatchAttempt, error) {
		a := &models.DispatchAttempt{}
		err := row.Scan(
			&a.AlertID,
			&a.IncidentID,
			&a.RecipientUserID,
			&a.TargetDeviceID,
			&a.State,
			&a.Attempts,
			&a.DeliveredAt,
			&a.FailureReason,
			&a.CreatedAt,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan dispatch attempts: %w", err)
	}
	return attempts, nil
}
