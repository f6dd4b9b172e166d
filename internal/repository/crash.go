package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service"
)

const crashColumns = `
	incident_id,
	first_reporter_id,
	victim_user_id,
	latitude,
	longitude,
	reported_at,
	processing_state,
	processing_claimed_at,
	completed_at,
	duplicate_reports`

type CrashRepository struct {
	db *pgxpool.Pool
}

func NewCrashRepository(db *pgxpool.Pool) service.CrashRepository {
	return &CrashRepository{db: db}
}

// GetByIncidentID возвращает запись по incident_id
func (r *CrashRepository) GetByIncidentID(ctx context.Context, incidentID string) (*models.CrashRecord, error) {
	query := `SELECT ` + crashColumns + ` FROM crash_records WHERE incident_id = $1;`

	record, err := scanCrashRecord(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return record, nil
}

// CreateOrMerge вставляет запись; при конфликте первый репорт уходит в duplicate_reports.
// xmax = 0 только у строки, которую вставил именно этот запрос.
func (r *CrashRepository) CreateOrMerge(ctx context.Context, record *models.CrashRecord) (bool, error) {
	first, err := json.Marshal(models.DuplicateReport{
		ReporterID: record.FirstReporterID,
		ReportedAt: record.ReportedAt,
		Location:   record.Location,
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO crash_records (incident_id, first_reporter_id, victim_user_id, latitude, longitude, reported_at, processing_state, duplicate_reports)
		VALUES ($1, $2, $3, $4, $5, $6, 'unclaimed', '[]'::jsonb)
		ON CONFLICT (incident_id) DO UPDATE
			SET duplicate_reports = crash_records.duplicate_reports || jsonb_build_array($7::jsonb)
		RETURNING (xmax = 0) AS inserted;
	`
	var inserted bool
	err = r.db.QueryRow(ctx, query,
		record.IncidentID,
		record.FirstReporterID,
		record.VictimUserID,
		record.Location.Latitude,
		record.Location.Longitude,
		record.ReportedAt,
		string(first),
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("failed to create crash record: %w", err)
	}
	return inserted, nil
}

// AppendDuplicate атомарно дописывает дубликат в массив, если запись существует
func (r *CrashRepository) AppendDuplicate(ctx context.Context, incidentID string, dup models.DuplicateReport) (bool, error) {
	payload, err := json.Marshal(dup)
	if err != nil {
		return false, fmt.Errorf("failed to marshal duplicate report: %w", err)
	}

	query := `
		UPDATE crash_records
		SET duplicate_reports = duplicate_reports || jsonb_build_array($2::jsonb)
		WHERE incident_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, incidentID, string(payload))
	if err != nil {
		return false, fmt.Errorf("failed to append duplicate report: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// TransitionState читает состояние под блокировкой строки и меняет его, только если оно равно from
func (r *CrashRepository) TransitionState(ctx context.Context, incidentID string, from, to models.ProcessingState, at time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current models.ProcessingState
	err = tx.QueryRow(ctx, `SELECT processing_state FROM crash_records WHERE incident_id = $1 FOR UPDATE;`, incidentID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("incident %s: %w", incidentID, models.ErrIncidentNotFound)
		}
		return false, fmt.Errorf("failed to lock incident: %w", err)
	}

	if current != from || !from.CanTransitionTo(to) {
		return false, nil
	}

	query := `
		UPDATE crash_records SET
			processing_state = $2::text,
			processing_claimed_at = CASE WHEN $2::text = 'claimed' THEN $3::timestamptz ELSE processing_claimed_at END,
			completed_at = CASE WHEN $2::text = 'completed' THEN $3::timestamptz ELSE completed_at END
		WHERE incident_id = $1;
	`
	if _, err = tx.Exec(ctx, query, incidentID, string(to), at); err != nil {
		return false, fmt.Errorf("failed to update processing state: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit state transition: %w", err)
	}
	return true, nil
}

// ListByState возвращает инциденты в заданном состоянии, старые первыми
func (r *CrashRepository) ListByState(ctx context.Context, state models.ProcessingState) ([]*models.CrashRecord, error) {
	query := `SELECT ` + crashColumns + ` FROM crash_records WHERE processing_state = $1 ORDER BY reported_at ASC;`
	return r.list(ctx, query, string(state))
}

// ListByVictim возвращает инциденты пострадавшего, новые первыми
func (r *CrashRepository) ListByVictim(ctx context.Context, victimUserID string) ([]*models.CrashRecord, error) {
	query := `SELECT ` + crashColumns + ` FROM crash_records WHERE victim_user_id = $1 ORDER BY reported_at DESC;`
	return r.list(ctx, query, victimUserID)
}

func (r *CrashRepository) list(ctx context.Context, query string, args ...any) ([]*models.CrashRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list crash records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.CrashRecord, 0)
	for rows.Next() {
		record, err := scanCrashRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crash record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

func scanCrashRecord(row pgx.Row) (*models.CrashRecord, error) {
	record := &models.CrashRecord{}
	var duplicates []byte
	err := row.Scan(
		&record.IncidentID,
		&record.FirstReporterID,
		&record.VictimUserID,
		&record.Location.Latitude,
		&record.Location.Longitude,
		&record.ReportedAt,
		&record.ProcessingState,
		&record.ProcessingClaimedAt,
		&record.CompletedAt,
		&duplicates,
	)
	if err != nil {
		return nil, err
	}
	record.DuplicateReports = []models.DuplicateReport{}
	if len(duplicates) > 0 {
		if err := json.Unmarshal(duplicates, &record.DuplicateReports); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duplicate reports: %w", err)
		}
	}
	return record, nil
}
