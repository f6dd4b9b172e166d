package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service"
)

const deviceColumns = `user_id, device_id, delivery_address, last_active_at, is_primary, is_active, created_at`

type DeviceRepository struct {
	db *pgxpool.Pool
}

func NewDeviceRepository(db *pgxpool.Pool) service.DeviceRepository {
	return &DeviceRepository{db: db}
}

// withUserLock выполняет fn в транзакции под advisory-блокировкой пользователя.
// Блокировка сериализует изменения реестра одного пользователя между процессами.
func (r *DeviceRepository) withUserLock(ctx context.Context, userID string, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, userID); err != nil {
		return fmt.Errorf("failed to lock user devices: %w", err)
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit device transaction: %w", err)
	}
	return nil
}

// Upsert регистрирует устройство; primary ставится, если у пользователя нет другого активного primary
func (r *DeviceRepository) Upsert(ctx context.Context, reg models.DeviceRegistration) (*models.DeviceEntry, error) {
	var entry *models.DeviceEntry
	err := r.withUserLock(ctx, reg.UserID, func(tx pgx.Tx) error {
		var otherPrimary bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM devices
				WHERE user_id = $1 AND device_id <> $2 AND is_active AND is_primary
			);
		`, reg.UserID, reg.DeviceID).Scan(&otherPrimary)
		if err != nil {
			return fmt.Errorf("failed to check primary device: %w", err)
		}

		query := `
			INSERT INTO devices (user_id, device_id, delivery_address, last_active_at, is_primary, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, TRUE, $4)
			ON CONFLICT (user_id, device_id) DO UPDATE SET
				delivery_address = EXCLUDED.delivery_address,
				last_active_at = EXCLUDED.last_active_at,
				is_primary = EXCLUDED.is_primary,
				is_active = TRUE
			RETURNING ` + deviceColumns + `;
		`
		entry, err = scanDevice(tx.QueryRow(ctx, query,
			reg.UserID,
			reg.DeviceID,
			reg.DeliveryAddress,
			reg.At,
			!otherPrimary,
		))
		if err != nil {
			return fmt.Errorf("failed to upsert device: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// SetPrimary снимает флаг с предыдущего primary и ставит его на deviceID в одной транзакции
func (r *DeviceRepository) SetPrimary(ctx context.Context, userID, deviceID string) error {
	return r.withUserLock(ctx, userID, func(tx pgx.Tx) error {
		var active bool
		err := tx.QueryRow(ctx, `SELECT is_active FROM devices WHERE user_id = $1 AND device_id = $2;`, userID, deviceID).Scan(&active)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("device %s: %w", deviceID, models.ErrDeviceNotFound)
			}
			return fmt.Errorf("failed to get device: %w", err)
		}
		if !active {
			return fmt.Errorf("device %s is inactive: %w", deviceID, models.ErrDeviceNotFound)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE devices SET is_primary = FALSE
			WHERE user_id = $1 AND device_id <> $2 AND is_primary;
		`, userID, deviceID); err != nil {
			return fmt.Errorf("failed to demote primary device: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE devices SET is_primary = TRUE
			WHERE user_id = $1 AND device_id = $2;
		`, userID, deviceID); err != nil {
			return fmt.Errorf("failed to promote primary device: %w", err)
		}
		return nil
	})
}

// Deactivate мягко удаляет устройство и при необходимости продвигает новое primary
func (r *DeviceRepository) Deactivate(ctx context.Context, userID, deviceID string) (*models.DeviceEntry, error) {
	var promoted *models.DeviceEntry
	err := r.withUserLock(ctx, userID, func(tx pgx.Tx) error {
		var active, primary bool
		err := tx.QueryRow(ctx, `SELECT is_active, is_primary FROM devices WHERE user_id = $1 AND device_id = $2;`, userID, deviceID).Scan(&active, &primary)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("device %s: %w", deviceID, models.ErrDeviceNotFound)
			}
			return fmt.Errorf("failed to get device: %w", err)
		}
		if !active {
			return nil
		}

		if _, err := tx.Exec(ctx, `
			UPDATE devices SET is_active = FALSE, is_primary = FALSE
			WHERE user_id = $1 AND device_id = $2;
		`, userID, deviceID); err != nil {
			return fmt.Errorf("failed to deactivate device: %w", err)
		}
		if !primary {
			return nil
		}

		query := `
			UPDATE devices SET is_primary = TRUE
			WHERE user_id = $1 AND device_id = (
				SELECT device_id FROM devices
				WHERE user_id = $1 AND is_active
				ORDER BY last_active_at DESC, device_id
				LIMIT 1
			)
			RETURNING ` + deviceColumns + `;
		`
		promoted, err = scanDevice(tx.QueryRow(ctx, query, userID))
		if errors.Is(err, pgx.ErrNoRows) {
			promoted = nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to promote device: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// ListActive возвращает активные устройства, самые свежие первыми
func (r *DeviceRepository) ListActive(ctx context.Context, userID string) ([]*models.DeviceEntry, error) {
	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE user_id = $1 AND is_active
		ORDER BY last_active_at DESC, device_id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active devices: %w", err)
	}
	defer rows.Close()

	devices := make([]*models.DeviceEntry, 0)
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		devices = append(devices, device)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return devices, nil
}

func scanDevice(row pgx.Row) (*models.DeviceEntry, error) {
	d := &models.DeviceEntry{}
	err := row.Scan(
		&d.UserID,
		&d.DeviceID,
		&d.DeliveryAddress,
		&d.LastActiveAt,
		&d.IsPrimary,
		&d.IsActive,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
