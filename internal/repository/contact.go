package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crash_alert_system/internal/service"
)

// ContactRepository читает список экстренных контактов; управление списком вне этого сервиса
type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) service.ContactResolver {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ResolveContacts(ctx context.Context, victimUserID string) ([]string, error) {
	query := `
		SELECT contact_user_id
		FROM emergency_contacts
		WHERE victim_user_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, victimUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contacts: %w", err)
	}
	contacts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}
	return contacts, nil
}
