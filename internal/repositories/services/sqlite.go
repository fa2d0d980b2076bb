package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vauthproject/vauth/internal/dbx"
	"github.com/vauthproject/vauth/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a service record unconditionally.
func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.ServiceRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO services (user_id, username, service, seed) VALUES (?, ?, ?, ?)`,
		rec.UserID, rec.Username, rec.Service, rec.Seed)
	if err != nil {
		return fmt.Errorf("failed to insert service record: %w", err)
	}
	return nil
}

// Find performs an exact composite-key lookup.
func (r *SQLiteRepository) Find(ctx context.Context, userID, username, service string) (*models.ServiceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, service, seed FROM services WHERE user_id = ? AND username = ? AND service = ?`,
		userID, username, service)

	rec := &models.ServiceRecord{}
	if err := row.Scan(&rec.UserID, &rec.Username, &rec.Service, &rec.Seed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan service record: %w", err)
	}
	return rec, nil
}

// Update overwrites username and seed for the row matched by
// (user_id, service).
func (r *SQLiteRepository) Update(ctx context.Context, userID, service, username, seed string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE services SET username = ?, seed = ? WHERE user_id = ? AND service = ?`,
		username, seed, userID, service)
	if err != nil {
		return fmt.Errorf("failed to update service record: %w", err)
	}
	return nil
}

// Delete removes the row matched by (user_id, service). Deleting a missing
// row is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, userID, service string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM services WHERE user_id = ? AND service = ?`, userID, service)
	if err != nil {
		return fmt.Errorf("failed to delete service record: %w", err)
	}
	return nil
}
