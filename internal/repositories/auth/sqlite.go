package auth

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Insert stores an auth record. Recovery-code hashes are serialized as a
// JSON array in a single column.
func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.AuthRecord) error {
	codes, err := json.Marshal(rec.RecoveryCodeHashes)
	if err != nil {
		return fmt.Errorf("failed to serialize recovery codes: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO auth (user_id, password_hash, recovery_codes) VALUES (?, ?, ?)`,
		rec.UserID, rec.PasswordHash, string(codes))
	if err != nil {
		return fmt.Errorf("failed to insert auth record: %w", err)
	}
	return nil
}

// FindByCredentials looks up the auth record matching both user id and
// password hash. Used for login and password re-verification.
func (r *SQLiteRepository) FindByCredentials(ctx context.Context, userID, passwordHash string) (*models.AuthRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, password_hash, recovery_codes FROM auth WHERE user_id = ? AND password_hash = ?`,
		userID, passwordHash)
	return scanAuth(row)
}

// FindByUserID looks up the auth record by user id alone, ignoring the
// password hash. Used by the recovery flow to reach the recovery-code hashes.
func (r *SQLiteRepository) FindByUserID(ctx context.Context, userID string) (*models.AuthRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, password_hash, recovery_codes FROM auth WHERE user_id = ?`,
		userID)
	return scanAuth(row)
}

// UpdatePasswordHash overwrites the stored password hash. Recovery codes are
// left untouched.
func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth SET password_hash = ? WHERE user_id = ?`,
		passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	return nil
}

// Delete removes the auth record. Deleting a missing record is a no-op.
// Service records owned by the user are deliberately not cascaded.
func (r *SQLiteRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete auth record: %w", err)
	}
	return nil
}

func scanAuth(row *sql.Row) (*models.AuthRecord, error) {
	rec := &models.AuthRecord{}
	var codes string
	if err := row.Scan(&rec.UserID, &rec.PasswordHash, &codes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan auth record: %w", err)
	}
	if err := json.Unmarshal([]byte(codes), &rec.RecoveryCodeHashes); err != nil {
		return nil, fmt.Errorf("failed to parse recovery codes: %w", err)
	}
	return rec, nil
}
