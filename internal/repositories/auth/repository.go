// Package auth persists the single authentication record of the vault.
package auth

import (
	"context"

	"github.com/vauthproject/vauth/internal/models"
)

// Repository defines storage operations for auth records.
//
// Find methods return (nil, nil) on a miss so callers can distinguish
// "no record" from storage failures. Insert does not enforce uniqueness;
// callers are expected to pre-check via the registered gate.
type Repository interface {
	Insert(ctx context.Context, rec *models.AuthRecord) error
	FindByCredentials(ctx context.Context, userID, passwordHash string) (*models.AuthRecord, error)
	FindByUserID(ctx context.Context, userID string) (*models.AuthRecord, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, userID string) error
}
