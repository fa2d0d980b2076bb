// Package services persists encrypted TOTP service records.
package services

import (
	"context"

	"github.com/vauthproject/vauth/internal/models"
)

// Repository defines storage operations for service records.
//
// Find returns (nil, nil) on a miss. Insert does not enforce uniqueness of
// the (user_id, username, service) key; callers must pre-check via Find.
// Update and Delete match on (user_id, service) only, ignoring username —
// this mirrors the on-disk format's historical behavior and makes targets
// ambiguous when one user keeps several usernames under the same service.
type Repository interface {
	Insert(ctx context.Context, rec *models.ServiceRecord) error
	Find(ctx context.Context, userID, username, service string) (*models.ServiceRecord, error)
	Update(ctx context.Context, userID, service, username, seed string) error
	Delete(ctx context.Context, userID, service string) error
}
