// Package common defines shared constants and sentinel errors used across
// the vault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Gate errors.
	ErrNotRegistered     = errors.New("user not registered")
	ErrAlreadyRegistered = errors.New("already registered")

	// Auth errors.
	ErrLoginFailed      = errors.New("login failed")
	ErrRecoveryFailed   = errors.New("recovery failed")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Service-record errors.
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceExists      = errors.New("service already exists")
	ErrInvalidSeed        = errors.New("invalid seed")
	ErrInvalidSeedDeleted = errors.New("invalid seed, service deleted")
	ErrInvalidFieldType   = errors.New("invalid field type")

	// Crypto errors. Decryption failure is deliberately not part of the
	// user-facing taxonomy; the CLI renders it as a generic vault error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// Anything unanticipated (storage I/O, migrations) wraps this.
	ErrInternal = errors.New("internal error")
)
