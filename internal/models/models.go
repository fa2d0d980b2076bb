// Package models defines the persistent record types of the vault.
package models

// AuthRecord is the single authentication row for a user identity.
// RecoveryCodeHashes holds the sha256 hex digests of the five recovery codes
// generated at registration; the plaintext codes are never stored.
type AuthRecord struct {
	UserID             string
	PasswordHash       string
	RecoveryCodeHashes []string
}

// ServiceRecord is one stored TOTP credential. Seed holds the Fernet
// ciphertext of the base32 seed, never the plaintext. The logical key is
// (UserID, Username, Service); uniqueness is enforced by caller pre-checks,
// not by the schema.
type ServiceRecord struct {
	UserID   string
	Username string
	Service  string
	Seed     string
}
