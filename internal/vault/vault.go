// Package vault implements the credential vault: registration, login,
// account recovery, and management of encrypted TOTP service records.
//
// Every operation takes plain strings and returns plain data or one of the
// sentinel errors in internal/common; no UI types cross this boundary.
package vault

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vauthproject/vauth/internal/common"
	"github.com/vauthproject/vauth/internal/cryptox"
	"github.com/vauthproject/vauth/internal/dbx"
	"github.com/vauthproject/vauth/internal/models"
	authrepo "github.com/vauthproject/vauth/internal/repositories/auth"
	metadatarepo "github.com/vauthproject/vauth/internal/repositories/metadata"
	servicerepo "github.com/vauthproject/vauth/internal/repositories/services"
	"github.com/vauthproject/vauth/internal/totp"
)

// State is the registration state of the vault, derived at startup and
// flipped exactly once, by the first successful Register.
type State int

const (
	Unregistered State = iota
	Registered
)

// RecoveryCodeCount is the number of recovery codes issued at registration.
// They are generated once and never regenerated.
const RecoveryCodeCount = 5

// recoveryCodeBytes gives 32-char hex tokens (128 bits of entropy each).
const recoveryCodeBytes = 16

// metadataKeyRegistered marks that a registration has happened. It is never
// cleared, not even by account removal, so the registered gate stays open for
// the lifetime of the vault file.
const metadataKeyRegistered = "registered"

// Vault orchestrates key derivation, the credential store and the TOTP
// generator. It is not safe for concurrent use; the vault file is owned by a
// single process.
type Vault struct {
	db    *sql.DB
	state State
}

// New builds a Vault over an initialized database and resolves the
// registration state from the metadata table.
func New(ctx context.Context, db *sql.DB) (*Vault, error) {
	v := &Vault{db: db, state: Unregistered}

	marker, err := v.metadataRepo().Get(ctx, metadataKeyRegistered)
	if err != nil {
		return nil, fmt.Errorf("failed to read registration marker: %w", err)
	}
	if marker != nil {
		v.state = Registered
	}
	return v, nil
}

func (v *Vault) authRepo() authrepo.Repository {
	return authrepo.NewSQLiteRepository(v.db)
}

func (v *Vault) serviceRepo() servicerepo.Repository {
	return servicerepo.NewSQLiteRepository(v.db)
}

func (v *Vault) metadataRepo() metadatarepo.Repository {
	return metadatarepo.NewSQLiteRepository(v.db)
}

// IsRegistered reports whether a registration has ever completed.
func (v *Vault) IsRegistered() bool {
	return v.state == Registered
}

// gate rejects every operation except Register until the first registration
// has completed.
func (v *Vault) gate() error {
	if v.state != Registered {
		return common.ErrNotRegistered
	}
	return nil
}

// Register creates the auth record for userID. The two password entries must
// match. It returns the five plaintext recovery codes exactly once; only
// their hashes are stored and they can never be shown again.
func (v *Vault) Register(ctx context.Context, userID, password, confirm string) ([]string, error) {
	if v.state == Registered {
		return nil, common.ErrAlreadyRegistered
	}
	if password != confirm {
		return nil, common.ErrPasswordMismatch
	}

	codes := make([]string, 0, RecoveryCodeCount)
	hashes := make([]string, 0, RecoveryCodeCount)
	for i := 0; i < RecoveryCodeCount; i++ {
		code, err := common.MakeRandHexString(recoveryCodeBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to generate recovery code: %w", err)
		}
		codes = append(codes, code)
		hashes = append(hashes, cryptox.HashHex([]byte(code)))
	}

	rec := &models.AuthRecord{
		UserID:             userID,
		PasswordHash:       cryptox.HashHex([]byte(password)),
		RecoveryCodeHashes: hashes,
	}

	// Auth row and registration marker land atomically.
	err := dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := authrepo.NewSQLiteRepository(tx).Insert(ctx, rec); err != nil {
			return err
		}
		return metadatarepo.NewSQLiteRepository(tx).Set(ctx, metadataKeyRegistered, []byte("1"))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	v.state = Registered
	return codes, nil
}

// Login verifies the password against the stored hash and returns it on
// success. The verified password is the session's key-derivation input for
// all subsequent service operations.
func (v *Vault) Login(ctx context.Context, userID, password string) (string, error) {
	if err := v.gate(); err != nil {
		return "", err
	}

	rec, err := v.authRepo().FindByCredentials(ctx, userID, cryptox.HashHex([]byte(password)))
	if err != nil {
		return "", fmt.Errorf("failed to look up auth record: %w", err)
	}
	if rec == nil {
		return "", common.ErrLoginFailed
	}
	return password, nil
}

// Recover resets the password after verifying a recovery code. The code's
// hash must be present in the stored set; used codes are not removed from it
// (see DESIGN.md — preserved behavior, likely a defect in the on-disk
// format's first consumer).
func (v *Vault) Recover(ctx context.Context, userID, code, newPassword, confirm string) error {
	if err := v.gate(); err != nil {
		return err
	}

	rec, err := v.authRepo().FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up auth record: %w", err)
	}
	if rec == nil {
		return common.ErrRecoveryFailed
	}

	codeHash := cryptox.HashHex([]byte(code))
	found := false
	for _, h := range rec.RecoveryCodeHashes {
		if h == codeHash {
			found = true
			break
		}
	}
	if !found {
		return common.ErrRecoveryFailed
	}

	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}

	if err := v.authRepo().UpdatePasswordHash(ctx, userID, cryptox.HashHex([]byte(newPassword))); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

// RemoveUser re-verifies the password and deletes the auth record. Service
// records owned by the user are left in place (no cascade).
func (v *Vault) RemoveUser(ctx context.Context, userID, password string) error {
	if err := v.gate(); err != nil {
		return err
	}

	rec, err := v.authRepo().FindByCredentials(ctx, userID, cryptox.HashHex([]byte(password)))
	if err != nil {
		return fmt.Errorf("failed to look up auth record: %w", err)
	}
	if rec == nil {
		return common.ErrUserNotFound
	}

	if err := v.authRepo().Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}

// AddService validates and encrypts a new TOTP seed and stores it under the
// (userID, username, service) key.
func (v *Vault) AddService(ctx context.Context, userID, password, username, service, seed string) error {
	if err := v.gate(); err != nil {
		return err
	}

	existing, err := v.serviceRepo().Find(ctx, userID, username, service)
	if err != nil {
		return fmt.Errorf("failed to look up service record: %w", err)
	}
	if existing != nil {
		return common.ErrServiceExists
	}

	if _, err := totp.DecodeSeed(seed); err != nil {
		return common.ErrInvalidSeed
	}

	token, err := v.encryptSeed(seed, password)
	if err != nil {
		return err
	}

	rec := &models.ServiceRecord{
		UserID:   userID,
		Username: username,
		Service:  service,
		Seed:     token,
	}
	if err := v.serviceRepo().Insert(ctx, rec); err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}
	return nil
}

// FindSeed decrypts and returns the stored seed for a service. A wrong
// password surfaces as a decryption failure, which the presentation layer
// renders as a generic vault error rather than a distinct condition.
func (v *Vault) FindSeed(ctx context.Context, userID, password, username, service string) (string, error) {
	if err := v.gate(); err != nil {
		return "", err
	}

	rec, err := v.serviceRepo().Find(ctx, userID, username, service)
	if err != nil {
		return "", fmt.Errorf("failed to look up service record: %w", err)
	}
	if rec == nil {
		return "", common.ErrServiceNotFound
	}

	return v.decryptSeed(rec.Seed, password)
}

// ShowCode computes the current one-time code and its remaining validity for
// a decrypted seed. If the seed no longer decodes as base32 the owning
// service record is deleted and ErrInvalidSeedDeleted is returned
// (self-healing against corrupted or hand-edited entries).
func (v *Vault) ShowCode(ctx context.Context, seed, userID, service string) (string, int, error) {
	if err := v.gate(); err != nil {
		return "", 0, err
	}

	code, remaining, err := totp.Code(seed, timeNow())
	if err != nil {
		if derr := v.serviceRepo().Delete(ctx, userID, service); derr != nil {
			return "", 0, fmt.Errorf("failed to delete corrupt service: %w", derr)
		}
		return "", 0, common.ErrInvalidSeedDeleted
	}
	return code, remaining, nil
}

// ModifyService updates a single field of a service record. field must be
// "username" or "seed"; a seed change is validated and re-encrypted, a
// username change carries the existing ciphertext over unchanged.
func (v *Vault) ModifyService(ctx context.Context, userID, password, username, service, field, newValue string) error {
	if err := v.gate(); err != nil {
		return err
	}

	rec, err := v.serviceRepo().Find(ctx, userID, username, service)
	if err != nil {
		return fmt.Errorf("failed to look up service record: %w", err)
	}
	if rec == nil {
		return common.ErrServiceNotFound
	}

	switch field {
	case "username":
		if err := v.serviceRepo().Update(ctx, userID, service, newValue, rec.Seed); err != nil {
			return fmt.Errorf("failed to update username: %w", err)
		}
	case "seed":
		if _, err := totp.DecodeSeed(newValue); err != nil {
			return common.ErrInvalidSeed
		}
		token, err := v.encryptSeed(newValue, password)
		if err != nil {
			return err
		}
		if err := v.serviceRepo().Update(ctx, userID, service, rec.Username, token); err != nil {
			return fmt.Errorf("failed to update seed: %w", err)
		}
	default:
		return common.ErrInvalidFieldType
	}
	return nil
}

// RemoveService deletes the service record matched by the composite key.
func (v *Vault) RemoveService(ctx context.Context, userID, username, service string) error {
	if err := v.gate(); err != nil {
		return err
	}

	rec, err := v.serviceRepo().Find(ctx, userID, username, service)
	if err != nil {
		return fmt.Errorf("failed to look up service record: %w", err)
	}
	if rec == nil {
		return common.ErrServiceNotFound
	}

	if err := v.serviceRepo().Delete(ctx, userID, service); err != nil {
		return fmt.Errorf("failed to remove service: %w", err)
	}
	return nil
}

// ProvisioningURI re-verifies the password, decrypts the seed and formats the
// otpauth:// URI consumed by the QR renderer.
func (v *Vault) ProvisioningURI(ctx context.Context, userID, password, username, service string) (string, error) {
	if err := v.gate(); err != nil {
		return "", err
	}

	auth, err := v.authRepo().FindByCredentials(ctx, userID, cryptox.HashHex([]byte(password)))
	if err != nil {
		return "", fmt.Errorf("failed to look up auth record: %w", err)
	}
	if auth == nil {
		return "", common.ErrLoginFailed
	}

	seed, err := v.FindSeed(ctx, userID, password, username, service)
	if err != nil {
		return "", err
	}
	return totp.ProvisioningURI(seed, username, service), nil
}

func (v *Vault) encryptSeed(seed, password string) (string, error) {
	key, err := cryptox.DeriveKey([]byte(password))
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	token, err := cryptox.EncryptSeed(seed, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt seed: %w", err)
	}
	return token, nil
}

func (v *Vault) decryptSeed(token, password string) (string, error) {
	key, err := cryptox.DeriveKey([]byte(password))
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	return cryptox.DecryptSeed(token, key)
}
