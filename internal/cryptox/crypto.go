// Package cryptox implements the vault's key derivation and seed
// encryption.
//
// Key derivation is deterministic and unsalted: the sha256 hex digest of the
// password is truncated to its first 32 characters and those ASCII bytes,
// urlsafe-base64 encoded, form the Fernet key. Existing vault files depend on
// this exact recipe, so it must not change without a re-encryption migration.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/vauthproject/vauth/internal/common"
)

// HashHex returns the sha256 digest of b as a lowercase hex string. Used for
// password and recovery-code storage. Unsalted and single-round; see the
// hardening notes in DESIGN.md before changing.
func HashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// DeriveKey turns a master password into the symmetric Fernet key.
func DeriveKey(password []byte) (*fernet.Key, error) {
	digest := HashHex(password)
	encoded := base64.URLEncoding.EncodeToString([]byte(digest[:32]))
	key, err := fernet.DecodeKey(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode derived key: %w", err)
	}
	return key, nil
}

// EncryptSeed produces a Fernet token for the given plaintext seed. The token
// embeds a random IV, a timestamp and an HMAC tag; no expiry is enforced on
// decryption.
func EncryptSeed(seed string, key *fernet.Key) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(seed), key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt seed: %w", err)
	}
	return string(tok), nil
}

// DecryptSeed verifies and decrypts a Fernet token. A wrong key or a
// corrupted token yields common.ErrDecryptionFailed, never garbage plaintext.
func DecryptSeed(token string, key *fernet.Key) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{key})
	if msg == nil {
		return "", common.ErrDecryptionFailed
	}
	return string(msg), nil
}
