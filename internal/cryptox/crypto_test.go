package cryptox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vauthproject/vauth/internal/common"
)

func TestHashHex_KnownDigest(t *testing.T) {
	// sha256("abc"), lowercase hex
	got := HashHex([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	k1, err := DeriveKey([]byte("Secret1!"))
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("Secret1!"))
	require.NoError(t, err)

	tok, err := EncryptSeed("JBSWY3DPEHPK3PXP", k1)
	require.NoError(t, err)

	// token produced under k1 must open under the independently derived k2
	seed, err := DecryptSeed(tok, k2)
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", seed)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key, err := DeriveKey([]byte("correct horse battery staple"))
	require.NoError(t, err)

	for _, seed := range []string{"JBSWY3DPEHPK3PXP", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", "MFRGGZDF"} {
		tok, err := EncryptSeed(seed, key)
		require.NoError(t, err)
		assert.NotEqual(t, seed, tok)

		got, err := DecryptSeed(tok, key)
		require.NoError(t, err)
		assert.Equal(t, seed, got)
	}
}

func TestDecryptSeed_WrongKeyFails(t *testing.T) {
	k1, err := DeriveKey([]byte("password-one"))
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("password-two"))
	require.NoError(t, err)

	tok, err := EncryptSeed("JBSWY3DPEHPK3PXP", k1)
	require.NoError(t, err)

	_, err = DecryptSeed(tok, k2)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecryptSeed_CorruptTokenFails(t *testing.T) {
	key, err := DeriveKey([]byte("password"))
	require.NoError(t, err)

	tok, err := EncryptSeed("JBSWY3DPEHPK3PXP", key)
	require.NoError(t, err)

	// flip one character of the token
	b := []byte(tok)
	if b[10] == 'A' {
		b[10] = 'B'
	} else {
		b[10] = 'A'
	}

	_, err = DecryptSeed(string(b), key)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}
