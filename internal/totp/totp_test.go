package totp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vauthproject/vauth/internal/common"
)

// rfcSeed is base32("12345678901234567890"), the RFC 6238 appendix B secret.
const rfcSeed = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCode_RFCVectors(t *testing.T) {
	tests := []struct {
		name string
		at   int64
		code string
	}{
		// 6-digit truncations of the RFC 6238 SHA-1 reference values
		{name: "t=59", at: 59, code: "287082"},
		{name: "t=1111111109", at: 1111111109, code: "081804"},
		{name: "t=1234567890", at: 1234567890, code: "005924"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, err := Code(rfcSeed, time.Unix(tt.at, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestCode_Remaining(t *testing.T) {
	_, remaining, err := Code(rfcSeed, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	_, remaining, err = Code(rfcSeed, time.Unix(60, 0))
	require.NoError(t, err)
	assert.Equal(t, 30, remaining)
}

func TestCode_SixDigits(t *testing.T) {
	code, remaining, err := Code("JBSWY3DPEHPK3PXP", time.Now())
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
	assert.Greater(t, remaining, 0)
	assert.LessOrEqual(t, remaining, Interval)
}

func TestDecodeSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantErr bool
	}{
		{name: "valid", seed: "JBSWY3DPEHPK3PXP"},
		{name: "lowercase accepted", seed: "jbswy3dpehpk3pxp"},
		{name: "unpadded accepted", seed: "MFRGGZDF"},
		{name: "empty", seed: "", wantErr: true},
		{name: "not base32", seed: "notbase32!!", wantErr: true},
		{name: "digit outside alphabet", seed: "JBSWY3DP1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed(tt.seed)
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrInvalidSeed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProvisioningURI(t *testing.T) {
	uri := ProvisioningURI("JBSWY3DPEHPK3PXP", "alice@example.com", "github")
	assert.Equal(t, "otpauth://totp/github:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=github", uri)
}
