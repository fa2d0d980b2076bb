package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vauthproject/vauth/internal/common"
)

func TestErrorMessage_Taxonomy(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrNotRegistered, ">>USER NOT REGISTERED"},
		{common.ErrAlreadyRegistered, ">>USER ALREADY REGISTERED"},
		{common.ErrLoginFailed, ">>LOGIN FAILED"},
		{common.ErrRecoveryFailed, ">>RECOVERY FAILED"},
		{common.ErrUserNotFound, ">>USER NOT FOUND"},
		{common.ErrServiceNotFound, ">>SERVICE NOT FOUND"},
		{common.ErrInvalidSeedDeleted, ">>INVALID SEED > DELETED SERVICE"},
		{common.ErrInvalidSeed, ">>INVALID SEED"},
		{common.ErrInvalidFieldType, ">>INVALID TYPE"},
		{common.ErrServiceExists, ">>SERVICE ALREADY EXISTS"},
		{common.ErrPasswordMismatch, ">>PASSWORDS DO NOT MATCH"},
	}

	for _, tt := range tests {
		msg, known := errorMessage(tt.err)
		assert.True(t, known, tt.want)
		assert.Equal(t, tt.want, msg)

		// wrapped errors still map
		msg, known = errorMessage(fmt.Errorf("context: %w", tt.err))
		assert.True(t, known)
		assert.Equal(t, tt.want, msg)
	}
}

func TestErrorMessage_Generic(t *testing.T) {
	msg, known := errorMessage(errors.New("disk on fire"))
	assert.False(t, known)
	assert.Equal(t, ">>VAUTH ERROR", msg)

	// decryption failures stay generic by design
	msg, known = errorMessage(common.ErrDecryptionFailed)
	assert.False(t, known)
	assert.Equal(t, ">>VAUTH ERROR", msg)
}
