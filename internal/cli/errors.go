package cli

import (
	"context"
	"errors"

	"github.com/vauthproject/vauth/internal/common"
)

// errorMessage maps a sentinel error to its fixed user-facing message. The
// second return value is false for anything outside the closed taxonomy;
// those are logged and shown as a generic vault error.
func errorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, common.ErrNotRegistered):
		return ">>USER NOT REGISTERED", true
	case errors.Is(err, common.ErrAlreadyRegistered):
		return ">>USER ALREADY REGISTERED", true
	case errors.Is(err, common.ErrLoginFailed):
		return ">>LOGIN FAILED", true
	case errors.Is(err, common.ErrRecoveryFailed):
		return ">>RECOVERY FAILED", true
	case errors.Is(err, common.ErrUserNotFound):
		return ">>USER NOT FOUND", true
	case errors.Is(err, common.ErrServiceNotFound):
		return ">>SERVICE NOT FOUND", true
	case errors.Is(err, common.ErrInvalidSeedDeleted):
		return ">>INVALID SEED > DELETED SERVICE", true
	case errors.Is(err, common.ErrInvalidSeed):
		return ">>INVALID SEED", true
	case errors.Is(err, common.ErrInvalidFieldType):
		return ">>INVALID TYPE", true
	case errors.Is(err, common.ErrServiceExists):
		return ">>SERVICE ALREADY EXISTS", true
	case errors.Is(err, common.ErrPasswordMismatch):
		return ">>PASSWORDS DO NOT MATCH", true
	}
	return ">>VAUTH ERROR", false
}

// printError renders err through the fixed message table. Conditions outside
// the taxonomy (storage I/O, unexpected failures) are logged with detail and
// surfaced to the user only as the generic message.
func (a *App) printError(ctx context.Context, err error) {
	msg, known := errorMessage(err)
	if !known {
		a.log.Error(ctx, "unexpected vault error", "error", err)
	}
	printlnFn(msg)
}
