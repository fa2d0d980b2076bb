package cli

import (
	"context"

	"github.com/mdp/qrterminal/v3"
)

// ShowQR renders the provisioning URI of a credential as an ASCII QR code,
// scannable by authenticator apps. The vault re-verifies the session
// password before releasing the URI.
func (a *App) ShowQR(ctx context.Context, service, username string) error {
	uri, err := a.vault.ProvisioningURI(ctx, a.userID, a.password, username, service)
	if err != nil {
		a.printError(ctx, err)
		return err
	}
	qrterminal.GenerateHalfBlock(uri, qrterminal.L, outW)
	return nil
}
