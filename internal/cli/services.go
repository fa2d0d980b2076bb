package cli

import "context"

// AddService validates and stores a new encrypted TOTP credential.
func (a *App) AddService(ctx context.Context, service, username, seed string) error {
	if err := a.vault.AddService(ctx, a.userID, a.password, username, service, seed); err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn(">>SERVICE ADDED")
	return nil
}

// ModifyService changes the username or the seed of a stored credential.
func (a *App) ModifyService(ctx context.Context, service, username, field, newValue string) error {
	if err := a.vault.ModifyService(ctx, a.userID, a.password, username, service, field, newValue); err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn(">>SERVICE MODIFIED")
	return nil
}

// RemoveService deletes a stored credential.
func (a *App) RemoveService(ctx context.Context, service, username string) error {
	if err := a.vault.RemoveService(ctx, a.userID, username, service); err != nil {
		a.printError(ctx, err)
		return err
	}
	printlnFn(">>SERVICE REMOVED")
	return nil
}
