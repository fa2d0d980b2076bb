// Package cli implements the vauth command-line surface: the
// register/login/recover/remove subcommands and the interactive shell.
// All vault semantics live in internal/vault; this package only prompts,
// parses and prints.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/vauthproject/vauth/internal/config"
	"github.com/vauthproject/vauth/internal/logging"
	"github.com/vauthproject/vauth/internal/vault"

	_ "modernc.org/sqlite"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// App wires the vault to the terminal. The userID and password fields hold
// the authenticated session after a successful login; password doubles as
// the key-derivation input for every service operation.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	vault    *vault.Vault
	scanner  *bufio.Scanner
	userID   string
	password string
}

// NewApp opens (or creates) the vault database under the configured
// directory and resolves the registration state.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := os.MkdirAll(c.VaultDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	db, err := vault.InitDatabase(ctx, c.DBPath())
	if err != nil {
		return nil, err
	}

	v, err := vault.New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		log:     log,
		db:      db,
		vault:   v,
		scanner: bufio.NewScanner(os.Stdin),
	}, nil
}

// Close releases the vault database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.password != ""
}
