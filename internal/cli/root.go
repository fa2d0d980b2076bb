package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vauthproject/vauth/internal/common"
	"github.com/vauthproject/vauth/internal/flagx"
)

// Run dispatches a subcommand (register, login, recover, remove) and returns
// the process exit code. login drops into the interactive shell on success.
func Run(ctx context.Context, a *App, args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	cmd := args[0]
	switch cmd {
	case "register", "login", "recover", "remove":
	default:
		printUsage()
		return 2
	}

	userID, err := parseUserFlag(cmd, args[1:])
	if err != nil {
		return 2
	}

	switch cmd {
	case "register":
		return a.RunRegister(ctx, userID)
	case "login":
		return a.RunLogin(ctx, userID)
	case "recover":
		return a.RunRecover(ctx, userID)
	default:
		return a.RunRemove(ctx, userID)
	}
}

// parseUserFlag extracts the required -u <id> flag for a subcommand,
// ignoring any global flags on the same command line.
func parseUserFlag(cmd string, args []string) (string, error) {
	var userID string

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.StringVar(&userID, "u", "", "user ID")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-u"})); err != nil {
		return "", err
	}
	if userID == "" {
		fmt.Fprintf(os.Stderr, "Usage: vauth %s -u <id>\n", cmd)
		return "", fmt.Errorf("missing -u flag")
	}
	return userID, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `vauth - local TOTP vault

Usage:
  vauth register -u <id>   Register a new user
  vauth login    -u <id>   Login and open the interactive shell
  vauth recover  -u <id>   Recover account with a recovery code
  vauth remove   -u <id>   Remove account

Global flags:
  -d <dir>       vault directory (default ~/.vauth)
  -c <file>      JSON config file`)
}

// RunRegister prompts for a new password twice, creates the auth record and
// prints the five recovery codes. The codes are shown exactly this once.
func (a *App) RunRegister(ctx context.Context, userID string) int {
	password, err := GetPassword("vauth> Create a Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("vauth> Confirm Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(confirm)

	codes, err := a.vault.Register(ctx, userID, string(password), string(confirm))
	if err != nil {
		a.printError(ctx, err)
		return 1
	}

	printlnFn("vauth> Registration Successful")
	printlnFn("Recovery Codes (store them somewhere safe, they will not be shown again):")
	for _, code := range codes {
		printlnFn("  " + code)
	}
	return 0
}

// RunLogin verifies the password and opens the interactive shell.
func (a *App) RunLogin(ctx context.Context, userID string) int {
	password, err := GetPassword("vauth> Enter Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(password)

	verified, err := a.vault.Login(ctx, userID, string(password))
	if err != nil {
		a.printError(ctx, err)
		return 1
	}

	a.userID = userID
	a.password = verified
	runShell(ctx, a, a.scanner)
	return 0
}

// RunRecover verifies a recovery code and resets the password. The used code
// stays valid afterwards; see DESIGN.md.
func (a *App) RunRecover(ctx context.Context, userID string) int {
	code, err := GetPassword("vauth> Enter Recovery Code: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(code)

	password, err := GetPassword("vauth> Create a New Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("vauth> Confirm New Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(confirm)

	if err := a.vault.Recover(ctx, userID, string(code), string(password), string(confirm)); err != nil {
		a.printError(ctx, err)
		return 1
	}

	printlnFn("vauth> Account recovered successfully")
	return 0
}

// RunRemove re-verifies the password and deletes the account. Stored service
// records are not cascaded.
func (a *App) RunRemove(ctx context.Context, userID string) int {
	password, err := GetPassword("vauth> Enter Password: ", os.Stdout)
	if err != nil {
		a.printError(ctx, err)
		return 1
	}
	defer common.WipeByteArray(password)

	if err := a.vault.RemoveUser(ctx, userID, string(password)); err != nil {
		a.printError(ctx, err)
		return 1
	}

	printlnFn(fmt.Sprintf(">>USER %s REMOVED", userID))
	return 0
}
