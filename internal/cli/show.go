package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vauthproject/vauth/internal/totp"
)

// outW is a test seam for the live view output.
var outW io.Writer = os.Stdout

// clearScreen is a test seam; the default homes the cursor and clears via
// ANSI escapes.
var clearScreen = func() {
	fmt.Fprint(outW, "\033[H\033[2J")
}

// ShowService decrypts the seed for a credential and runs the live one-time
// code view until the user quits.
func (a *App) ShowService(ctx context.Context, service, username string) error {
	seed, err := a.vault.FindSeed(ctx, a.userID, a.password, username, service)
	if err != nil {
		a.printError(ctx, err)
		return err
	}
	return a.watchCode(ctx, seed, service, username)
}

// watchCode redraws the current code, a progress bar and the remaining
// seconds once per second. Cancellation is an explicit channel: a reader
// goroutine consumes input lines and closes quit when the user types "q"
// (or on EOF); the loop observes it between redraws and the goroutine is
// joined before returning.
func (a *App) watchCode(ctx context.Context, seed, service, username string) error {
	code, remaining, err := a.vault.ShowCode(ctx, seed, a.userID, service)
	if err != nil {
		a.printError(ctx, err)
		return err
	}

	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		watchForQuit(a.scanner, quit)
	}()

	renderCode(service, username, code, remaining)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			<-done
			return nil
		case <-ticker.C:
			code, remaining, err = a.vault.ShowCode(ctx, seed, a.userID, service)
			if err != nil {
				a.printError(ctx, err)
				<-done
				return err
			}
			renderCode(service, username, code, remaining)
		}
	}
}

// watchForQuit reads input lines and closes quit on "q" or EOF. Other lines
// are ignored so stray input does not tear the view down.
func watchForQuit(scanner *bufio.Scanner, quit chan<- struct{}) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "q" {
			close(quit)
			return
		}
	}
	close(quit)
}

func renderCode(service, username, code string, remaining int) {
	clearScreen()
	bar := strings.Repeat("█", remaining) + strings.Repeat("░", totp.Interval-remaining)
	fmt.Fprintf(outW, "Service: %s\nUsername: %s\nOTP: %s\n%s %ds\n", service, username, code, bar, remaining)
	fmt.Fprintln(outW, "Type 'q' + Enter to quit")
}
