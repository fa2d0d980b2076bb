package cli

import (
	"bufio"
	"context"
	"strings"
)

const banner = `
                  _   _
__   ____ _ _   _| |_| |__
\ \ / / _' | | | | __| '_ \
 \ V / (_| | |_| | |_| | | |
  \_/ \__,_|\__,_|\__|_| |_|

Welcome to vauth. Enter q to quit at any time.`

// shellExec defines the minimal command surface the shell needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type shellExec interface {
	AddService(ctx context.Context, service, username, seed string) error
	ShowService(ctx context.Context, service, username string) error
	ShowQR(ctx context.Context, service, username string) error
	ModifyService(ctx context.Context, service, username, field, newValue string) error
	RemoveService(ctx context.Context, service, username string) error
}

// runShell starts the interactive read–eval–print loop over an authenticated
// session. It reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "q".
//
// Any errors returned by command handlers are ignored here; handlers render
// their own messages. This keeps the shell loop focused on I/O.
func runShell(ctx context.Context, a shellExec, scanner *bufio.Scanner) {
	printlnFn(banner)

	for {
		printlnFn("vauth> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: add_service, show_service, show_qr, modify_service, remove_service, q")

		case "add_service":
			if len(args) != 3 {
				printlnFn("Usage: add_service <service> <username> <seed>")
				continue
			}
			_ = a.AddService(ctx, args[0], args[1], args[2])

		case "show_service":
			if len(args) != 2 {
				printlnFn("Usage: show_service <service> <username>")
				continue
			}
			_ = a.ShowService(ctx, args[0], args[1])

		case "show_qr":
			if len(args) != 2 {
				printlnFn("Usage: show_qr <service> <username>")
				continue
			}
			_ = a.ShowQR(ctx, args[0], args[1])

		case "modify_service":
			if len(args) != 4 {
				printlnFn("Usage: modify_service <service> <username> <'username'/'seed'> <new_value>")
				continue
			}
			_ = a.ModifyService(ctx, args[0], args[1], args[2], args[3])

		case "remove_service":
			if len(args) != 2 {
				printlnFn("Usage: remove_service <service> <username>")
				continue
			}
			_ = a.RemoveService(ctx, args[0], args[1])

		case "q", "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("x unknown syntax:", cmd)
		}
	}
}
