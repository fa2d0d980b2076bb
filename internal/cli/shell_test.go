package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records shell dispatches.
type stubExec struct {
	calls []string
}

func (s *stubExec) AddService(ctx context.Context, service, username, seed string) error {
	s.calls = append(s.calls, "add:"+service+":"+username+":"+seed)
	return nil
}

func (s *stubExec) ShowService(ctx context.Context, service, username string) error {
	s.calls = append(s.calls, "show:"+service+":"+username)
	return nil
}

func (s *stubExec) ShowQR(ctx context.Context, service, username string) error {
	s.calls = append(s.calls, "qr:"+service+":"+username)
	return nil
}

func (s *stubExec) ModifyService(ctx context.Context, service, username, field, newValue string) error {
	s.calls = append(s.calls, "modify:"+service+":"+username+":"+field+":"+newValue)
	return nil
}

func (s *stubExec) RemoveService(ctx context.Context, service, username string) error {
	s.calls = append(s.calls, "remove:"+service+":"+username)
	return nil
}

func runShellWithInput(t *testing.T, input string) (*stubExec, []string) {
	t.Helper()

	var out []string
	origPrintln := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		out = append(out, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrintln })

	stub := &stubExec{}
	runShell(context.Background(), stub, bufio.NewScanner(strings.NewReader(input)))
	return stub, out
}

func TestShell_DispatchesCommands(t *testing.T) {
	stub, _ := runShellWithInput(t, strings.Join([]string{
		"add_service github alice@example.com JBSWY3DPEHPK3PXP",
		"show_service github alice@example.com",
		"show_qr github alice@example.com",
		"modify_service github alice@example.com username bob@example.com",
		"remove_service github alice@example.com",
		"q",
	}, "\n"))

	assert.Equal(t, []string{
		"add:github:alice@example.com:JBSWY3DPEHPK3PXP",
		"show:github:alice@example.com",
		"qr:github:alice@example.com",
		"modify:github:alice@example.com:username:bob@example.com",
		"remove:github:alice@example.com",
	}, stub.calls)
}

func TestShell_UsageOnWrongArgCount(t *testing.T) {
	stub, out := runShellWithInput(t, "add_service github\nq\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Usage: add_service <service> <username> <seed>")
}

func TestShell_UnknownCommand(t *testing.T) {
	stub, out := runShellWithInput(t, "frobnicate\nq\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "x unknown syntax: frobnicate")
}

func TestShell_BlankLinesIgnored(t *testing.T) {
	stub, _ := runShellWithInput(t, "\n\n   \nq\n")
	assert.Empty(t, stub.calls)
}

func TestShell_ExitsOnEOF(t *testing.T) {
	// no "q": the scanner just runs out of input
	stub, _ := runShellWithInput(t, "help\n")
	assert.Empty(t, stub.calls)
}
