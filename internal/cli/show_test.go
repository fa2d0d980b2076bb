package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCode(t *testing.T) {
	var sb strings.Builder
	origOut, origClear := outW, clearScreen
	outW = &sb
	clearScreen = func() {}
	t.Cleanup(func() { outW, clearScreen = origOut, origClear })

	renderCode("github", "alice@example.com", "287082", 12)

	out := sb.String()
	assert.Contains(t, out, "Service: github")
	assert.Contains(t, out, "Username: alice@example.com")
	assert.Contains(t, out, "OTP: 287082")
	assert.Contains(t, out, "12s")
	assert.Contains(t, out, strings.Repeat("█", 12)+strings.Repeat("░", 18))
}

func TestWatchForQuit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "q quits", input: "q\n"},
		{name: "stray input then q", input: "hello\nworld\nq\n"},
		{name: "eof quits", input: "hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quit := make(chan struct{})
			watchForQuit(bufio.NewScanner(strings.NewReader(tt.input)), quit)

			select {
			case <-quit:
			default:
				t.Fatal("quit channel not closed")
			}
		})
	}
}
