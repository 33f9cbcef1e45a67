package tui

import (
	"fmt"
	"strings"
)

// Result is what the solver prints after a decryption.
type Result struct {
	Plaintext string
	Flag      string
	Copied    bool
}

// RenderResult formats r for the terminal. The plaintext is printed as is;
// the flag, if any, is highlighted in a box.
func RenderResult(r Result) string {
	var b strings.Builder

	b.WriteString("Decrypted: ")
	b.WriteString(r.Plaintext)
	b.WriteString("\n")

	if r.Flag == "" {
		return b.String()
	}

	line := "Flag: " + flagStyle.Render(r.Flag)
	if r.Copied {
		line += helpStyle.Render(" (copied to clipboard)")
	}
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(line))
	b.WriteString("\n")

	return b.String()
}

// RenderError formats a failure for the terminal.
func RenderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %s", humanizeServerUnavailableError(err)))
}
