// Package surface renders risk results for the command line.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/diabred/diabred/internal/risk"
)

// Renderer produces formatted output from a risk result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result risk.Result) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}
