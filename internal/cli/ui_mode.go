package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode decides whether the interactive session can start. The
// quiz has no non-interactive rendition, so "auto" means "require a
// TTY" and a missing one is an error rather than a fallback.
func resolveUIMode(mode string, stdout io.Writer) error {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "tui":
		if !isTerminal(stdout) {
			return fmt.Errorf("quizdeck run needs a terminal; stdout is not a TTY")
		}
		return nil
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto|tui)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
