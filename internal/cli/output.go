package cli

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"
)

// isInputInteractive returns true if stdin is a terminal.
func isInputInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// outputJSON outputs data as formatted JSON.
func outputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
