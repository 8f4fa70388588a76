// Package report renders LCA results as aligned text tables, indented JSON
// or newline-delimited JSON. Table headers and JSON keys use the exact
// column names of the data model.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format is an output format.
type Format string

// Supported output formats.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatNDJSON)}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
