package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/lcafocus/internal/greenops"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// DefaultPrecision is the number of decimals used when Options.Precision is
// unset.
const DefaultPrecision = 2

//nolint:gochecknoglobals // Styles are immutable values shared by renderers.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Options controls rendering.
type Options struct {
	Format Format

	// Precision is the number of decimals printed in table output. JSON
	// output always carries full precision.
	Precision int

	// Styled enables lipgloss styling of table headers and footers. Callers
	// should only set it when writing to a terminal.
	Styled bool
}

// Renderer writes reports to a single writer.
type Renderer struct {
	w    io.Writer
	opts Options
}

// New creates a Renderer. An empty format renders tables; a negative
// precision is treated as DefaultPrecision.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatTable
	}
	if opts.Precision < 0 {
		opts.Precision = DefaultPrecision
	}
	return &Renderer{w: w, opts: opts}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.opts.Format
}

func (r *Renderer) num(v float64) string {
	return greenops.FormatFloat(v, r.opts.Precision)
}

func (r *Renderer) percent(share float64) string {
	return greenops.FormatFloat(share*100, r.opts.Precision) + "%"
}

// table is a header row, body rows and optional footer lines printed below
// the aligned block.
type table struct {
	headers []string
	rows    [][]string
	footer  []string
}

func (r *Renderer) writeTable(t table) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(t.headers, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	sep := make([]string, len(t.headers))
	for i, h := range t.headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(sep, "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Styling is applied after alignment since escape codes would skew
	// tabwriter's column widths.
	out := buf.String()
	if r.opts.Styled {
		if header, rest, ok := strings.Cut(out, "\n"); ok {
			out = headerStyle.Render(header) + "\n" + rest
		}
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	if len(t.footer) > 0 {
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	for _, line := range t.footer {
		if r.opts.Styled {
			line = footerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("writing footer: %w", err)
		}
	}
	return nil
}

func (r *Renderer) writeJSON(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeNDJSON[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshaling row: %w", err)
		}
		if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
