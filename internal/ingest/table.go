// Package ingest reads LCA input tables and impact factor documents from
// files. It is the adapter boundary: missing files and unsupported formats
// are reported here, never inside the calculation core.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/logging"
)

// Supported table formats.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Sentinel adapter errors. Match them with errors.Is.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SupportedTableFormats returns the file extensions ReadTable accepts.
func SupportedTableFormats() []string {
	return []string{ExtCSV, ExtXLSX, ExtJSON}
}

// ReadTable loads an input table from path, choosing the reader by file
// extension (case-insensitive).
func ReadTable(ctx context.Context, path string) (lca.Table, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "read_table").
		Str("path", path).
		Msg("reading input table")

	if err := checkExists(path); err != nil {
		return lca.Table{}, err
	}

	var (
		tbl lca.Table
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtCSV:
		tbl, err = readCSVFile(path)
	case ExtXLSX:
		tbl, err = readXLSXFile(path)
	case ExtJSON:
		tbl, err = readJSONFile(path)
	default:
		return lca.Table{}, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedFormat, ext, strings.Join(SupportedTableFormats(), ", "))
	}
	if err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Str("path", path).
			Msg("failed to read input table")
		return lca.Table{}, err
	}

	log.Debug().
		Str("component", "ingest").
		Int("row_count", tbl.Len()).
		Int("column_count", len(tbl.Columns)).
		Msg("input table loaded")
	return tbl, nil
}

func checkExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	return nil
}

// headerTable builds a Table from a header row and string records. Records
// shorter than the header leave the trailing columns absent; extra cells are
// dropped.
func headerTable(header []string, records [][]string) lca.Table {
	cols := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		cols[i] = h
	}

	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return lca.Table{Columns: cols, Rows: rows}
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// orderColumns returns keys with the schema columns first, in schema
// order, followed by any other keys sorted by name.
func orderColumns(keys map[string]bool) []string {
	out := make([]string, 0, len(keys))
	for _, c := range lca.RequiredColumns() {
		if keys[c] {
			out = append(out, c)
		}
	}
	known := make(map[string]bool, len(out))
	for _, c := range out {
		known[c] = true
	}
	var extra []string
	for k := range keys {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
