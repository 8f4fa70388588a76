package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/rshade/lcafocus/internal/lca"
)

func readJSONFile(path string) (lca.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return lca.Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseJSON(f)
}

// ParseJSON reads a table in one of two layouts:
//
//   - records: an array of objects, one per row
//   - columns: an object mapping column name to either an array of cells or
//     an object of row index to cell
//
// Numbers are kept as json.Number so no precision is lost before coercion.
func ParseJSON(r io.Reader) (lca.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return lca.Table{}, fmt.Errorf("reading JSON: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return lca.Table{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	switch data[0] {
	case '[':
		var records []map[string]any
		if err = dec.Decode(&records); err != nil {
			return lca.Table{}, fmt.Errorf("parsing JSON records: %w", err)
		}
		return recordsTable(records), nil
	case '{':
		var columns map[string]json.RawMessage
		if err = dec.Decode(&columns); err != nil {
			return lca.Table{}, fmt.Errorf("parsing JSON columns: %w", err)
		}
		return columnsTable(columns)
	default:
		return lca.Table{}, errors.New("parsing JSON: root must be an array of records or an object of columns")
	}
}

func recordsTable(records []map[string]any) lca.Table {
	keys := make(map[string]bool)
	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		for k := range rec {
			keys[k] = true
		}
		rows = append(rows, rec)
	}
	return lca.Table{Columns: orderColumns(keys), Rows: rows}
}

func columnsTable(columns map[string]json.RawMessage) (lca.Table, error) {
	keys := make(map[string]bool, len(columns))
	cells := make(map[string][]any, len(columns))
	n := 0

	for name, raw := range columns {
		keys[name] = true
		values, err := decodeColumn(raw)
		if err != nil {
			return lca.Table{}, fmt.Errorf("parsing JSON column %q: %w", name, err)
		}
		cells[name] = values
		n = max(n, len(values))
	}

	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = make(map[string]any, len(columns))
	}
	for name, values := range cells {
		for i, v := range values {
			rows[i][name] = v
		}
	}
	return lca.Table{Columns: orderColumns(keys), Rows: rows}, nil
}

// decodeColumn accepts either [v0, v1, ...] or {"0": v0, "1": v1, ...}.
// Index objects are ordered numerically; non-numeric indexes sort after
// numeric ones by name.
func decodeColumn(raw json.RawMessage) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []any
		if err := dec.Decode(&values); err != nil {
			return nil, err
		}
		return values, nil
	}

	var indexed map[string]any
	if err := dec.Decode(&indexed); err != nil {
		return nil, err
	}
	idx := make([]string, 0, len(indexed))
	for k := range indexed {
		idx = append(idx, k)
	}
	sort.Slice(idx, func(i, j int) bool {
		a, aErr := strconv.Atoi(idx[i])
		b, bErr := strconv.Atoi(idx[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return idx[i] < idx[j]
		}
	})
	values := make([]any, len(idx))
	for i, k := range idx {
		values[i] = indexed[k]
	}
	return values, nil
}
