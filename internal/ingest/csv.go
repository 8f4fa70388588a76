package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/lcafocus/internal/lca"
)

func readCSVFile(path string) (lca.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return lca.Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads a header row followed by data rows. Every cell is kept as
// a string; numeric coercion happens during validation.
func ParseCSV(r io.Reader) (lca.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return lca.Table{}, nil
		}
		return lca.Table{}, fmt.Errorf("reading CSV header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return lca.Table{}, fmt.Errorf("reading CSV rows: %w", err)
	}
	return headerTable(header, records), nil
}
