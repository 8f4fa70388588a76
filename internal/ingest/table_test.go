package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
)

const sampleCSV = `product_id,product_name,life_cycle_stage,material_type,quantity_kg,energy_consumption_kwh,transport_distance_km,transport_mode,waste_generated_kg,recycling_rate,landfill_rate,incineration_rate,carbon_footprint_kg_co2e,water_usage_liters
P001,Widget,Production,Steel,100,20,150,truck,3.5,0.6,0.3,0.1,50,0
P002,Gadget,Use,Aluminum,10,5,0,,0,0,0,0,0,12.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeFile(t, "input.csv", sampleCSV)

	tbl, err := ingest.ReadTable(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, lca.RequiredColumns(), tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "P001", tbl.Rows[0][lca.ColProductID])
	assert.Equal(t, "100", tbl.Rows[0][lca.ColQuantityKg])
	assert.Equal(t, "", tbl.Rows[1][lca.ColTransportMode])
	assert.True(t, lca.Validate(tbl))
}

func TestReadTable_UppercaseExtension(t *testing.T) {
	path := writeFile(t, "INPUT.CSV", sampleCSV)

	tbl, err := ingest.ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestParseCSV_BOMAndBlankLines(t *testing.T) {
	in := "\uFEFFproduct_id, product_name\nP1,One\n,\nP2,Two\n"

	tbl, err := ingest.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"product_id", "product_name"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "P2", tbl.Rows[1]["product_id"])
}

func TestParseCSV_Empty(t *testing.T) {
	tbl, err := ingest.ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Zero(t, tbl.Len())
}

func TestParseCSV_ShortRow(t *testing.T) {
	tbl, err := ingest.ParseCSV(strings.NewReader("a,b,c\n1,2\n"))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)

	_, ok := tbl.Rows[0]["c"]
	assert.False(t, ok, "short rows leave trailing columns absent")
}

func TestReadTable_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := ingest.ReadTable(ctx, filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ingest.ErrFileNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ingest.ReadTable(ctx, t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ingest.ErrFileNotFound))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "input.parquet", "x")
		_, err := ingest.ReadTable(ctx, path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ingest.ErrUnsupportedFormat))
		assert.Contains(t, err.Error(), ".parquet")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "input.json", `[{"product_id": `)
		_, err := ingest.ReadTable(ctx, path)
		require.Error(t, err)
	})

	t.Run("json scalar root", func(t *testing.T) {
		path := writeFile(t, "input.json", `42`)
		_, err := ingest.ReadTable(ctx, path)
		require.Error(t, err)
	})
}

func TestParseJSON_Records(t *testing.T) {
	in := `[
	  {"product_id": "P1", "quantity_kg": 100, "extra": true},
	  {"product_id": "P2", "quantity_kg": 2.5}
	]`

	tbl, err := ingest.ParseJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"product_id", "quantity_kg", "extra"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, json.Number("100"), tbl.Rows[0]["quantity_kg"])
	assert.Equal(t, json.Number("2.5"), tbl.Rows[1]["quantity_kg"])
}

func TestParseJSON_ColumnsArrays(t *testing.T) {
	in := `{"quantity_kg": [1, 2], "product_id": ["P1", "P2"]}`

	tbl, err := ingest.ParseJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"product_id", "quantity_kg"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "P2", tbl.Rows[1]["product_id"])
	assert.Equal(t, json.Number("2"), tbl.Rows[1]["quantity_kg"])
}

func TestParseJSON_ColumnsIndexed(t *testing.T) {
	in := `{"product_id": {"10": "P11", "2": "P3", "0": "P1"}}`

	tbl, err := ingest.ParseJSON(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "P1", tbl.Rows[0]["product_id"])
	assert.Equal(t, "P3", tbl.Rows[1]["product_id"])
	assert.Equal(t, "P11", tbl.Rows[2]["product_id"])
}

func TestParseJSON_Empty(t *testing.T) {
	tbl, err := ingest.ParseJSON(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTable_XLSX(t *testing.T) {
	header := make([]any, 0, len(lca.RequiredColumns()))
	for _, c := range lca.RequiredColumns() {
		header = append(header, c)
	}
	path := writeWorkbook(t, [][]any{
		header,
		{"P001", "Widget", "Production", "Steel", 100, 20, 150, "truck", 3.5, 0.6, 0.3, 0.1, 50, 0},
	})

	tbl, err := ingest.ReadTable(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, lca.RequiredColumns(), tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "P001", tbl.Rows[0][lca.ColProductID])
	assert.True(t, lca.Validate(tbl))

	q, ok := lca.ToFloat(tbl.Rows[0][lca.ColQuantityKg])
	require.True(t, ok)
	assert.InDelta(t, 100.0, q, 1e-9)
}

func TestReadTable_XLSXIgnoresNumberFormats(t *testing.T) {
	header := make([]any, 0, len(lca.RequiredColumns()))
	for _, c := range lca.RequiredColumns() {
		header = append(header, c)
	}
	path := writeWorkbook(t, [][]any{
		header,
		{"P001", "Widget", "Production", "Steel", 1234.5, 20, 150, "truck", 3.5, 0.3333, 0.3333, 0.3334, 50, 0.35},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	sheet := f.GetSheetName(0)
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	require.NoError(t, err)
	oneDecimal := "0.0"
	rounded, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDecimal})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "E2", "E2", thousands))
	require.NoError(t, f.SetCellStyle(sheet, "J2", "L2", percent))
	require.NoError(t, f.SetCellStyle(sheet, "N2", "N2", rounded))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	tbl, err := ingest.ReadTable(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, lca.ValidateTable(tbl))

	rec := lca.Records(tbl)[0]
	assert.InDelta(t, 1234.5, rec.QuantityKg, 1e-9)
	assert.InDelta(t, 0.3333, rec.RecyclingRate, 1e-9)
	assert.InDelta(t, 0.3334, rec.IncinerationRate, 1e-9)
	assert.InDelta(t, 0.35, rec.WaterLiters, 1e-9)
}

func TestReadTable_FormatsAgree(t *testing.T) {
	ctx := context.Background()
	csvPath := writeFile(t, "input.csv", sampleCSV)

	fromCSV, err := ingest.ReadTable(ctx, csvPath)
	require.NoError(t, err)

	raw, err := json.Marshal(fromCSV.Rows)
	require.NoError(t, err)
	jsonPath := writeFile(t, "input.json", string(raw))

	fromJSON, err := ingest.ReadTable(ctx, jsonPath)
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Columns, fromJSON.Columns)
	assert.Equal(t, lca.Records(fromCSV), lca.Records(fromJSON))
}

func TestSupportedTableFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{".csv", ".xlsx", ".json"}, ingest.SupportedTableFormats())
}
