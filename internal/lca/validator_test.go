package lca

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRow returns a row satisfying every constraint, as CSV would produce it.
func validRow(id string) map[string]any {
	return map[string]any{
		ColProductID:         id,
		ColProductName:       "Widget " + id,
		ColLifeCycleStage:    "Production",
		ColMaterialType:      "Steel",
		ColQuantityKg:        "100",
		ColEnergyKwh:         "20",
		ColTransportKm:       "150",
		ColTransportMode:     "truck",
		ColWasteKg:           "3.5",
		ColRecyclingRate:     "0.6",
		ColLandfillRate:      "0.3",
		ColIncinerationRate:  "0.1",
		ColCarbonFootprintKg: "50",
		ColWaterLiters:       "0",
	}
}

func tableOf(rows ...map[string]any) Table {
	return Table{Columns: RequiredColumns(), Rows: rows}
}

func TestValidate_Valid(t *testing.T) {
	assert.True(t, Validate(tableOf(validRow("P001"), validRow("P002"))))
	assert.True(t, Validate(tableOf()), "empty table with full schema is valid")
}

func TestValidate_MissingEachColumn(t *testing.T) {
	for _, col := range RequiredColumns() {
		t.Run(col, func(t *testing.T) {
			var cols []string
			for _, c := range RequiredColumns() {
				if c != col {
					cols = append(cols, c)
				}
			}
			row := validRow("P001")
			delete(row, col)
			tbl := Table{Columns: cols, Rows: []map[string]any{row}}

			assert.False(t, Validate(tbl))

			err := ValidateTable(tbl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingColumn))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, col, schemaErr.Column)
		})
	}
}

func TestValidate_NonNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "text", value: "heavy"},
		{name: "empty string", value: ""},
		{name: "nil", value: nil},
		{name: "NaN string", value: "NaN"},
		{name: "bool", value: true},
	}

	for _, col := range NumericColumns() {
		for _, tt := range tests {
			t.Run(col+"/"+tt.name, func(t *testing.T) {
				bad := validRow("P002")
				bad[col] = tt.value
				tbl := tableOf(validRow("P001"), bad)

				assert.False(t, Validate(tbl))
				var coerceErr *TypeCoercionError
				require.ErrorAs(t, ValidateTable(tbl), &coerceErr)
				assert.Equal(t, col, coerceErr.Column)
				assert.Equal(t, 1, coerceErr.Row)
			})
		}
	}
}

func TestValidate_NumericKinds(t *testing.T) {
	row := validRow("P001")
	row[ColQuantityKg] = 100.0
	row[ColEnergyKwh] = 20
	row[ColTransportKm] = json.Number("150.5")
	row[ColWasteKg] = " 3.5 "
	row[ColWaterLiters] = int64(0)

	assert.True(t, Validate(tableOf(row)))
}

func TestValidate_EndOfLifeTolerance(t *testing.T) {
	tests := []struct {
		name        string
		recycling   string
		landfill    string
		incinerate  string
		wantValid   bool
		wantErrType error
	}{
		{name: "exact sum", recycling: "0.5", landfill: "0.3", incinerate: "0.2", wantValid: true},
		{name: "within tolerance above", recycling: "0.5", landfill: "0.3", incinerate: "0.2009", wantValid: true},
		{name: "within tolerance below", recycling: "0.5", landfill: "0.3", incinerate: "0.1991", wantValid: true},
		{
			name: "outside tolerance above", recycling: "0.5", landfill: "0.3", incinerate: "0.202",
			wantErrType: ErrInconsistentEndOfLife,
		},
		{
			name: "partial disposition", recycling: "0.5", landfill: "0", incinerate: "0",
			wantErrType: ErrInconsistentEndOfLife,
		},
		{name: "all zero exempt", recycling: "0", landfill: "0", incinerate: "0", wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow("P001")
			row[ColRecyclingRate] = tt.recycling
			row[ColLandfillRate] = tt.landfill
			row[ColIncinerationRate] = tt.incinerate

			err := ValidateTable(tableOf(row))
			if tt.wantValid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErrType)
		})
	}
}

func TestValidate_EndOfLifeExemptionIgnoresOtherRows(t *testing.T) {
	zero := validRow("P002")
	zero[ColRecyclingRate] = "0"
	zero[ColLandfillRate] = "0"
	zero[ColIncinerationRate] = "0"

	assert.True(t, Validate(tableOf(validRow("P001"), zero, validRow("P003"))))

	bad := validRow("P004")
	bad[ColLandfillRate] = "0.9"
	err := ValidateTable(tableOf(zero, bad))
	var consErr *ConsistencyError
	require.ErrorAs(t, err, &consErr)
	assert.Equal(t, 1, consErr.Row)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	row := validRow("P001")
	row[ColMaterialType] = "STEEL"
	tbl := tableOf(row)

	require.True(t, Validate(tbl))
	assert.Equal(t, "STEEL", tbl.Rows[0][ColMaterialType])
	assert.Equal(t, "100", tbl.Rows[0][ColQuantityKg])
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{in: "1.5", want: 1.5, wantOK: true},
		{in: "-2", want: -2, wantOK: true},
		{in: "1e3", want: 1000, wantOK: true},
		{in: json.Number("7"), want: 7, wantOK: true},
		{in: float32(0.5), want: 0.5, wantOK: true},
		{in: uint8(3), want: 3, wantOK: true},
		{in: "abc"},
		{in: ""},
		{in: math.NaN()},
		{in: []int{1}},
	}
	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %v", tt.in)
		if tt.wantOK {
			assert.InDelta(t, tt.want, got, 1e-12)
		}
	}
}

func TestRecords(t *testing.T) {
	row := validRow("P001")
	row[ColProductID] = json.Number("42")
	bad := validRow("P002")
	bad[ColQuantityKg] = "n/a"

	recs := Records(tableOf(row, bad))
	require.Len(t, recs, 2)
	assert.Equal(t, "42", recs[0].ProductID)
	assert.Equal(t, "Steel", recs[0].MaterialType)
	assert.InDelta(t, 100.0, recs[0].QuantityKg, 1e-12)
	assert.InDelta(t, 1.0, recs[0].EndOfLifeSum(), 1e-12)
	assert.True(t, math.IsNaN(recs[1].QuantityKg))
}
