package lca

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EndOfLifeTolerance is the maximum allowed distance between a row's
// end-of-life rate sum and 1.0. The comparison is strict.
const EndOfLifeTolerance = 1e-3

// Validate reports whether the table satisfies the input schema and the
// numeric and end-of-life consistency constraints. It never mutates t.
func Validate(t Table) bool {
	return ValidateTable(t) == nil
}

// ValidateTable checks t and returns the first violation found, or nil.
//
// Checks run in order: every required column is present, every cell of
// every numeric column coerces to a number, and every row whose end-of-life
// rates sum to more than zero sums to one within EndOfLifeTolerance. Rows
// with all three rates zero are exempt from the last check.
//
// The returned error is a *SchemaError, *TypeCoercionError or
// *ConsistencyError.
func ValidateTable(t Table) error {
	for _, col := range RequiredColumns() {
		if !t.HasColumn(col) {
			return &SchemaError{Column: col}
		}
	}

	for _, col := range NumericColumns() {
		for i, row := range t.Rows {
			v := row[col]
			if _, ok := ToFloat(v); !ok {
				return &TypeCoercionError{Column: col, Row: i, Value: v}
			}
		}
	}

	for i, row := range t.Rows {
		sum := 0.0
		for _, col := range []string{ColRecyclingRate, ColLandfillRate, ColIncinerationRate} {
			f, _ := ToFloat(row[col])
			sum += f
		}
		if sum <= 0 {
			continue
		}
		if math.Abs(sum-1) >= EndOfLifeTolerance {
			return &ConsistencyError{Row: i, Sum: sum}
		}
	}

	return nil
}

// ToFloat coerces a raw cell to a number.
//
// Numbers of any Go numeric kind and json.Number are accepted, as are
// strings that parse as floats after trimming surrounding space. Empty
// strings, nil, booleans and NaN are rejected.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// cellString renders a raw cell as a string. Missing cells become "".
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// cellFloat coerces a cell, yielding NaN when it is not numeric.
func cellFloat(v any) float64 {
	f, ok := ToFloat(v)
	if !ok {
		return math.NaN()
	}
	return f
}

// Records decodes every row of t into a typed Record.
//
// Records performs no validation: callers are expected to have run Validate
// first. Cells that do not coerce become NaN so that bad input propagates
// numerically instead of failing mid-calculation.
func Records(t Table) []Record {
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, Record{
			ProductID:         cellString(row[ColProductID]),
			ProductName:       cellString(row[ColProductName]),
			LifeCycleStage:    cellString(row[ColLifeCycleStage]),
			MaterialType:      cellString(row[ColMaterialType]),
			QuantityKg:        cellFloat(row[ColQuantityKg]),
			EnergyKwh:         cellFloat(row[ColEnergyKwh]),
			TransportKm:       cellFloat(row[ColTransportKm]),
			TransportMode:     cellString(row[ColTransportMode]),
			WasteKg:           cellFloat(row[ColWasteKg]),
			RecyclingRate:     cellFloat(row[ColRecyclingRate]),
			LandfillRate:      cellFloat(row[ColLandfillRate]),
			IncinerationRate:  cellFloat(row[ColIncinerationRate]),
			CarbonFootprintKg: cellFloat(row[ColCarbonFootprintKg]),
			WaterLiters:       cellFloat(row[ColWaterLiters]),
		})
	}
	return out
}
