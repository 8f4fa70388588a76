package lca

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel causes of a failed validation. Match them with errors.Is.
var (
	// ErrMissingColumn indicates a required schema column is absent.
	ErrMissingColumn = constError("missing required column")

	// ErrNotNumeric indicates a numeric column holds a value that cannot be
	// coerced to a number.
	ErrNotNumeric = constError("value is not numeric")

	// ErrInconsistentEndOfLife indicates a row whose end-of-life rates are
	// present but do not sum to one.
	ErrInconsistentEndOfLife = constError("end-of-life rates do not sum to 1")
)

// SchemaError reports a required column missing from the input table.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingColumn, e.Column)
}

func (e *SchemaError) Unwrap() error { return ErrMissingColumn }

// TypeCoercionError reports a cell of a numeric column that is not a number.
// Row is zero-based.
type TypeCoercionError struct {
	Column string
	Row    int
	Value  any
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("%s: column %q row %d value %v", ErrNotNumeric, e.Column, e.Row, e.Value)
}

func (e *TypeCoercionError) Unwrap() error { return ErrNotNumeric }

// ConsistencyError reports a row whose end-of-life rate triple is nonzero
// but not within tolerance of one.
type ConsistencyError struct {
	Row int
	Sum float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: row %d sums to %g", ErrInconsistentEndOfLife, e.Row, e.Sum)
}

func (e *ConsistencyError) Unwrap() error { return ErrInconsistentEndOfLife }
