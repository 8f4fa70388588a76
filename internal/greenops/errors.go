package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrCalculationOverflow is returned for NaN or infinite inputs.
const ErrCalculationOverflow = constError("calculation overflow")
