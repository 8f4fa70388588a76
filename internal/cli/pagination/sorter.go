package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/lcafocus/internal/lca"
)

// LessFunc reports whether a sorts before b in ascending order.
type LessFunc[T any] func(a, b T) bool

// FieldSorter sorts rows by a named field.
type FieldSorter[T any] struct {
	fields map[string]LessFunc[T]
}

// NewFieldSorter creates a sorter over the given field comparators.
func NewFieldSorter[T any](fields map[string]LessFunc[T]) *FieldSorter[T] {
	return &FieldSorter[T]{fields: fields}
}

// IsValidField checks if the field is valid for sorting.
func (s *FieldSorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// GetValidFields returns all valid sort fields in name order.
func (s *FieldSorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a stably sorted copy of rows. The input is not modified.
func (s *FieldSorter[T]) Sort(rows []T, field, order string) ([]T, error) {
	less, ok := s.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)",
			ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping indices for desc keeps equal rows in input order.
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}

// SortExpr parses a "field[:order]" expression and sorts rows by it. An
// empty expression returns rows unchanged.
func (s *FieldSorter[T]) SortExpr(rows []T, expr string) ([]T, error) {
	if strings.TrimSpace(expr) == "" {
		return rows, nil
	}
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	return s.Sort(rows, field, order)
}

func metricLess[T interface{ Metric(string) (float64, bool) }](name string) LessFunc[T] {
	return func(a, b T) bool {
		va, _ := a.Metric(name)
		vb, _ := b.Metric(name)
		return va < vb
	}
}

// NewTotalsSorter sorts per-product totals by identifier or metric.
func NewTotalsSorter() *FieldSorter[lca.ProductTotal] {
	fields := map[string]LessFunc[lca.ProductTotal]{
		lca.ColProductID:   func(a, b lca.ProductTotal) bool { return a.ProductID < b.ProductID },
		lca.ColProductName: func(a, b lca.ProductTotal) bool { return a.ProductName < b.ProductName },
	}
	for _, m := range append(lca.ImpactMetrics(), lca.ColWasteKg) {
		fields[m] = metricLess[lca.ProductTotal](m)
	}
	return NewFieldSorter(fields)
}

// NewComparisonSorter sorts comparison rows by identifier, metric or
// relative metric.
func NewComparisonSorter() *FieldSorter[lca.ComparisonRow] {
	fields := map[string]LessFunc[lca.ComparisonRow]{
		lca.ColProductID:   func(a, b lca.ComparisonRow) bool { return a.ProductID < b.ProductID },
		lca.ColProductName: func(a, b lca.ComparisonRow) bool { return a.ProductName < b.ProductName },
	}
	for _, m := range lca.ImpactMetrics() {
		fields[m] = metricLess[lca.ComparisonRow](m)
		fields[m+lca.RelativeSuffix] = metricLess[lca.ComparisonRow](m + lca.RelativeSuffix)
	}
	return NewFieldSorter(fields)
}
