// Package pagination provides sorting and offset/page slicing for CLI list
// output.
//
//   - Params: flag values and their validation
//   - Meta: page metadata attached to JSON output
//   - FieldSorter: named-field sorting for totals and comparison rows
package pagination
