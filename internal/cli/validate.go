package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/report"
)

// ErrInvalidTable is returned by validate after the report has been printed.
var ErrInvalidTable = errors.New("input table failed validation")

// NewValidateCmd creates the validate command, which checks an input table
// against the column schema, numeric types and end-of-life consistency.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check an input table against the LCA schema",
		Long: `Checks that the input table has every required column, that numeric
columns hold numbers, and that recycling, landfill and incineration rates sum
to 1 wherever they are reported.`,
		Example: `  lcafocus validate --data products.csv
  lcafocus validate --data products.json -o json`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path, err := dataPath(cmd)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	tbl, err := ingest.ReadTable(ctx, path)
	if err != nil {
		return fmt.Errorf("loading input table: %w", err)
	}

	res := report.ValidationResult{
		Path:    path,
		Valid:   true,
		Rows:    tbl.Len(),
		Columns: len(tbl.Columns),
	}
	if vErr := lca.ValidateTable(tbl); vErr != nil {
		res.Valid = false
		res.Error = vErr.Error()
	}

	logger.Info().Ctx(ctx).
		Str("operation", "validate").
		Str("path", path).
		Bool("valid", res.Valid).
		Int("row_count", res.Rows).
		Msg("validation complete")

	if err = r.Validation(res); err != nil {
		return err
	}
	if !res.Valid {
		return ErrInvalidTable
	}
	return nil
}
