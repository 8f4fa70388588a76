package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/cli/pagination"
	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/report"
)

type compareParams struct {
	products []string
	list     pagination.Params
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	var params compareParams

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare selected products against the lowest of them",
		Long: `Totals the selected products and reports, for each impact metric, how
far above the lowest selected product each one is, as a percentage. A metric
whose lowest value is 0 reports 0% for every product.`,
		Example: `  lcafocus compare --data products.csv --factors factors.json --products P001,P002
  lcafocus compare --data products.csv --factors factors.json --products P001 --products P003 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, params)
		},
	}

	cmd.Flags().StringSliceVar(&params.products, "products", nil,
		"Product IDs to compare (comma-separated or repeated)")
	addListFlags(cmd, &params.list, "carbon_impact_relative:desc")
	_ = cmd.MarkFlagRequired("products")

	return cmd
}

func runCompare(cmd *cobra.Command, params compareParams) error {
	ctx := cmd.Context()
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	rows, err := loadImpacts(cmd)
	if err != nil {
		return err
	}

	compared := lca.Compare(rows, params.products)
	if len(compared) == 0 {
		logger.Warn().Ctx(ctx).
			Strs("products", params.products).
			Msg("none of the requested products are in the input table")
	}

	window, meta, err := applyList(ctx, compared, params.list, pagination.NewComparisonSorter())
	if err != nil {
		return err
	}
	return r.Comparison(report.ComparisonReport{Products: window, Pagination: meta})
}
