package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/cli/pagination"
	"github.com/rshade/lcafocus/internal/greenops"
	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/report"
)

type totalsParams struct {
	normalize bool
	list      pagination.Params
}

// NewTotalsCmd creates the totals command, which sums impacts per product.
func NewTotalsCmd() *cobra.Command {
	var params totalsParams

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Sum impacts per product",
		Long: `Sums carbon, energy and water impact and generated waste per product
across every life-cycle stage and material. With --normalize each impact
column is divided by its largest value, so the highest-impact product scores 1.

Table output ends with everyday equivalents of the combined footprint.`,
		Example: `  lcafocus totals --data products.csv --factors factors.json
  lcafocus totals --data products.csv --factors factors.json --normalize
  lcafocus totals --data products.csv --factors factors.json --sort carbon_impact:desc --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTotals(cmd, params)
		},
	}

	cmd.Flags().BoolVar(&params.normalize, "normalize", false,
		"Scale each impact column by its maximum")
	addListFlags(cmd, &params.list, "carbon_impact:desc")

	return cmd
}

func runTotals(cmd *cobra.Command, params totalsParams) error {
	ctx := cmd.Context()
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	rows, err := loadImpacts(cmd)
	if err != nil {
		return err
	}

	totals := lca.Totals(rows)

	// Equivalents describe the real footprint, so they use raw totals.
	var equivalency *greenops.EquivalencyOutput
	eq, eqErr := greenops.Calculate(greenops.FromTotals(totals))
	if eqErr != nil {
		logger.Warn().Ctx(ctx).Err(eqErr).Msg("skipping equivalencies")
	} else if !eq.IsEmpty {
		equivalency = &eq
	}

	if params.normalize {
		totals = lca.Normalize(totals)
	}

	window, meta, err := applyList(ctx, totals, params.list, pagination.NewTotalsSorter())
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "totals").
		Int("product_count", len(totals)).
		Bool("normalized", params.normalize).
		Msg("totals computed")

	return r.Totals(report.TotalsReport{
		Totals:      window,
		Normalized:  params.normalize,
		Equivalency: equivalency,
		Pagination:  meta,
	})
}
