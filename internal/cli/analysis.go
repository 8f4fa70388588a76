package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/lca"
)

const flagProduct = "product"

// NewBreakdownCmd creates the breakdown command.
func NewBreakdownCmd() *cobra.Command {
	var dimension, metric string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Sum a metric grouped by a dimension",
		Long: `Sums one metric grouped by a dimension column and reports each group's
share of the total.

Dimensions: material_type, life_cycle_stage, transport_mode, product_id, product_name.
Metrics: carbon_impact, energy_impact, water_impact, waste_generated_kg and the
numeric input columns.`,
		Example: `  lcafocus breakdown --data products.csv --factors factors.json
  lcafocus breakdown --data products.csv --factors factors.json --by life_cycle_stage --metric water_impact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			rows, err := loadImpacts(cmd)
			if err != nil {
				return err
			}
			groups, err := lca.Breakdown(rows, dimension, metric)
			if err != nil {
				return err
			}
			return r.Breakdown(groups, dimension, metric)
		},
	}

	cmd.Flags().StringVar(&dimension, "by", lca.ColMaterialType, "Dimension column to group by")
	cmd.Flags().StringVar(&metric, "metric", lca.ColCarbonImpact, "Metric column to sum")

	return cmd
}

// NewStagesCmd creates the stages command.
func NewStagesCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:     "stages",
		Short:   "Show one product's impacts per life-cycle stage",
		Example: `  lcafocus stages --data products.csv --factors factors.json --product P001`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			rows, err := loadImpacts(cmd)
			if err != nil {
				return err
			}
			return r.Stages(productID, lca.StageProfile(rows, productID))
		},
	}

	cmd.Flags().StringVar(&productID, flagProduct, "", "Product ID to profile")
	_ = cmd.MarkFlagRequired(flagProduct)

	return cmd
}

// NewEndOfLifeCmd creates the eol command.
func NewEndOfLifeCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:     "eol",
		Aliases: []string{"end-of-life"},
		Short:   "Show one product's recycling, landfill and incineration rates",
		Example: `  lcafocus eol --data products.csv --product P001`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			in, err := loadInputs(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			// Rates come straight from the input, so factors are not applied.
			rows := lca.NewCalculator(nil).CalculateTable(in.table)
			return r.EndOfLife(productID, lca.EndOfLife(rows, productID))
		},
	}

	cmd.Flags().StringVar(&productID, flagProduct, "", "Product ID to inspect")
	_ = cmd.MarkFlagRequired(flagProduct)

	return cmd
}

// NewCorrelationCmd creates the correlation command.
func NewCorrelationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correlation",
		Short: "Correlate impacts and waste across input rows",
		Long: `Computes the Pearson correlation between carbon, energy and water impact
and generated waste over every input row. Pairs involving a constant column
are undefined and shown as n/a.`,
		Example: `  lcafocus correlation --data products.csv --factors factors.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			rows, err := loadImpacts(cmd)
			if err != nil {
				return err
			}
			return r.Correlation(lca.Correlation(rows))
		},
	}
}
