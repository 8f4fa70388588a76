package cli

import (
	"github.com/spf13/cobra"
)

// NewImpactsCmd creates the impacts command, which prints every input row
// with its carbon, energy and water impact.
func NewImpactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impacts",
		Short: "Compute per-row impacts",
		Long: `Joins each input row with the impact factors for its material and
life-cycle stage, then computes:

  carbon_impact = carbon_footprint_kg_co2e + quantity_kg * carbon factor
  energy_impact = energy_consumption_kwh   + quantity_kg * energy factor
  water_impact  = water_usage_liters       + quantity_kg * water factor

Rows with no matching factor use a factor of 0.`,
		Example: `  lcafocus impacts --data products.csv --factors factors.json
  lcafocus impacts --data products.xlsx --factors factors.yaml -o ndjson`,
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
			return r.Impacts(rows)
		},
	}
}
