package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
)

// NewFactorsCmd creates the factors command, which prints the flattened
// material/stage factor table.
func NewFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List impact factors per material and life-cycle stage",
		Long: `Loads the impact factor document and prints one row per material and
life-cycle stage. Keys are shown lower-cased, as they are matched.`,
		Example: `  lcafocus factors --factors factors.json
  lcafocus factors -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			path := factorsPath(cmd)
			if path == "" {
				return ErrNoFactorsPath
			}
			src, err := ingest.ReadFactors(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("loading impact factors: %w", err)
			}
			return r.Factors(lca.LoadFactors(src).Rows())
		},
	}
}
