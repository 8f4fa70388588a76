package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/config"
	"github.com/rshade/lcafocus/internal/ingest"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Validates the merged configuration (user file, project overlay and
environment overrides). When factors.path is set, the factor document is
also loaded to check that it parses.`,
		Example: `  lcafocus config validate
  lcafocus config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the validated values")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	materials := 0
	if cfg.Factors.Path != "" {
		src, err := ingest.ReadFactors(cmd.Context(), cfg.Factors.Path)
		if err != nil {
			return fmt.Errorf("factors.path: %w", err)
		}
		materials = len(src)
	}

	cmd.Println("Configuration is valid")

	if verbose {
		cmd.Println()
		cmd.Println("Configuration details:")
		cmd.Printf("  Config file: %s\n", cfg.Path())
		if dir := config.GetResolvedProjectDir(); dir != "" {
			cmd.Printf("  Project directory: %s\n", dir)
		}
		cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
		cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
		cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
		cmd.Printf("  Factors path: %s\n", cfg.Factors.Path)
		if cfg.Factors.Path != "" {
			cmd.Printf("  Factor materials: %d\n", materials)
		}
	}

	return nil
}
