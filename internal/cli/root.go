package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/config"
	"github.com/rshade/lcafocus/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Persistent flag names shared by the analysis commands.
const (
	flagDebug      = "debug"
	flagData       = "data"
	flagFactors    = "factors"
	flagOutput     = "output"
	flagProjectDir = "project-dir"
)

// NewRootCmd creates the root Cobra command for the lcafocus CLI. It loads
// configuration (with any project overlay), sets up logging and tracing,
// and registers every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "lcafocus",
		Short:   "Life-cycle assessment impact calculator",
		Long:    "lcafocus: Validate product life-cycle data and compute carbon, energy and water impacts",
		Version: ver,
		Example: rootCmdExample,
		// Usage on every RunE error buries the message; errors are printed by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadConfig(cmd)
			result := setupLogging(cmd)
			logResult = &result
			for _, loadErr := range config.GetGlobalConfig().LoadErrors() {
				logger.Warn().Ctx(cmd.Context()).Err(loadErr).
					Msg("configuration file ignored, using defaults")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	pf := cmd.PersistentFlags()
	pf.Bool(flagDebug, false, "enable debug logging")
	pf.StringP(flagData, "d", "", "input table (.csv, .xlsx or .json)")
	pf.StringP(flagFactors, "f", "", "impact factor document (.json or .yaml); defaults to factors.path from config")
	pf.StringP(flagOutput, "o", "", "output format: table, json or ndjson (default from config)")
	pf.String(flagProjectDir, "", "project directory containing .lcafocus/config.yaml")

	cmd.AddCommand(
		NewValidateCmd(), NewImpactsCmd(), NewTotalsCmd(), NewCompareCmd(),
		NewBreakdownCmd(), NewStagesCmd(), NewEndOfLifeCmd(), NewCorrelationCmd(),
		NewFactorsCmd(), newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves the project directory and installs the merged
// configuration as the global config.
func loadConfig(cmd *cobra.Command) {
	flagDir, _ := cmd.Flags().GetString(flagProjectDir)
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	projectDir := config.ResolveProjectDir(cmd.Context(), flagDir, cwd)
	config.SetResolvedProjectDir(projectDir)
	config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), projectDir))
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Check an input table against the schema
  lcafocus validate --data products.csv

  # Per-row impacts as JSON
  lcafocus impacts --data products.csv --factors factors.json -o json

  # Per-product totals, highest carbon first
  lcafocus totals --data products.xlsx --factors factors.json --sort carbon_impact:desc

  # Compare two products relative to the lower one
  lcafocus compare --data products.csv --factors factors.json --products P001,P002

  # Carbon by material
  lcafocus breakdown --data products.csv --factors factors.json --by material_type

  # Initialize configuration
  lcafocus config init

  # Set a default factor document
  lcafocus config set factors.path ~/lca/factors.json`
