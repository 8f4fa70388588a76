package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/config"
)

// errConfigExists is returned by config init when a file is already present.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command. Inside a project (a
// directory tree containing .lcafocus/, or one named by --project-dir) it
// writes the project overlay unless --global is given; otherwise it writes
// the user configuration.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project, creates $PROJECT/.lcafocus/config.yaml. Use --global to
write ~/.lcafocus/config.yaml even inside a project.`,
		Example: `  # Create configuration (project-local when inside a project)
  lcafocus config init

  # Create user configuration
  lcafocus config init --global

  # Overwrite an existing file
  lcafocus config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Defaults()
			if projectDir := config.GetResolvedProjectDir(); projectDir != "" && !global {
				cfg.SetPath(config.ProjectConfigPath(projectDir))
			} else {
				path, err := config.UserConfigPath()
				if err != nil {
					return err
				}
				cfg.SetPath(path)
			}
			return writeInitialConfig(cmd, cfg, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the user configuration even inside a project")

	return cmd
}

func writeInitialConfig(cmd *cobra.Command, cfg *config.Config, force bool) error {
	path := cfg.Path()
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errConfigExists
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).
		Str("operation", "config_init").
		Str("path", path).
		Msg("configuration written")
	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}
