package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/lcafocus/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Long: fmt.Sprintf(`Prints the effective value of a configuration key, after the project
overlay and environment overrides are applied.

Keys: %s`, strings.Join(config.Keys(), ", ")),
		Example: `  lcafocus config get output.precision
  lcafocus config get factors.path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. Values are validated
// before the file is written.
func NewConfigSetCmd() *cobra.Command {
	var project bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  lcafocus config set output.default_format json
  lcafocus config set factors.path ~/lca/factors.json
  lcafocus config set logging.level debug --project`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1], project)
		},
	}

	cmd.Flags().BoolVar(&project, "project", false, "write the project overlay instead of the user configuration")

	return cmd
}

func runConfigSet(cmd *cobra.Command, key, value string, project bool) error {
	path, err := configFileFor(project)
	if err != nil {
		return err
	}

	cfg := config.Defaults()
	cfg.SetPath(path)
	if _, statErr := os.Stat(path); statErr == nil {
		loaded, loadErr := config.LoadFile(path)
		if loadErr != nil {
			return loadErr
		}
		cfg = loaded
	}

	if err = cfg.Set(key, value); err != nil {
		return err
	}
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).
		Str("operation", "config_set").
		Str("key", key).
		Str("path", path).
		Msg("configuration updated")
	cmd.Printf("Set %s = %s in %s\n", key, value, path)
	return nil
}

// configFileFor returns the project overlay path or the user config path.
func configFileFor(project bool) (string, error) {
	if project {
		dir := config.GetResolvedProjectDir()
		if dir == "" {
			return "", fmt.Errorf("no project directory found: run inside a project or pass --%s", flagProjectDir)
		}
		return config.ProjectConfigPath(dir), nil
	}
	return config.UserConfigPath()
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every effective configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			for _, key := range config.Keys() {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				cmd.Printf("%s = %s\n", key, v)
			}
			return nil
		},
	}
}
