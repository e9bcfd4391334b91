package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCmd(o *rootOptions) *cobra.Command {
	var user, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented chlog config file",
		Long: `Write a fully commented configuration file with the default values.

By default the project config .chlog/config.yml is created (or the path
given by --config). Use --user for the user-level config instead.
An existing file is left unchanged unless --force is given.

Configuration precedence (highest to lowest):
  1. Environment variables (CHLOG_*)
  2. Project config (.chlog/config.yml)
  3. User config (~/.config/chlog/config.yml)
  4. Built-in defaults`,
		Example: `  chlog init           # Create .chlog/config.yml
  chlog init --user    # Create ~/.config/chlog/config.yml
  chlog init --force   # Overwrite with defaults`,
		Args: cobra.NoArgs,
		// A broken config must not prevent writing a fresh one.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if o.plain {
				color.NoColor = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := o.initTarget(user)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "creating config directory")
			}
			if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+path)
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", green("✓"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "Create the user-level config instead of the project config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config with defaults")
	return cmd
}

// initTarget resolves the config file init writes.
func (o *rootOptions) initTarget(user bool) (string, error) {
	if !user {
		if o.configPath != "" {
			return o.configPath, nil
		}
		return config.ProjectConfigPath(), nil
	}

	path, err := config.UserConfigPath()
	if err != nil {
		return "", clierrors.NewConfigError(
			fmt.Sprintf("cannot locate user config directory: %v", err),
			"Set XDG_CONFIG_HOME or HOME",
			"Or pass --config <path> without --user",
		)
	}
	return path, nil
}
