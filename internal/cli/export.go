package cli

import (
	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/spf13/cobra"
)

func newExportCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the changelog as YAML or JSON",
		Long: `Export every version and its categorised entries as structured data.

Versions appear newest first; the unreleased block uses the version
"unreleased". Placeholder entries are omitted.`,
		Example: `  chlog export                 # YAML to stdout
  chlog export --format json   # JSON to stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := o.loadStructure()
			if err != nil {
				return err
			}
			if err := changelog.Export(log, format, cmd.OutOrStdout()); err != nil {
				return clierrors.Wrap(err, clierrors.Argument, "Use --format yaml or --format json")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", changelog.FormatYAML, "Output format: yaml | json")
	return cmd
}
