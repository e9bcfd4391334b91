package cli

import (
	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/spf13/cobra"
)

func newExtractCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <version>",
		Short: "Extract release notes for a specific version",
		Long: `Extract release notes for a specific version in markdown format.

The output is the version's category blocks without the version heading,
suitable for GitHub release notes. Placeholder entries are omitted.`,
		Example: `  chlog extract v0.6.0     # Extract notes for version 0.6.0
  chlog extract unreleased # Extract unreleased changes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := o.loadStructure()
			if err != nil {
				return err
			}

			v, err := o.lookupVersion(cmd, log, args[0])
			if err != nil {
				return err
			}
			return changelog.RenderVersionMarkdown(v, cmd.OutOrStdout())
		},
	}
}
