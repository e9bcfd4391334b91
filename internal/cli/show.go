package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/spf13/cobra"
)

func newShowCmd(o *rootOptions) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "show [version]",
		Short: "View changelog entries",
		Long: `View changelog entries from the changelog file.

By default, shows the 5 most recent entries. Use a version argument to
see all entries for a specific version, or use --last to control entry count.
Placeholder entries are not shown.`,
		Example: `  chlog show              # Show 5 most recent entries
  chlog show v0.6.0       # Show all entries for version 0.6.0
  chlog show unreleased   # Show unreleased changes
  chlog show --last 10    # Show 10 most recent entries`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := o.loadStructure()
			if err != nil {
				return err
			}

			opts := changelog.FormatOptions{Plain: o.plainOutput()}
			if len(args) == 1 {
				v, err := o.lookupVersion(cmd, log, args[0])
				if err != nil {
					return err
				}
				return changelog.FormatVersion(v, cmd.OutOrStdout(), opts)
			}
			return showLastEntries(cmd, log, last, opts)
		},
	}

	cmd.Flags().IntVar(&last, "last", 5, "Number of entries to show")
	return cmd
}

func showLastEntries(cmd *cobra.Command, log *changelog.Changelog, n int, opts changelog.FormatOptions) error {
	entries := log.GetLastN(n)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No changelog entries found.")
		return nil
	}

	if err := changelog.FormatTerminal(entries, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}

	total := log.GetEntryCount()
	if total > len(entries) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d entries shown. Use --last %d to see all)\n",
			len(entries), total, total)
	}
	return nil
}

// loadStructure reads the changelog file into its structured view.
func (o *rootOptions) loadStructure() (*changelog.Changelog, error) {
	content, err := o.readChangelog()
	if err != nil {
		return nil, err
	}
	return changelog.ParseStructure(content, o.editor.Placeholders()), nil
}

// lookupVersion finds version in log. Unknown versions are reported on
// stderr with the list of available ones.
func (o *rootOptions) lookupVersion(cmd *cobra.Command, log *changelog.Changelog, version string) (*changelog.Version, error) {
	v, err := log.GetVersion(version)
	if err == nil {
		return v, nil
	}

	var notFound *changelog.VersionNotFoundError
	if !errors.As(err, &notFound) {
		return nil, clierrors.Wrap(err, clierrors.Runtime)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
	fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
	for _, ver := range log.ListVersions() {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ver)
	}
	return nil, NewExitError(ExitInvalidArguments)
}
