// Package cli implements the chlog command line: the root command selects
// one changelog operation through mode flags, and subcommands provide
// read-only views of the document.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const usageText = `Usage:
  chlog --section Added --entry "- New feature (#123)"
  chlog --pr-title "feat(auth): login" --pr-number 123
  chlog --from-head
  chlog --release [--version 1.2.0] [--tag]
  chlog --get-next-version
`

// deps holds the process collaborators that tests replace.
type deps struct {
	now func() time.Time
}

// rootOptions holds flag values and the state resolved before a command runs.
type rootOptions struct {
	deps deps

	file       string
	configPath string
	debug      bool
	plain      bool

	getNextVersion bool
	release        bool
	version        string
	tag            bool
	prTitle        string
	prNumber       int
	fromHead       bool
	section        string
	entry          string

	cfg    *config.Configuration
	editor *changelog.Editor
	logger *log.Logger
	path   string
}

// Execute runs the chlog command line against os.Args and reports any
// error on stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	reportError(cmd.ErrOrStderr(), err)
	return err
}

// NewRootCmd builds the chlog command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{now: time.Now})
}

func newRootCmd(d deps) *cobra.Command {
	o := &rootOptions{deps: d}

	cmd := &cobra.Command{
		Use:   "chlog",
		Short: "Maintain a Keep a Changelog style CHANGELOG.md",
		Long: `chlog edits CHANGELOG.md in place.

Exactly one mode runs per invocation, chosen in this order:
  --get-next-version            print the next patch version
  --release [--version X.Y.Z]   promote [Unreleased] to a dated release
  --pr-title T --pr-number N    classify a conventional commit title and add it
  --from-head                   same, using the HEAD commit subject "title (#N)"
  --section S --entry E         add a literal entry to category S`,
		Example: `  chlog --pr-title "feat(auth): add login" --pr-number 123
  chlog --section Fixed --entry "- crash on empty input (#124)"
  chlog --release --tag
  chlog show --last 10`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
		RunE:              o.runMode,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.file, "file", "f", "", "Changelog file (default from config: CHANGELOG.md)")
	pf.StringVar(&o.configPath, "config", "", "Project config file (default .chlog/config.yml)")
	pf.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&o.plain, "plain", false, "Plain output (no colors/icons)")

	f := cmd.Flags()
	f.BoolVar(&o.getNextVersion, "get-next-version", false, "Print the next patch version and exit")
	f.BoolVar(&o.release, "release", false, "Promote [Unreleased] to a dated release")
	f.StringVar(&o.version, "version", "", "Version for --release (default: next patch version)")
	f.BoolVar(&o.tag, "tag", false, "With --release, create an annotated git tag for the version")
	f.StringVar(&o.prTitle, "pr-title", "", "Pull request title (conventional commit format)")
	f.IntVar(&o.prNumber, "pr-number", 0, "Pull request number")
	f.BoolVar(&o.fromHead, "from-head", false, "Use the HEAD commit subject as PR title and number")
	f.StringVar(&o.section, "section", "", "Category for --entry: "+fmt.Sprint(changelog.CategoryNames()))
	f.StringVar(&o.entry, "entry", "", "Literal entry line to add")

	cmd.AddCommand(
		newShowCmd(o),
		newExtractCmd(o),
		newExportCmd(o),
		newVersionCmd(o),
		newInitCmd(o),
	)
	return cmd
}

// setup loads configuration and wires logging, color and the editor.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: o.configPath,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"Check .chlog/config.yml and CHLOG_* environment variables")
	}
	o.cfg = cfg

	if o.plain || cfg.NoColor {
		color.NoColor = true
	}

	o.logger = logging.New(cmd.ErrOrStderr(), o.debug || cfg.Debug)
	git.SetDebugLogger(logging.DebugFunc(o.logger))

	placeholders, err := cfg.Placeholders()
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}
	o.editor = changelog.NewEditor(
		changelog.WithPlaceholders(placeholders),
		changelog.WithClock(o.deps.now),
	)

	o.path = cfg.ChangelogPath
	if o.file != "" {
		o.path = o.file
	}
	o.logger.Debug("configuration loaded", "changelog", o.path, "locale", cfg.PlaceholderLocale)
	return nil
}

// plainOutput reports whether color and icons are disabled.
func (o *rootOptions) plainOutput() bool {
	return o.plain || (o.cfg != nil && o.cfg.NoColor) || color.NoColor
}

// runMode dispatches to the first selected mode, or prints usage.
func (o *rootOptions) runMode(cmd *cobra.Command, _ []string) error {
	switch {
	case o.getNextVersion:
		return o.runGetNextVersion(cmd)
	case o.release:
		return o.runRelease(cmd)
	case o.prTitle != "" && cmd.Flags().Changed("pr-number"):
		return o.runPREntry(cmd, o.prTitle, o.prNumber)
	case o.fromHead:
		return o.runFromHead(cmd)
	case o.section != "" && o.entry != "":
		return o.runSectionEntry(cmd)
	}

	fmt.Fprint(cmd.ErrOrStderr(), usageText)
	return NewExitError(ExitFailure)
}

// reportError writes err to w unless it only carries an exit code.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	clierrors.FprintError(w, err, !color.NoColor)
}
