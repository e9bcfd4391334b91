package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/spf13/cobra"
)

func (o *rootOptions) runGetNextVersion(cmd *cobra.Command) error {
	content, err := o.readChangelog()
	if err != nil {
		return err
	}

	next, err := changelog.NextVersion(content)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}

func (o *rootOptions) runRelease(cmd *cobra.Command) error {
	content, err := o.readChangelog()
	if err != nil {
		return err
	}

	version := normalizeReleaseVersion(o.version)
	if version == "" {
		if version, err = changelog.NextVersion(content); err != nil {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
	}

	tagName := o.cfg.TagPrefix + version

	if !o.editor.HasUnreleased(content) {
		o.logger.Debug("no [Unreleased] header; changelog left unchanged", "file", o.path)
		if o.tag {
			o.logger.Warn("nothing was released; tag not created", "tag", tagName)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Released version %s\n", version)
		return nil
	}

	if o.tag {
		if err := o.checkTagAvailable(tagName); err != nil {
			return err
		}
	}

	if err := o.writeChangelog(o.editor.Release(content, version)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Released version %s\n", version)

	if !o.tag {
		return nil
	}

	if err := git.CreateTag(o.changelogDir(), tagName, "Release "+version); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "tagging release",
			"The changelog was already updated; create the tag manually with: git tag -a "+tagName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s\n", tagName)
	return nil
}

// checkTagAvailable fails when the changelog is outside a git repository or
// the tag already exists, so --release --tag writes nothing in either case.
func (o *rootOptions) checkTagAvailable(tagName string) error {
	exists, err := git.TagExists(o.changelogDir(), tagName)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Prerequisite, "tagging release",
			"Run chlog inside a git repository or drop --tag")
	}
	if exists {
		return clierrors.WrapWithMessage(fmt.Errorf("%s: %w", tagName, git.ErrTagExists),
			clierrors.Argument, "tagging release",
			"Pass a different --version or delete the existing tag")
	}
	return nil
}

func (o *rootOptions) runPREntry(cmd *cobra.Command, title string, number int) error {
	if number <= 0 {
		return clierrors.InvalidPRNumber(number)
	}

	parsed := changelog.ParseTitle(title)
	category := parsed.Category()
	entry := parsed.Entry(number)
	o.logger.Debug("classified title", "type", parsed.Type, "scope", parsed.Scope, "category", category)

	if err := o.addEntry(category, entry); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added entry to %s: %s\n", category, entry)
	return nil
}

func (o *rootOptions) runFromHead(cmd *cobra.Command) error {
	subject, err := git.HeadSubject(o.changelogDir())
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Prerequisite, "reading HEAD commit",
			"Run chlog inside a git repository or use --pr-title and --pr-number")
	}

	title, number, ok := git.ParseSquashSubject(subject)
	if !ok {
		return clierrors.NoPRNumberInSubject(subject)
	}
	return o.runPREntry(cmd, title, number)
}

func (o *rootOptions) runSectionEntry(cmd *cobra.Command) error {
	if err := o.addEntry(changelog.Category(o.section), o.entry); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added entry to %s\n", o.section)
	return nil
}

// addEntry reads the changelog, inserts entry and writes it back.
func (o *rootOptions) addEntry(category changelog.Category, entry string) error {
	content, err := o.readChangelog()
	if err != nil {
		return err
	}

	updated, err := o.editor.AddEntry(content, category, entry)
	if err != nil {
		switch {
		case changelog.IsInvalidCategory(err):
			return clierrors.InvalidSection(err, changelog.CategoryNames())
		case errors.Is(err, changelog.ErrUnreleasedNotFound):
			return clierrors.UnreleasedMissing(err, o.path)
		default:
			return clierrors.Wrap(err, clierrors.Runtime)
		}
	}

	return o.writeChangelog(updated)
}

func (o *rootOptions) readChangelog() (string, error) {
	data, err := os.ReadFile(o.path)
	if err != nil {
		return "", clierrors.ChangelogUnreadable(err, o.path)
	}
	o.logger.Debug("read changelog", "file", o.path, "bytes", len(data))
	return string(data), nil
}

// writeChangelog replaces the changelog through a temporary file in the
// same directory so a failed write leaves the original intact.
func (o *rootOptions) writeChangelog(content string) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(o.path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(o.changelogDir(), ".chlog-*")
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+o.path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+o.path)
	}
	if err := tmp.Close(); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+o.path)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+o.path)
	}
	if err := os.Rename(tmpName, o.path); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing "+o.path)
	}

	o.logger.Debug("wrote changelog", "file", o.path, "bytes", len(content))
	return nil
}

func (o *rootOptions) changelogDir() string {
	return filepath.Dir(o.path)
}

// normalizeReleaseVersion trims whitespace and a leading "v" so that
// "--version v1.2.0" produces "## [1.2.0]".
func normalizeReleaseVersion(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 1 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}
	return v
}
