package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ariel-frischer/chlog/internal/config"
	chloggit "github.com/ariel-frischer/chlog/internal/git"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releasedChangelog = `# Changelog

## [Unreleased]

### Added
- (new features to be recorded here)
- **cli**: export command (#20)

## [0.4.1] - 2026-02-01

### Fixed
- **parser**: empty input crash (#12)

## [0.4.0] - 2026-01-15

### Added
- config file support (#10)

### Changed
- faster startup (#11)
`

func TestShow(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    []string
		notWant []string
	}{
		"default shows recent entries": {
			args:    []string{"show"},
			want:    []string{"export command (#20)", "config file support (#10)"},
			notWant: []string{"to be recorded"},
		},
		"last limits entries": {
			args:    []string{"show", "--last", "1"},
			want:    []string{"export command (#20)", "(1 of 4 entries shown. Use --last 4 to see all)"},
			notWant: []string{"empty input crash"},
		},
		"single version": {
			args:    []string{"show", "v0.4.0"},
			want:    []string{"config file support (#10)", "faster startup (#11)"},
			notWant: []string{"export command"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

			res := run(t, path, tt.args...)
			require.NoError(t, res.err)
			for _, w := range tt.want {
				assert.Contains(t, res.stdout, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, res.stdout, w)
			}
		})
	}
}

func TestShow_UnknownVersion(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

	res := run(t, path, "show", "9.9.9")
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(res.err))
	assert.Contains(t, res.stderr, `Version "9.9.9" not found.`)
	assert.Contains(t, res.stderr, "  0.4.1\n")
}

func TestShow_NoEntries(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), "# Changelog\n\n## [Unreleased]\n")

	res := run(t, path, "show")
	require.NoError(t, res.err)
	assert.Equal(t, "No changelog entries found.\n", res.stdout)
}

func TestExtract(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

	res := run(t, path, "extract", "0.4.0")
	require.NoError(t, res.err)
	assert.Equal(t, "### Added\n- config file support (#10)\n\n### Changed\n- faster startup (#11)\n", res.stdout)
}

func TestExtract_RequiresVersion(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

	res := run(t, path, "extract")
	require.Error(t, res.err)
}

func TestExport(t *testing.T) {
	tests := map[string]struct {
		format string
		want   []string
	}{
		"yaml": {
			format: "yaml",
			want:   []string{"project: Changelog", "version: unreleased", "2026-01-15"},
		},
		"json": {
			format: "json",
			want:   []string{`"project": "Changelog"`, `"version": "0.4.1"`, `"date": "2026-02-01"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

			res := run(t, path, "export", "--format", tt.format)
			require.NoError(t, res.err)
			for _, w := range tt.want {
				assert.Contains(t, res.stdout, w)
			}
			assert.NotContains(t, res.stdout, "to be recorded")
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

	res := run(t, path, "export", "--format", "toml")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, ExitCode(res.err))
}

func TestVersionCmd(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), releasedChangelog)

	res := run(t, path, "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "chlog "))
	assert.Contains(t, res.stdout, "platform: ")
}

// initGitRepo creates a repository holding a committed CHANGELOG.md whose
// HEAD commit message is message.
func initGitRepo(t *testing.T, content, message string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	path := writeChangelogFixture(t, dir, content)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.Base(path))
	require.NoError(t, err)
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return path
}

func TestRun_FromHead(t *testing.T) {
	path := initGitRepo(t, seedChangelog, "feat(cli): read HEAD subject (#42)\n\nbody")

	res := run(t, path, "--from-head")
	require.NoError(t, res.err)
	assert.Equal(t, "Added entry to Added: - **cli**: read HEAD subject (#42)\n", res.stdout)
	assert.Contains(t, readFile(t, path), "### Added\n- **cli**: read HEAD subject (#42)\n")
}

func TestRun_FromHeadWithoutPRNumber(t *testing.T) {
	path := initGitRepo(t, seedChangelog, "feat: direct push")

	res := run(t, path, "--from-head")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "no PR reference")
	assert.Equal(t, seedChangelog, readFile(t, path))
}

func TestRun_FromHeadOutsideRepository(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), seedChangelog)

	res := run(t, path, "--from-head")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, ExitCode(res.err))
}

func TestRun_ReleaseWithTag(t *testing.T) {
	path := initGitRepo(t, seedChangelog, "chore: prepare release")

	res := run(t, path, "--release", "--version", "0.5.0", "--tag")
	require.NoError(t, res.err)
	assert.Equal(t, "Released version 0.5.0\nTagged v0.5.0\n", res.stdout)

	repo, err := git.PlainOpen(filepath.Dir(path))
	require.NoError(t, err)
	_, err = repo.Tag("v0.5.0")
	require.NoError(t, err)
}

func TestRun_ReleaseWithExistingTag(t *testing.T) {
	path := initGitRepo(t, seedChangelog, "chore: prepare release")

	require.NoError(t, run(t, path, "--release", "--version", "0.5.0", "--tag").err)
	require.NoError(t, os.WriteFile(path, []byte(seedChangelog), 0o644))

	res := run(t, path, "--release", "--version", "0.5.0", "--tag")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "tagging release")
	assert.Empty(t, res.stdout)
	assert.Equal(t, seedChangelog, readFile(t, path))
}

func TestRun_ReleaseTagWithoutUnreleased(t *testing.T) {
	content := "# Changelog\n\n## [1.0.0] - 2026-01-01\n"
	path := initGitRepo(t, content, "chore: prepare release")

	res := run(t, path, "--release", "--version", "2.0.0", "--tag")
	require.NoError(t, res.err)
	assert.Equal(t, "Released version 2.0.0\n", res.stdout)
	assert.Contains(t, res.stderr, "tag not created")
	assert.Equal(t, content, readFile(t, path))

	exists, err := chloggit.TagExists(filepath.Dir(path), "v2.0.0")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_ReleaseTagOutsideRepository(t *testing.T) {
	path := writeChangelogFixture(t, t.TempDir(), seedChangelog)

	res := run(t, path, "--release", "--version", "0.5.0", "--tag")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, ExitCode(res.err))
	assert.Contains(t, res.err.Error(), "tagging release")
	assert.Empty(t, res.stdout)
	assert.Equal(t, seedChangelog, readFile(t, path))
}

func TestInit(t *testing.T) {
	tests := map[string]struct {
		existing string
		args     []string
		wantOut  string
		wantFile string
	}{
		"creates project config": {
			args:     []string{"init"},
			wantOut:  "Created ",
			wantFile: "template",
		},
		"keeps existing config": {
			existing: "placeholder_locale: ko\n",
			args:     []string{"init"},
			wantOut:  "Config already exists",
			wantFile: "placeholder_locale: ko\n",
		},
		"force overwrites broken config": {
			existing: "placeholder_locale: [\n",
			args:     []string{"init", "--force"},
			wantOut:  "Created ",
			wantFile: "template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			dir := t.TempDir()
			cfgPath := filepath.Join(dir, ".chlog", "config.yml")
			if tt.existing != "" {
				require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
				require.NoError(t, os.WriteFile(cfgPath, []byte(tt.existing), 0o644))
			}

			var stdout, stderr bytes.Buffer
			cmd := newRootCmd(deps{now: fixedNow})
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(append([]string{"--plain", "--config", cfgPath}, tt.args...))

			require.NoError(t, cmd.Execute())
			assert.Contains(t, stdout.String(), tt.wantOut)

			want := tt.wantFile
			if want == "template" {
				want = config.GetDefaultConfigTemplate()
			}
			assert.Equal(t, want, readFile(t, cfgPath))
		})
	}
}

func TestInit_WrittenConfigIsLoaded(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".chlog", "config.yml")
	path := writeChangelogFixture(t, dir, seedChangelog)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd(deps{now: fixedNow})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--plain", "--config", cfgPath, "init"})
	require.NoError(t, cmd.Execute())

	cmd = newRootCmd(deps{now: fixedNow})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--plain", "--config", cfgPath, "--file", path, "--get-next-version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0.4.2\n", stdout.String())
}
