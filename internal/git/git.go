// Package git provides the repository operations chlog needs: reading the
// HEAD commit subject to build an entry and tagging a release. It uses the
// go-git library so no git CLI is required.
package git

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitError reports a failed repository operation.
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error { return e.Err }

// ErrTagExists is returned by CreateTag when the tag is already present.
var ErrTagExists = errors.New("tag already exists")

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the repository containing path, walking up to find .git.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, &GitError{Op: "open", Err: fmt.Errorf("%s: %w", path, err)}
	}
	return repo, nil
}

// HeadSubject returns the first line of the HEAD commit message.
func HeadSubject(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", &GitError{Op: "resolve HEAD", Err: err}
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", &GitError{Op: "read HEAD commit", Err: err}
	}

	subject := firstLine(commit.Message)
	logDebug("[git] HEAD %s: %s", head.Hash().String()[:8], subject)
	return subject, nil
}

var squashSubjectPattern = regexp.MustCompile(`^(.*\S)\s*\(#(\d+)\)$`)

// ParseSquashSubject splits a squash-merge subject such as
// "feat(auth): login (#123)" into its title and pull request number.
func ParseSquashSubject(subject string) (title string, number int, ok bool) {
	m := squashSubjectPattern.FindStringSubmatch(subject)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n <= 0 {
		return "", 0, false
	}
	return m[1], n, true
}

// TagExists reports whether a tag with the given name exists.
func TagExists(path, name string) (bool, error) {
	repo, err := openRepo(path)
	if err != nil {
		return false, err
	}
	return tagExists(repo, name)
}

func tagExists(repo *git.Repository, name string) (bool, error) {
	_, err := repo.Reference(plumbing.NewTagReferenceName(name), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, &GitError{Op: "lookup tag", Err: err}
}

// CreateTag creates an annotated tag at HEAD. The tagger identity comes
// from the repository or global git config, falling back to "chlog".
func CreateTag(path, name, message string) error {
	repo, err := openRepo(path)
	if err != nil {
		return err
	}

	exists, err := tagExists(repo, name)
	if err != nil {
		return err
	}
	if exists {
		return &GitError{Op: "create tag", Err: fmt.Errorf("%s: %w", name, ErrTagExists)}
	}

	head, err := repo.Head()
	if err != nil {
		return &GitError{Op: "resolve HEAD", Err: err}
	}

	_, err = repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  tagger(repo),
		Message: message,
	})
	if err != nil {
		return &GitError{Op: "create tag", Err: err}
	}

	logDebug("[git] tagged %s at %s", name, head.Hash().String()[:8])
	return nil
}

func tagger(repo *git.Repository) *object.Signature {
	sig := &object.Signature{Name: "chlog", Email: "chlog@localhost", When: time.Now()}

	for _, scope := range []config.Scope{config.LocalScope, config.GlobalScope} {
		cfg, err := repo.ConfigScoped(scope)
		if err != nil || cfg.User.Name == "" {
			continue
		}
		sig.Name = cfg.User.Name
		if cfg.User.Email != "" {
			sig.Email = cfg.User.Email
		}
		break
	}
	return sig
}

func firstLine(msg string) string {
	for i, r := range msg {
		if r == '\n' || r == '\r' {
			return msg[:i]
		}
	}
	return msg
}
