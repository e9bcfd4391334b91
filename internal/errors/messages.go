package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the chlog CLI.

// InvalidSection creates an error for an entry aimed at an unknown category.
func InvalidSection(err error, valid []string) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Usage:    `chlog --section Added --entry "- new feature (#123)"`,
		Remediation: []string{
			"Use one of: " + strings.Join(valid, ", "),
			"Category names are case sensitive",
		},
		Err: err,
	}
}

// UnreleasedMissing creates an error for a changelog without an [Unreleased] block.
func UnreleasedMissing(err error, path string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  err.Error(),
		Remediation: []string{
			fmt.Sprintf("Add a \"## [Unreleased]\" heading near the top of %s", path),
		},
		Err: err,
	}
}

// ChangelogUnreadable creates an error for a changelog file that cannot be read.
func ChangelogUnreadable(err error, path string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("reading %s: %v", path, err),
		Remediation: []string{
			"Run chlog from the repository root or pass --file <path>",
			"Set changelog_path in .chlog/config.yml or CHLOG_CHANGELOG_PATH",
		},
		Err: err,
	}
}

// InvalidPRNumber creates an error for a non-positive pull request number.
func InvalidPRNumber(n int) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid PR number: %d", n),
		`chlog --pr-title "feat(auth): login" --pr-number 123`,
		"PR numbers must be positive integers",
	)
}

// NoPRNumberInSubject creates an error for a HEAD commit subject without "(#N)".
func NoPRNumberInSubject(subject string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("HEAD commit subject has no PR reference: %q", subject),
		`Squash-merge subjects look like "feat(auth): login (#123)"`,
		"Or pass --pr-title and --pr-number explicitly",
	)
}
