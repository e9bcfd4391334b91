package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the chlog CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a failed operation or missing mode flags
	ExitFailure = 1

	// ExitInvalidArguments indicates a read-only subcommand was given an
	// argument that does not exist in the changelog (e.g. unknown version)
	ExitInvalidArguments = 3
)

// ExitError carries an exit code for errors whose message has already
// been written to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError returns an ExitError for code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
