package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnreleasedNotFound is returned when the document has no "## [Unreleased]" header.
var ErrUnreleasedNotFound = errors.New("[Unreleased] section not found")

// InvalidCategoryError is returned when an entry targets an unknown category.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid section: %s. Must be one of: %s",
		e.Category, strings.Join(CategoryNames(), ", "))
}

// ParseError represents a malformed value found while reading the document.
type ParseError struct {
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsInvalidCategory returns true if the error is an InvalidCategoryError.
func IsInvalidCategory(err error) bool {
	var ice *InvalidCategoryError
	return errors.As(err, &ice)
}
