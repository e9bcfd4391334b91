package changelog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DefaultFirstVersion is returned when no numbered release exists yet.
const DefaultFirstVersion = "1.0.0"

var versionHeaderPattern = regexp.MustCompile(`## \[(\d+)\.(\d+)\.(\d+)\]`)

// NextVersion returns the most recent numbered release with its patch
// component incremented. Only the first "## [X.Y.Z]" header in document
// order is considered, so release headers are expected newest first.
func NextVersion(content string) (string, error) {
	m := versionHeaderPattern.FindStringSubmatch(content)
	if m == nil {
		return DefaultFirstVersion, nil
	}

	parts := make([]int, 3)
	for i, s := range m[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", &ParseError{
				Message: fmt.Sprintf("invalid version component %q in %q", s, m[0]),
				Err:     err,
			}
		}
		parts[i] = n
	}

	if parts[2] == math.MaxInt {
		return "", &ParseError{
			Message: fmt.Sprintf("patch component of %q cannot be incremented", m[0]),
		}
	}

	return fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2]+1), nil
}
