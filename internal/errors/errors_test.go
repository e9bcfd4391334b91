package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	tests := map[ErrorCategory]string{
		Argument:          "Argument Error",
		Configuration:     "Configuration Error",
		Prerequisite:      "Prerequisite Error",
		Runtime:           "Runtime Error",
		ErrorCategory(42): "Error",
	}
	for cat, want := range tests {
		assert.Equal(t, want, cat.String())
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "x"))

	cause := stderrors.New("disk full")
	wrapped := WrapWithMessage(cause, Runtime, "writing CHANGELOG.md", "free some space")

	assert.Equal(t, "writing CHANGELOG.md: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, []string{"free some space"}, wrapped.Remediation)
}

func TestAsCLIError(t *testing.T) {
	inner := NewArgumentError("bad flag")
	outer := fmt.Errorf("running: %w", inner)

	assert.Same(t, inner, AsCLIError(outer))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewArgumentErrorWithUsage("missing entry", "chlog --section Added --entry E", "Pass --entry")

	got := FormatErrorPlain(err)
	want := "Error: missing entry\n\nUsage: chlog --section Added --entry E\n\nTo fix this:\n  • Pass --entry\n"
	assert.Equal(t, want, got)
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestFprintError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"plain error": {
			err:  stderrors.New("[Unreleased] section not found"),
			want: "Error: [Unreleased] section not found\n",
		},
		"wrapped cli error": {
			err:  fmt.Errorf("ctx: %w", NewConfigError("bad locale", "use en")),
			want: "Error: bad locale\n\nTo fix this:\n  • use en\n",
		},
		"nil": {
			err:  nil,
			want: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			FprintError(&buf, tt.err, false)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestMessages(t *testing.T) {
	cause := stderrors.New("invalid section: Foo")
	err := InvalidSection(cause, []string{"Added", "Fixed"})
	require.NotNil(t, err)
	assert.Equal(t, Argument, err.Category)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Remediation[0], "Added, Fixed")

	assert.Equal(t, Prerequisite, UnreleasedMissing(cause, "CHANGELOG.md").Category)
	assert.Contains(t, ChangelogUnreadable(cause, "X.md").Error(), "reading X.md")
	assert.Contains(t, InvalidPRNumber(0).Error(), "0")
	assert.Contains(t, NoPRNumberInSubject("chore: x").Error(), "chore: x")
}

func TestFprintError_Colored(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, NewArgumentErrorWithUsage("bad flag", "chlog --section Added"), true)

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "bad flag")
	assert.Contains(t, out, "chlog --section Added")
}
