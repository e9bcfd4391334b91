package changelog

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersion(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
	}{
		"single release":   {content: "## [2.3.4] - 2024-01-01\n", want: "2.3.5"},
		"no release":       {content: "# Changelog\n\n## [Unreleased]\n", want: "1.0.0"},
		"empty document":   {content: "", want: "1.0.0"},
		"unreleased first": {content: "## [Unreleased]\n\n## [0.9.9] - 2026-01-01\n## [0.9.8] - 2025-12-01\n", want: "0.9.10"},
		"first match wins": {content: "## [1.0.0] - 2026-02-01\n## [3.0.0] - 2026-01-01\n", want: "1.0.1"},
		"prerelease label ignored": {
			content: "## [2.0.0-rc.1] - 2026-02-01\n## [1.4.2] - 2026-01-01\n",
			want:    "1.4.3",
		},
		"v prefix not matched": {content: "## [v1.2.3] - 2026-01-01\n", want: "1.0.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NextVersion(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextVersion_Idempotent(t *testing.T) {
	content := "## [Unreleased]\n\n## [0.1.0] - 2026-01-01\n"

	first, err := NextVersion(content)
	require.NoError(t, err)
	second, err := NextVersion(content)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNextVersion_Overflow(t *testing.T) {
	tests := map[string]string{
		"component too large to parse": "## [1.0.99999999999999999999999] - 2026-01-01\n",
		"patch at max int":             fmt.Sprintf("## [1.2.%d] - 2026-01-01\n", math.MaxInt),
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NextVersion(content)
			require.Error(t, err)
			assert.Empty(t, got)

			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"v1.2.3":     "1.2.3",
		"V1.2.3":     "1.2.3",
		"1.2.3":      "1.2.3",
		" 1.2.3 ":    "1.2.3",
		"Unreleased": "unreleased",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeVersion(in), in)
	}
}
