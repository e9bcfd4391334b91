package changelog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVersionMarkdown(t *testing.T) {
	v := &Version{
		Version: "1.0.0",
		Changes: Changes{
			Security: []string{"S"},
			Added:    []string{"A1", "A2"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderVersionMarkdown(v, &buf))
	assert.Equal(t, "### Added\n- A1\n- A2\n\n### Security\n- S\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderVersionMarkdown(&Version{Version: "2.0.0"}, &buf))
	assert.Empty(t, buf.String())
}

func TestExport(t *testing.T) {
	c := ParseStructure(sampleChangelog, DefaultPlaceholders())

	tests := map[string]struct {
		format   string
		contains []string
	}{
		"yaml": {
			format:   FormatYAML,
			contains: []string{"versions:", "version: 1.1.0", "date: \"2026-02-01\"", "crash on empty file (#10)"},
		},
		"json": {
			format:   FormatJSON,
			contains: []string{`"versions": [`, `"version": "1.0.0"`, `"security": [`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(c, tt.format, &buf))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	err := Export(&Changelog{}, "toml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestFormatVersion_Plain(t *testing.T) {
	v := &Version{
		Version: "1.2.0",
		Date:    "2026-04-01",
		Changes: Changes{Fixed: []string{"bug"}, Added: []string{"feature"}},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatVersion(v, &buf, FormatOptions{Plain: true}))

	want := "## v1.2.0 (2026-04-01)\n\n### Added\n  - feature\n\n### Fixed\n  - bug\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatTerminal_GroupsByVersion(t *testing.T) {
	entries := sampleStructure().AllEntries()

	var buf bytes.Buffer
	require.NoError(t, FormatTerminal(entries, &buf, FormatOptions{Plain: true}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "## v"))
	assert.True(t, strings.HasPrefix(out, "## Unreleased\n"))
	assert.Less(t, strings.Index(out, "v1.1.0"), strings.Index(out, "v1.0.0"))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", wrapText("short", 20, "  "))
	assert.Equal(t, "aaa bbb\n  ccc", wrapText("aaa bbb ccc", 8, "  "))
	assert.Equal(t, "anything", wrapText("anything", 0, "  "))
}

func TestDocument_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		content  string
		wantTerm string
	}{
		"lf":               {content: "a\nb\n", wantTerm: "\n"},
		"crlf":             {content: "a\r\nb\r\n", wantTerm: "\r\n"},
		"no trailing line": {content: "a", wantTerm: "\n"},
		"empty":            {content: "", wantTerm: "\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := Parse(tt.content)
			assert.Equal(t, tt.wantTerm, doc.Terminator)
			assert.Equal(t, tt.content, doc.String())
		})
	}
}

func TestDocument_InsertAndLine(t *testing.T) {
	doc := Parse("a\nd")
	doc.Insert(1, "b", "c")
	doc.Insert(len(doc.Lines), "e")
	assert.Equal(t, "a\nb\nc\nd\ne", doc.String())

	_, ok := doc.Line(5)
	assert.False(t, ok)
	line, ok := doc.Line(0)
	assert.True(t, ok)
	assert.Equal(t, "a", line)
}

func TestPlaceholdersFor(t *testing.T) {
	assert.Equal(t, []string{"en", "ko"}, PlaceholderLocales())

	for _, locale := range PlaceholderLocales() {
		p, err := PlaceholdersFor(locale)
		require.NoError(t, err)
		for _, seed := range []string{p.Added, p.Changed, p.Fixed} {
			assert.True(t, p.IsPlaceholder(seed), "%s seed %q must be recognised", locale, seed)
		}
		assert.False(t, p.IsPlaceholder("- real entry (#1)"))
	}

	_, err := PlaceholdersFor("fr")
	assert.Error(t, err)
}
