package changelog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// entryLinePattern matches dash list items, indented or not.
var entryLinePattern = regexp.MustCompile(`^\s*-`)

// Editor rewrites changelog text. It holds the placeholder set used to
// recognise and seed empty categories and the clock used to date releases.
// The zero value is not usable; construct with NewEditor.
type Editor struct {
	placeholders Placeholders
	placeholder  *regexp.Regexp
	now          func() time.Time
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithPlaceholders sets the placeholder set.
func WithPlaceholders(p Placeholders) EditorOption {
	return func(e *Editor) { e.placeholders = p }
}

// WithClock sets the clock used to date releases.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) { e.now = now }
}

// NewEditor creates an Editor with English placeholders and the wall clock.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		placeholders: DefaultPlaceholders(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.placeholder = e.placeholders.pattern()
	return e
}

// Placeholders returns the editor's placeholder set.
func (e *Editor) Placeholders() Placeholders {
	return e.placeholders
}

// AddEntry inserts entry into the given category of the unreleased block.
//
// A missing category subsection is created directly under the unreleased
// header. In an existing subsection the last placeholder line is
// overwritten; without a placeholder the entry becomes the first line of
// the subsection.
func (e *Editor) AddEntry(content string, category Category, entry string) (string, error) {
	if !category.Valid() {
		return "", &InvalidCategoryError{Category: string(category)}
	}

	doc := Parse(content)
	unreleased := doc.Index(isUnreleasedHeader)
	if unreleased == -1 {
		return "", ErrUnreleasedNotFound
	}

	header := category.Header()
	sectionIdx, end := -1, len(doc.Lines)
	for i := unreleased + 1; i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		if isReleaseHeader(line) {
			end = i
			break
		}
		if line == header {
			sectionIdx = i
		} else if isCategoryHeader(line) && sectionIdx != -1 {
			end = i
			break
		}
	}

	if sectionIdx == -1 {
		at := unreleased + 1
		if next, ok := doc.Line(at); ok && next == "" {
			doc.Insert(at+1, header, entry)
		} else {
			doc.Insert(at, "", header, entry)
		}
		return doc.String(), nil
	}

	placeholderIdx := -1
	for i := sectionIdx + 1; i < end; i++ {
		line := doc.Lines[i]
		if entryLinePattern.MatchString(line) && e.placeholder.MatchString(line) {
			placeholderIdx = i
		}
	}

	if placeholderIdx != -1 {
		doc.Replace(placeholderIdx, entry)
	} else {
		doc.Insert(sectionIdx+1, entry)
	}
	return doc.String(), nil
}

// HasUnreleased reports whether content contains the unreleased header text.
func (e *Editor) HasUnreleased(content string) bool {
	return strings.Contains(content, UnreleasedHeader)
}

// Release turns the unreleased header into "## [version] - YYYY-MM-DD" and
// seeds a fresh unreleased block above it with Added, Changed and Fixed
// placeholders. Everything below the old header is kept as is. Content
// without an unreleased header is returned unchanged.
func (e *Editor) Release(content, version string) string {
	if !e.HasUnreleased(content) {
		return content
	}
	term := Parse(content).Terminator
	return strings.Replace(content, UnreleasedHeader, e.releaseBlock(version, term), 1)
}

func (e *Editor) releaseBlock(version, term string) string {
	p := e.placeholders
	lines := []string{
		UnreleasedHeader,
		"",
		Added.Header(),
		p.Added,
		"",
		Changed.Header(),
		p.Changed,
		"",
		Fixed.Header(),
		p.Fixed,
		"",
		"---",
		"",
		ReleaseHeader(version, e.now().UTC()),
	}
	return strings.Join(lines, term)
}

// ReleaseHeader formats a dated release heading.
func ReleaseHeader(version string, date time.Time) string {
	return fmt.Sprintf("## [%s] - %s", version, date.Format(time.DateOnly))
}
