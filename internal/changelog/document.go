package changelog

import "strings"

const (
	lf   = "\n"
	crlf = "\r\n"
)

// Document is a changelog held as an ordered sequence of lines.
// It remembers the line terminator of the source text so that String
// reproduces the original convention.
type Document struct {
	Lines      []string
	Terminator string
}

// Parse splits content into lines. Content containing any CRLF pair is
// treated as CRLF-terminated; everything else is split on LF.
func Parse(content string) *Document {
	term := lf
	if strings.Contains(content, crlf) {
		term = crlf
	}
	return &Document{
		Lines:      strings.Split(content, term),
		Terminator: term,
	}
}

// String joins the lines back together with the document's terminator.
func (d *Document) String() string {
	return strings.Join(d.Lines, d.Terminator)
}

// Index returns the index of the first line satisfying match, or -1.
func (d *Document) Index(match func(string) bool) int {
	for i, line := range d.Lines {
		if match(line) {
			return i
		}
	}
	return -1
}

// Line returns the line at i, or "" with ok=false when i is out of range.
func (d *Document) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.Lines) {
		return "", false
	}
	return d.Lines[i], true
}

// Insert splices lines in before index at. An index equal to len(Lines)
// appends.
func (d *Document) Insert(at int, lines ...string) {
	out := make([]string, 0, len(d.Lines)+len(lines))
	out = append(out, d.Lines[:at]...)
	out = append(out, lines...)
	out = append(out, d.Lines[at:]...)
	d.Lines = out
}

// Replace overwrites the line at index i.
func (d *Document) Replace(i int, line string) {
	d.Lines[i] = line
}

func isUnreleasedHeader(line string) bool {
	return strings.HasPrefix(line, UnreleasedHeader)
}

func isReleaseHeader(line string) bool {
	return strings.HasPrefix(line, "## [") && !strings.Contains(line, "[Unreleased]")
}

func isCategoryHeader(line string) bool {
	return strings.HasPrefix(line, "### ")
}
