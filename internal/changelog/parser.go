package changelog

import (
	"regexp"
	"strings"
)

// releaseHeaderPattern captures the label and optional date of a "## [...]" heading.
var releaseHeaderPattern = regexp.MustCompile(`^## \[([^\]]+)\](?:\s*-\s*(\S+))?`)

// ParseStructure builds a read-only structured view of a markdown changelog.
// Entries under unknown "###" headings and placeholder lines are skipped.
// Continuation lines (indented text under an entry) are not captured.
func ParseStructure(content string, placeholders Placeholders) *Changelog {
	doc := Parse(content)
	pattern := placeholders.pattern()

	var c Changelog
	var current *Version
	var category Category

	for _, line := range doc.Lines {
		if strings.HasPrefix(line, "# ") && c.Project == "" && current == nil {
			c.Project = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}

		if m := releaseHeaderPattern.FindStringSubmatch(line); m != nil {
			c.Versions = append(c.Versions, newVersion(m[1], m[2]))
			current = &c.Versions[len(c.Versions)-1]
			category = ""
			continue
		}

		if current == nil {
			continue
		}

		if isCategoryHeader(line) {
			category = Category(strings.TrimSpace(strings.TrimPrefix(line, "### ")))
			if !category.Valid() {
				category = ""
			}
			continue
		}

		if category == "" || !strings.HasPrefix(line, "- ") || pattern.MatchString(line) {
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(line, "- "))
		if text != "" {
			current.Changes.Add(category, text)
		}
	}

	return &c
}

func newVersion(label, date string) Version {
	if strings.EqualFold(label, "unreleased") {
		return Version{Version: "unreleased"}
	}
	return Version{Version: NormalizeVersion(label), Date: date}
}
