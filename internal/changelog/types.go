package changelog

import "strings"

// Category is one of the six Keep a Changelog change kinds.
type Category string

const (
	Added      Category = "Added"
	Changed    Category = "Changed"
	Deprecated Category = "Deprecated"
	Removed    Category = "Removed"
	Fixed      Category = "Fixed"
	Security   Category = "Security"
)

// UnreleasedHeader is the heading line that opens the unreleased block.
const UnreleasedHeader = "## [Unreleased]"

// Header returns the markdown subsection heading for the category.
func (c Category) Header() string {
	return "### " + string(c)
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	for _, known := range ValidCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ValidCategories returns the list of valid Keep a Changelog categories
// in their standard rendering order.
func ValidCategories() []Category {
	return []Category{Added, Changed, Deprecated, Removed, Fixed, Security}
}

// CategoryNames returns the category labels as plain strings, in rendering order.
func CategoryNames() []string {
	cats := ValidCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// Changelog is a structured, read-only view of a CHANGELOG.md document.
// Versions are ordered as they appear in the file, newest first.
type Changelog struct {
	Project  string    `yaml:"project,omitempty" json:"project,omitempty"`
	Versions []Version `yaml:"versions" json:"versions"`
}

// Version represents a single release section of the changelog.
// The Version field is a bare semantic version (e.g., "0.6.0") or
// the special identifier "unreleased". Date is empty for unreleased.
type Version struct {
	Version string  `yaml:"version" json:"version"`
	Date    string  `yaml:"date,omitempty" json:"date,omitempty"`
	Changes Changes `yaml:"changes" json:"changes"`
}

// Changes groups change entries by Keep a Changelog category.
// Categories follow the Keep a Changelog specification:
// https://keepachangelog.com/en/1.1.0/
type Changes struct {
	Added      []string `yaml:"added,omitempty" json:"added,omitempty"`
	Changed    []string `yaml:"changed,omitempty" json:"changed,omitempty"`
	Deprecated []string `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Removed    []string `yaml:"removed,omitempty" json:"removed,omitempty"`
	Fixed      []string `yaml:"fixed,omitempty" json:"fixed,omitempty"`
	Security   []string `yaml:"security,omitempty" json:"security,omitempty"`
}

// Entry represents a flattened view of a single changelog entry.
type Entry struct {
	Text     string   `yaml:"text" json:"text"`
	Category Category `yaml:"category" json:"category"`
	Version  string   `yaml:"version" json:"version"`
}

// Get returns the entries recorded under the given category.
func (c *Changes) Get(cat Category) []string {
	if p := c.slot(cat); p != nil {
		return *p
	}
	return nil
}

// Add appends text under the given category. Unknown categories are ignored.
func (c *Changes) Add(cat Category, text string) {
	if p := c.slot(cat); p != nil {
		*p = append(*p, text)
	}
}

func (c *Changes) slot(cat Category) *[]string {
	switch cat {
	case Added:
		return &c.Added
	case Changed:
		return &c.Changed
	case Deprecated:
		return &c.Deprecated
	case Removed:
		return &c.Removed
	case Fixed:
		return &c.Fixed
	case Security:
		return &c.Security
	}
	return nil
}

// Count returns the total number of entries across all categories.
func (c Changes) Count() int {
	return len(c.Added) +
		len(c.Changed) +
		len(c.Deprecated) +
		len(c.Removed) +
		len(c.Fixed) +
		len(c.Security)
}

// IsUnreleased returns true if this version represents unreleased changes.
func (v Version) IsUnreleased() bool {
	return v.Version == "unreleased"
}

// Entries returns a flattened list of all entries in this version,
// in category rendering order.
func (v Version) Entries() []Entry {
	entries := make([]Entry, 0, v.Changes.Count())
	for _, cat := range ValidCategories() {
		for _, text := range v.Changes.Get(cat) {
			entries = append(entries, Entry{Text: text, Category: cat, Version: v.Version})
		}
	}
	return entries
}

// NormalizeVersion normalizes a version string by removing the "v" prefix.
// This allows accepting both "v0.6.0" and "0.6.0" as input.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
}
