package changelog

import (
	"fmt"
	"regexp"
)

// titlePattern matches conventional commit titles such as "feat(auth): add login".
var titlePattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?\s*:\s*(.+)$`)

// typeCategories maps conventional commit types to changelog categories.
// Types missing from the table fall back to Changed.
var typeCategories = map[string]Category{
	"feat":     Added,
	"fix":      Fixed,
	"docs":     Changed,
	"style":    Changed,
	"refactor": Changed,
	"perf":     Changed,
	"test":     Changed,
	"chore":    Changed,
	"build":    Changed,
	"ci":       Changed,
	"revert":   Removed,
	"security": Security,
}

// Title is a conventional commit title split into its parts.
// Scope is empty when the title carried none.
type Title struct {
	Type        string
	Scope       string
	Description string
}

// ParseTitle splits a "type(scope): description" title. Titles that do not
// follow the pattern yield type "other" with the whole title as description.
func ParseTitle(title string) Title {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return Title{Type: "other", Description: title}
	}
	return Title{Type: m[1], Scope: m[2], Description: m[3]}
}

// Category returns the changelog category for the title's type.
func (t Title) Category() Category {
	return TypeToCategory(t.Type)
}

// TypeToCategory maps a conventional commit type to its changelog category.
func TypeToCategory(commitType string) Category {
	if cat, ok := typeCategories[commitType]; ok {
		return cat
	}
	return Changed
}

// EntryFromPR builds the entry line for a pull request:
// "- **scope**: description (#number)", without the scope prefix when
// the title has no scope.
func EntryFromPR(title string, number int) string {
	return ParseTitle(title).Entry(number)
}

// Entry formats the title as an entry line referencing the given number.
func (t Title) Entry(number int) string {
	scope := ""
	if t.Scope != "" {
		scope = fmt.Sprintf("**%s**: ", t.Scope)
	}
	return fmt.Sprintf("- %s%s (#%d)", scope, t.Description, number)
}
