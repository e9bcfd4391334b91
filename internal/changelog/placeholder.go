package changelog

import (
	"fmt"
	"regexp"
	"sort"
)

// Placeholders holds the sentinel entries seeded into a fresh unreleased
// block. Marker is the phrase that identifies a placeholder line; every
// seed line must contain it so the first real entry replaces it.
type Placeholders struct {
	Marker  string
	Added   string
	Changed string
	Fixed   string
}

var placeholderPresets = map[string]Placeholders{
	"en": {
		Marker:  "to be recorded",
		Added:   "- (new features to be recorded here)",
		Changed: "- (changes to be recorded here)",
		Fixed:   "- (bug fixes to be recorded here)",
	},
	"ko": {
		Marker:  "예정",
		Added:   "- (예정된 기능 추가 시 여기에 기록)",
		Changed: "- (예정된 변경 사항 있을 시 여기에 기록)",
		Fixed:   "- (예정된 버그 수정 시 여기에 기록)",
	},
}

// DefaultPlaceholders returns the English preset.
func DefaultPlaceholders() Placeholders {
	return placeholderPresets["en"]
}

// PlaceholdersFor returns the preset registered for locale.
func PlaceholdersFor(locale string) (Placeholders, error) {
	p, ok := placeholderPresets[locale]
	if !ok {
		return Placeholders{}, fmt.Errorf("unknown placeholder locale %q; available: %v", locale, PlaceholderLocales())
	}
	return p, nil
}

// PlaceholderLocales lists the available presets in sorted order.
func PlaceholderLocales() []string {
	locales := make([]string, 0, len(placeholderPresets))
	for k := range placeholderPresets {
		locales = append(locales, k)
	}
	sort.Strings(locales)
	return locales
}

// pattern compiles the placeholder recogniser: a dash entry whose whole
// text is a parenthesised note containing the marker.
func (p Placeholders) pattern() *regexp.Regexp {
	return regexp.MustCompile(`^\s*-\s*\(.*` + regexp.QuoteMeta(p.Marker) + `.*\)$`)
}

// IsPlaceholder reports whether line is a placeholder entry.
func (p Placeholders) IsPlaceholder(line string) bool {
	return p.pattern().MatchString(line)
}
