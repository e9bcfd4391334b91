package changelog

import (
	"fmt"
	"io"
)

// RenderVersionMarkdown writes a version's changes as "### Category" blocks,
// suitable for release notes. Empty categories are omitted.
func RenderVersionMarkdown(v *Version, w io.Writer) error {
	first := true
	for _, cat := range ValidCategories() {
		entries := v.Changes.Get(cat)
		if len(entries) == 0 {
			continue
		}

		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		if _, err := fmt.Fprintln(w, cat.Header()); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := fmt.Fprintf(w, "- %s\n", entry); err != nil {
				return err
			}
		}
	}
	return nil
}
