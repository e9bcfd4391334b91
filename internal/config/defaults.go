package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# chlog configuration
# Environment variables override this file: CHLOG_<KEY> (e.g. CHLOG_CHANGELOG_PATH)

changelog_path: CHANGELOG.md          # Markdown changelog to read and rewrite
placeholder_locale: en                # Placeholder entries seeded on release: en | ko
tag_prefix: v                         # Prefix for tags created by --release --tag
debug: false                          # Debug logging to stderr
no_color: false                       # Disable colored output
`
}

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_path":     "CHANGELOG.md",
		"placeholder_locale": "en",
		"tag_prefix":         "v",
		"debug":              false,
		"no_color":           false,
	}
}
