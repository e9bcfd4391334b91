// Package config provides hierarchical configuration management for chlog using koanf.
// Configuration is loaded with priority: environment variables > project config (.chlog/config.yml)
// > user config (~/.config/chlog/config.yml) > defaults. Project and user configs may also be
// written as JSON (config.json); YAML wins when both exist.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "CHLOG_"

// Configuration represents the chlog CLI tool configuration
type Configuration struct {
	// ChangelogPath is the markdown file every operation reads and rewrites.
	// Relative paths resolve against the working directory.
	ChangelogPath string `koanf:"changelog_path" validate:"required"`

	// PlaceholderLocale selects the placeholder entries seeded by a release
	// and recognised when adding entries: "en" or "ko".
	PlaceholderLocale string `koanf:"placeholder_locale" validate:"required,oneof=en ko"`

	// TagPrefix is prepended to the version when --release --tag creates a git tag.
	TagPrefix string `koanf:"tag_prefix" validate:"max=16"`

	Debug   bool `koanf:"debug"`
	NoColor bool `koanf:"no_color"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog/config.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (default: XDG config dir)
	UserConfigPath string
	// WarningWriter receives warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses warnings
	SkipWarnings bool
	// SkipUser ignores the user-level config entirely
	SkipUser bool
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if !opts.SkipUser {
		userYAMLPath := opts.UserConfigPath
		if userYAMLPath == "" {
			userYAMLPath, _ = UserConfigPath()
		}
		if err := loadLayer(k, userYAMLPath, "user", warningWriter, opts.SkipWarnings); err != nil {
			return nil, err
		}
	}

	projectYAMLPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectYAMLPath = opts.ProjectConfigPath
	}
	if err := loadLayer(k, projectYAMLPath, "project", warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadLayer loads one config level. The YAML file is preferred; a JSON
// sibling (same name, .json extension) is used when the YAML file is absent.
func loadLayer(k *koanf.Koanf, yamlPath, configType string, warningWriter io.Writer, skipWarnings bool) error {
	if yamlPath == "" {
		return nil
	}
	jsonPath := JSONSibling(yamlPath)

	yamlExists := fileExists(yamlPath)
	jsonExists := fileExists(jsonPath)

	switch {
	case yamlExists:
		if err := loadYAMLConfig(k, yamlPath, configType); err != nil {
			return fmt.Errorf("loading %s YAML config: %w", configType, err)
		}
		if jsonExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: JSON config found at %s (ignored, using %s)\n\n", jsonPath, yamlPath)
		}
	case jsonExists:
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, jsonPath, err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ChangelogPath = expandHomePath(cfg.ChangelogPath)

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// Placeholders returns the placeholder preset selected by PlaceholderLocale.
func (c *Configuration) Placeholders() (changelog.Placeholders, error) {
	return changelog.PlaceholdersFor(c.PlaceholderLocale)
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHLOG_CHANGELOG_PATH -> changelog_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return homeDir + path[1:]
		}
	}
	return path
}
