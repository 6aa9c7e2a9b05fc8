package domain

import (
	"fmt"
	"strings"
)

// Configuration file names.
const (
	// ConfigFileName is the file name inside the global config directory.
	ConfigFileName = "config.toml"
	// RepoConfigFileName is the repository config file at the repo root.
	RepoConfigFileName = ".issuekit.toml"
	// GlobalConfigDirName is the directory under $XDG_CONFIG_HOME.
	GlobalConfigDirName = "issuekit"
)

// Config represents the application configuration.
type Config struct {
	Lint   LintConfig   `toml:"lint"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`

	// Warnings collected while parsing config files (unknown keys etc).
	Warnings []string `toml:"-"`
}

// LintConfig holds settings from the [lint] section.
type LintConfig struct {
	// Required front-matter keys; missing or empty ones are errors.
	Required []string `toml:"required"`
	// Recommended front-matter keys; missing ones are warnings.
	Recommended []string `toml:"recommended"`
	// AllowedLabels restricts labels when non-empty; others warn.
	AllowedLabels []string `toml:"allowed_labels"`
	// Severity overrides per rule id, e.g. "body/heading" = "warning".
	Severity map[string]string `toml:"severity"`
}

// RenderConfig holds settings from the [render] section.
type RenderConfig struct {
	// StripComments removes HTML comment placeholders from rendered drafts.
	StripComments bool `toml:"strip_comments"`
	// FillPlaceholders substitutes {{version}}, {{branch}}, {{repo}} and {{date}} tokens.
	FillPlaceholders bool `toml:"fill_placeholders"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Required:    []string{"name", "about"},
			Recommended: []string{"title", "labels", "assignees"},
			Severity:    map[string]string{},
		},
		Render: RenderConfig{
			StripComments:    false,
			FillPlaceholders: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SeverityFor returns the effective severity for a rule, applying
// configured overrides on top of the rule's default.
func (c *Config) SeverityFor(ruleID string, def Severity) Severity {
	if c == nil {
		return def
	}
	if s, ok := c.Lint.Severity[ruleID]; ok {
		if sev, err := ParseSeverity(s); err == nil {
			return sev
		}
	}
	return def
}

// RenderConfigTemplate renders a commented TOML template for the given
// config, used by `config init` and `config template`.
func RenderConfigTemplate(cfg *Config) string {
	var b strings.Builder

	b.WriteString("# issuekit configuration\n")
	b.WriteString("#\n")
	b.WriteString("# Repository config: .issuekit.toml at the repo root\n")
	b.WriteString("# Global config:     $XDG_CONFIG_HOME/issuekit/config.toml\n")
	b.WriteString("# Repository values take precedence over global values.\n\n")

	b.WriteString("[lint]\n")
	b.WriteString("# Front-matter keys that must be present and non-empty (error).\n")
	fmt.Fprintf(&b, "required = [%s]\n", quoteList(cfg.Lint.Required))
	b.WriteString("# Front-matter keys that should be present (warning).\n")
	fmt.Fprintf(&b, "recommended = [%s]\n", quoteList(cfg.Lint.Recommended))
	b.WriteString("# Restrict labels to this set; leave empty to allow any label.\n")
	fmt.Fprintf(&b, "allowed_labels = [%s]\n", quoteList(cfg.Lint.AllowedLabels))
	b.WriteString("\n# Per-rule severity overrides.\n")
	b.WriteString("# [lint.severity]\n")
	b.WriteString("# \"body/heading\" = \"warning\"\n\n")

	b.WriteString("[render]\n")
	b.WriteString("# Remove HTML comment placeholders from `issuekit new` output.\n")
	fmt.Fprintf(&b, "strip_comments = %t\n", cfg.Render.StripComments)
	b.WriteString("# Substitute {{version}}, {{branch}}, {{repo}} and {{date}} tokens.\n")
	fmt.Fprintf(&b, "fill_placeholders = %t\n\n", cfg.Render.FillPlaceholders)

	b.WriteString("[log]\n")
	b.WriteString("# Log level: debug, info, warn, error\n")
	fmt.Fprintf(&b, "level = %q\n", cfg.Log.Level)

	return b.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
