// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/issuekit/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Repository root (holds .issuekit.toml)
	globalConfDir string // Global config directory (e.g. ~/.config/issuekit)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, domain.GlobalConfigDirName)
}

// fileConfig is one parsed config file. It records which optional boolean
// keys the file actually set, so an explicit `false` survives the merge.
type fileConfig struct {
	cfg                 *domain.Config
	stripCommentsSet    bool
	fillPlaceholdersSet bool
}

// Load returns the merged configuration (default <- global <- repo).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var repo *fileConfig
	if l.repoRoot != "" {
		repoPath := filepath.Join(l.repoRoot, domain.RepoConfigFileName)
		repo, err = l.loadFile(repoPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	fc, err := l.loadGlobalFile()
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

func (l *Loader) loadGlobalFile() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration file into a domain config, collecting
// unknown keys as warnings rather than failing.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawConfig(raw), nil
}

// convertRawConfig converts the raw TOML map to a domain config and
// collects warnings for unknown sections and keys.
func convertRawConfig(raw map[string]any) *fileConfig {
	res := &fileConfig{cfg: &domain.Config{}}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "lint":
			if m, ok := value.(map[string]any); ok {
				warnings = append(warnings, parseLintSection(res.cfg, m)...)
			}
		case "render":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "strip_comments":
						if b, ok := v.(bool); ok {
							res.cfg.Render.StripComments = b
							res.stripCommentsSet = true
						}
					case "fill_placeholders":
						if b, ok := v.(bool); ok {
							res.cfg.Render.FillPlaceholders = b
							res.fillPlaceholdersSet = true
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [render]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.cfg.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.cfg.Warnings = warnings
	return res
}

func parseLintSection(res *domain.Config, m map[string]any) []string {
	var warnings []string
	for k, v := range m {
		switch k {
		case "required":
			res.Lint.Required = stringSlice(v)
		case "recommended":
			res.Lint.Recommended = stringSlice(v)
		case "allowed_labels":
			res.Lint.AllowedLabels = stringSlice(v)
		case "severity":
			if sub, ok := v.(map[string]any); ok {
				res.Lint.Severity = make(map[string]string, len(sub))
				for rule, sev := range sub {
					if s, ok := sev.(string); ok {
						res.Lint.Severity[rule] = s
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [lint]: %s", k))
		}
	}
	return warnings
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mergeConfigs merges a parsed file over base, with the file taking
// precedence for every key it set.
func mergeConfigs(base *domain.Config, override *fileConfig) *domain.Config {
	result := &domain.Config{
		Lint:     base.Lint,
		Render:   base.Render,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.cfg.Warnings...)

	if override.cfg.Lint.Required != nil {
		result.Lint.Required = override.cfg.Lint.Required
	}
	if override.cfg.Lint.Recommended != nil {
		result.Lint.Recommended = override.cfg.Lint.Recommended
	}
	if override.cfg.Lint.AllowedLabels != nil {
		result.Lint.AllowedLabels = override.cfg.Lint.AllowedLabels
	}
	if len(override.cfg.Lint.Severity) > 0 {
		merged := make(map[string]string, len(base.Lint.Severity)+len(override.cfg.Lint.Severity))
		for k, v := range base.Lint.Severity {
			merged[k] = v
		}
		for k, v := range override.cfg.Lint.Severity {
			merged[k] = v
		}
		result.Lint.Severity = merged
	}
	if override.stripCommentsSet {
		result.Render.StripComments = override.cfg.Render.StripComments
	}
	if override.fillPlaceholdersSet {
		result.Render.FillPlaceholders = override.cfg.Render.FillPlaceholders
	}
	if override.cfg.Log.Level != "" {
		result.Log.Level = override.cfg.Log.Level
	}
	return result
}
