package domain

import "time"

// TemplateRepository provides access to the issue templates of a repository.
type TemplateRepository interface {
	// List returns all discovered templates in discovery order.
	List(filter TemplateFilter) ([]*Template, error)

	// Get retrieves a template by name or file-name slug.
	// Returns ErrTemplateNotFound if no template matches.
	Get(name string) (*Template, error)

	// Chooser returns the template chooser config, or nil if absent.
	Chooser() (*Chooser, error)

	// Dir returns the repo-relative template directory in use,
	// or "" when only legacy single-file templates exist.
	Dir() (string, error)

	// ExtraFiles returns files in the template directory that are
	// neither templates nor the chooser.
	ExtraFiles() ([]string, error)

	// Write stores a template file at the given repo-relative path.
	// Returns ErrTemplateExists unless force is set.
	Write(relPath, content string, force bool) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates the repository config file from the default template.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file from the default template.
	InitGlobalConfig(cfg *Config) error
}

// Git exposes the repository metadata issuekit reads.
type Git interface {
	// RepoRoot returns the repository root directory (absolute).
	RepoRoot() string

	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch() (string, error)

	// HeadShort returns the abbreviated HEAD commit hash.
	HeadShort() (string, error)

	// LatestTag returns the most recent tag reachable from HEAD,
	// or "" when the repository has no tags.
	LatestTag() (string, error)

	// RemoteSlug returns the "owner/repo" slug of the origin remote,
	// or "" when no origin remote is configured.
	RemoteSlug() (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
