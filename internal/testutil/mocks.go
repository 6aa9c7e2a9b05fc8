// Package testutil provides hand-rolled mocks for the domain ports.
package testutil

import (
	"fmt"
	"time"

	"github.com/runoshun/issuekit/internal/domain"
)

// MockTemplateRepository implements domain.TemplateRepository in memory.
type MockTemplateRepository struct {
	Templates  []*domain.Template
	ChooserVal *domain.Chooser
	Extra      []string
	TplDir     string

	ListErr    error
	ChooserErr error
	WriteErr   error

	// Written records Write calls as relPath -> content.
	Written map[string]string
	// ForceUsed records whether any Write call used force.
	ForceUsed bool
}

// NewMockTemplateRepository creates an empty mock repository.
func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{
		TplDir:  domain.PrimaryTemplateDir,
		Written: make(map[string]string),
	}
}

// List returns the configured templates after filtering.
func (m *MockTemplateRepository) List(filter domain.TemplateFilter) ([]*domain.Template, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []*domain.Template
	for _, tpl := range m.Templates {
		if filter.Matches(tpl) {
			out = append(out, tpl)
		}
	}
	return out, nil
}

// Get retrieves a template by name or slug.
func (m *MockTemplateRepository) Get(name string) (*domain.Template, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	slug := domain.Slugify(name)
	for _, tpl := range m.Templates {
		if tpl.Name == name || domain.Slugify(tpl.Name) == slug {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
}

// Chooser returns the configured chooser.
func (m *MockTemplateRepository) Chooser() (*domain.Chooser, error) {
	if m.ChooserErr != nil {
		return nil, m.ChooserErr
	}
	return m.ChooserVal, nil
}

// Dir returns the configured template directory.
func (m *MockTemplateRepository) Dir() (string, error) {
	return m.TplDir, nil
}

// ExtraFiles returns the configured extra files.
func (m *MockTemplateRepository) ExtraFiles() ([]string, error) {
	return m.Extra, nil
}

// Write records the write.
func (m *MockTemplateRepository) Write(relPath, content string, force bool) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if _, exists := m.Written[relPath]; exists && !force {
		return fmt.Errorf("%w: %s", domain.ErrTemplateExists, relPath)
	}
	if force {
		m.ForceUsed = true
	}
	m.Written[relPath] = content
	return nil
}

// Ensure MockTemplateRepository implements the port.
var _ domain.TemplateRepository = (*MockTemplateRepository)(nil)

// MockConfigLoader implements domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg       *domain.Config
	GlobalCfg *domain.Config
	LoadErr   error
}

// Load returns the configured merged config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Cfg, nil
}

// LoadGlobal returns the configured global config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalCfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.GlobalCfg, nil
}

var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// MockConfigManager implements domain.ConfigManager.
type MockConfigManager struct {
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo

	InitRepoErr   error
	InitGlobalErr error

	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates an empty mock manager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call.
func (m *MockConfigManager) InitRepoConfig(*domain.Config) error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(*domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

var _ domain.ConfigManager = (*MockConfigManager)(nil)

// MockGit implements domain.Git with fixed values.
type MockGit struct {
	Root   string
	Branch string
	Head   string
	Tag    string
	Slug   string

	BranchErr error
	TagErr    error
}

// RepoRoot returns the configured root.
func (m *MockGit) RepoRoot() string { return m.Root }

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) { return m.Branch, m.BranchErr }

// HeadShort returns the configured hash.
func (m *MockGit) HeadShort() (string, error) { return m.Head, nil }

// LatestTag returns the configured tag.
func (m *MockGit) LatestTag() (string, error) { return m.Tag, m.TagErr }

// RemoteSlug returns the configured slug.
func (m *MockGit) RemoteSlug() (string, error) { return m.Slug, nil }

var _ domain.Git = (*MockGit)(nil)

// FixedClock implements domain.Clock with a fixed time.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time { return c.Time }

var _ domain.Clock = FixedClock{}
