// Package filestore discovers and stores issue templates in a repository
// working tree.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/parser"
)

// Ensure Store implements domain.TemplateRepository.
var _ domain.TemplateRepository = (*Store)(nil)

// Store reads issue templates from a repository root directory.
//
// Discovery follows GitHub's lookup order:
//
//	.github/ISSUE_TEMPLATE/   docs/ISSUE_TEMPLATE/   ISSUE_TEMPLATE/
//
// falling back to the legacy single files (.github/issue_template.md etc,
// matched case-insensitively) when no directory exists.
type Store struct {
	repoRoot string
}

// New creates a Store for the given repository root.
func New(repoRoot string) *Store {
	return &Store{repoRoot: repoRoot}
}

// Dir returns the repo-relative template directory in use, or "" when
// only legacy single-file templates (or none) exist.
func (s *Store) Dir() (string, error) {
	for _, dir := range domain.TemplateDirs {
		info, err := os.Stat(filepath.Join(s.repoRoot, filepath.FromSlash(dir)))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("stat template dir: %w", err)
		}
	}
	return "", nil
}

// List returns all discovered templates in discovery order.
func (s *Store) List(filter domain.TemplateFilter) ([]*domain.Template, error) {
	paths, err := s.templatePaths()
	if err != nil {
		return nil, err
	}

	templates := make([]*domain.Template, 0, len(paths))
	for _, rel := range paths {
		tpl, err := s.load(rel)
		if err != nil {
			return nil, err
		}
		if filter.Matches(tpl) {
			templates = append(templates, tpl)
		}
	}
	return templates, nil
}

// Get retrieves a template by display name or file-name slug.
func (s *Store) Get(name string) (*domain.Template, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	templates, err := s.List(domain.TemplateFilter{})
	if err != nil {
		return nil, err
	}

	slug := domain.Slugify(name)
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, nil
		}
		base := strings.TrimSuffix(filepath.Base(tpl.Path), filepath.Ext(tpl.Path))
		if base == slug || domain.Slugify(tpl.Name) == slug {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
}

// Chooser returns the template chooser config, or nil if absent.
func (s *Store) Chooser() (*domain.Chooser, error) {
	dir, err := s.Dir()
	if err != nil || dir == "" {
		return nil, err
	}
	for _, name := range []string{"config.yml", "config.yaml"} {
		rel := dir + "/" + name
		data, err := os.ReadFile(filepath.Join(s.repoRoot, filepath.FromSlash(rel)))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read chooser: %w", err)
		}
		return parser.ParseChooser(rel, string(data)), nil
	}
	return nil, nil
}

// ExtraFiles returns files in the template directory that are neither
// templates nor the chooser, for lint reporting.
func (s *Store) ExtraFiles() ([]string, error) {
	dir, err := s.Dir()
	if err != nil || dir == "" {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.repoRoot, filepath.FromSlash(dir)))
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	var extra []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rel := dir + "/" + e.Name()
		if !domain.IsTemplateFile(rel) && !domain.IsChooserFile(rel) {
			extra = append(extra, rel)
		}
	}
	return extra, nil
}

// Write stores a template file at the given repo-relative path.
func (s *Store) Write(relPath, content string, force bool) error {
	abs := filepath.Join(s.repoRoot, filepath.FromSlash(relPath))

	if !force {
		if _, err := os.Stat(abs); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrTemplateExists, relPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return fmt.Errorf("create template directory: %w", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil { //nolint:gosec // templates are public repo files
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// templatePaths returns repo-relative paths of all template files.
func (s *Store) templatePaths() ([]string, error) {
	dir, err := s.Dir()
	if err != nil {
		return nil, err
	}

	if dir != "" {
		entries, err := os.ReadDir(filepath.Join(s.repoRoot, filepath.FromSlash(dir)))
		if err != nil {
			return nil, fmt.Errorf("read template dir: %w", err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			rel := dir + "/" + e.Name()
			if domain.IsTemplateFile(rel) {
				paths = append(paths, rel)
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	// Legacy single-file locations, case-insensitive on the file name.
	var paths []string
	for _, legacy := range domain.LegacyTemplateFiles {
		legacyDir := filepath.Dir(filepath.FromSlash(legacy))
		base := strings.ToLower(filepath.Base(legacy))
		entries, err := os.ReadDir(filepath.Join(s.repoRoot, legacyDir))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.ToLower(e.Name()) == base {
				rel := e.Name()
				if legacyDir != "." {
					rel = filepath.ToSlash(filepath.Join(legacyDir, e.Name()))
				}
				paths = append(paths, rel)
			}
		}
		if len(paths) > 0 {
			// GitHub stops at the first location that has a template.
			break
		}
	}
	return paths, nil
}

// load reads and parses a single template file.
func (s *Store) load(relPath string) (*domain.Template, error) {
	data, err := os.ReadFile(filepath.Join(s.repoRoot, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", relPath, err)
	}
	return parser.Parse(relPath, string(data)), nil
}
