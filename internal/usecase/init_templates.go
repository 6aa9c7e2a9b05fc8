package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/builtin"
)

// InitTemplatesInput contains the input for the InitTemplates use case.
type InitTemplatesInput struct {
	Force       bool // Overwrite existing template files
	WithChooser bool // Also write the chooser config (config.yml)
}

// InitTemplatesOutput contains the output of the InitTemplates use case.
type InitTemplatesOutput struct {
	Created []string // Repo-relative paths of the files written
	Dir     string   // Template directory the files were written to
}

// InitTemplates scaffolds the built-in issue templates into the repository.
type InitTemplates struct {
	templates domain.TemplateRepository
	logger    *slog.Logger
}

// NewInitTemplates creates a new InitTemplates use case. logger may be nil.
func NewInitTemplates(templates domain.TemplateRepository, logger *slog.Logger) *InitTemplates {
	return &InitTemplates{templates: templates, logger: logger}
}

// Execute writes the preset templates. Returns domain.ErrAlreadyInitialized
// when templates exist and force is not set.
func (uc *InitTemplates) Execute(_ context.Context, in InitTemplatesInput) (*InitTemplatesOutput, error) {
	if !in.Force {
		existing, err := uc.templates.List(domain.TemplateFilter{})
		if err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		if len(existing) > 0 {
			return nil, domain.ErrAlreadyInitialized
		}
	}

	var created []string
	for _, preset := range builtin.Presets() {
		relPath := path.Join(domain.PrimaryTemplateDir, preset.FileName)
		if err := uc.templates.Write(relPath, preset.Content, in.Force); err != nil {
			return nil, fmt.Errorf("write %s: %w", relPath, err)
		}
		if uc.logger != nil {
			uc.logger.Debug("wrote template", "path", relPath)
		}
		created = append(created, relPath)
	}

	if in.WithChooser {
		chooser := builtin.ChooserPreset()
		relPath := path.Join(domain.PrimaryTemplateDir, chooser.FileName)
		if err := uc.templates.Write(relPath, chooser.Content, in.Force); err != nil {
			return nil, fmt.Errorf("write %s: %w", relPath, err)
		}
		created = append(created, relPath)
	}

	return &InitTemplatesOutput{
		Created: created,
		Dir:     domain.PrimaryTemplateDir,
	}, nil
}
