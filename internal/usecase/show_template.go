package usecase

import (
	"context"

	"github.com/runoshun/issuekit/internal/domain"
)

// ShowTemplateInput contains the input for the ShowTemplate use case.
type ShowTemplateInput struct {
	Name string // Template display name or file-name slug
}

// ShowTemplateOutput contains the output of the ShowTemplate use case.
type ShowTemplateOutput struct {
	Template *domain.Template
}

// ShowTemplate retrieves a single template by name.
type ShowTemplate struct {
	templates domain.TemplateRepository
}

// NewShowTemplate creates a new ShowTemplate use case.
func NewShowTemplate(templates domain.TemplateRepository) *ShowTemplate {
	return &ShowTemplate{templates: templates}
}

// Execute looks up the template. Returns domain.ErrTemplateNotFound when
// no template matches the given name.
func (uc *ShowTemplate) Execute(_ context.Context, in ShowTemplateInput) (*ShowTemplateOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	tpl, err := uc.templates.Get(in.Name)
	if err != nil {
		return nil, err
	}
	return &ShowTemplateOutput{Template: tpl}, nil
}
