// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issuekit/internal/domain"
)

// ListTemplatesInput contains the parameters for listing templates.
type ListTemplatesInput struct {
	Format string   // Filter by format: "markdown", "form" or "" for all
	Labels []string // Filter by labels (AND condition)
}

// ListTemplatesOutput contains the result of listing templates.
type ListTemplatesOutput struct {
	Templates []*domain.Template // Templates in discovery order
	Dir       string             // Template directory in use ("" when legacy only)
	Chooser   *domain.Chooser    // Chooser config, nil when absent
}

// ListTemplates is the use case for listing issue templates.
type ListTemplates struct {
	templates domain.TemplateRepository
}

// NewListTemplates creates a new ListTemplates use case.
func NewListTemplates(templates domain.TemplateRepository) *ListTemplates {
	return &ListTemplates{templates: templates}
}

// Execute lists templates matching the given input criteria.
func (uc *ListTemplates) Execute(_ context.Context, in ListTemplatesInput) (*ListTemplatesOutput, error) {
	filter := domain.TemplateFilter{Labels: in.Labels}
	switch in.Format {
	case "":
	case string(domain.FormatMarkdown), string(domain.FormatForm):
		filter.Format = domain.Format(in.Format)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFormat, in.Format)
	}

	templates, err := uc.templates.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	dir, err := uc.templates.Dir()
	if err != nil {
		return nil, err
	}

	chooser, err := uc.templates.Chooser()
	if err != nil {
		return nil, err
	}

	return &ListTemplatesOutput{
		Templates: templates,
		Dir:       dir,
		Chooser:   chooser,
	}, nil
}
