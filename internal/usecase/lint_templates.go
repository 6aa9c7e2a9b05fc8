package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/lint"
)

// LintTemplatesInput contains the input for the LintTemplates use case.
type LintTemplatesInput struct {
	// MinSeverity drops findings below this severity ("" keeps all).
	MinSeverity string
}

// LintTemplatesOutput contains the output of the LintTemplates use case.
type LintTemplatesOutput struct {
	Findings      []domain.Finding
	Counts        map[domain.Severity]int
	TemplateCount int
	HasErrors     bool
}

// LintTemplates checks every discovered template, the chooser and any
// stray files in the template directory.
type LintTemplates struct {
	templates domain.TemplateRepository
	config    domain.ConfigLoader
	logger    *slog.Logger
}

// NewLintTemplates creates a new LintTemplates use case. logger may be nil.
func NewLintTemplates(templates domain.TemplateRepository, config domain.ConfigLoader, logger *slog.Logger) *LintTemplates {
	return &LintTemplates{
		templates: templates,
		config:    config,
		logger:    logger,
	}
}

// Execute runs the lint rules. Returns domain.ErrNoTemplates when the
// repository has neither templates nor a chooser.
func (uc *LintTemplates) Execute(_ context.Context, in LintTemplatesInput) (*LintTemplatesOutput, error) {
	var min domain.Severity
	if in.MinSeverity != "" {
		parsed, err := domain.ParseSeverity(in.MinSeverity)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.MinSeverity)
		}
		min = parsed
	}

	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	templates, err := uc.templates.List(domain.TemplateFilter{})
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	chooser, err := uc.templates.Chooser()
	if err != nil {
		return nil, err
	}
	extra, err := uc.templates.ExtraFiles()
	if err != nil {
		return nil, err
	}

	if len(templates) == 0 && chooser == nil {
		return nil, domain.ErrNoTemplates
	}

	findings := lint.NewRunner(cfg).Run(templates, chooser, extra)
	if uc.logger != nil {
		uc.logger.Debug("lint finished", "templates", len(templates), "findings", len(findings))
	}
	if min != "" {
		filtered := findings[:0]
		for _, f := range findings {
			if f.Severity.AtLeast(min) {
				filtered = append(filtered, f)
			}
		}
		findings = filtered
	}

	return &LintTemplatesOutput{
		Findings:      findings,
		Counts:        domain.CountBySeverity(findings),
		TemplateCount: len(templates),
		HasErrors:     domain.HasErrors(findings),
	}, nil
}
