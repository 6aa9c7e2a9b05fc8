package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/parser"
)

// RenderIssueInput contains the input for the RenderIssue use case.
type RenderIssueInput struct {
	Name          string // Template name or slug
	Title         string // Issue title; appended to the template's title prefix
	StripComments bool   // Strip HTML comments even when the config keeps them
	NoFill        bool   // Skip placeholder substitution for this run
}

// RenderIssueOutput contains the output of the RenderIssue use case.
type RenderIssueOutput struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Template  *domain.Template
}

// RenderIssue turns a template into a ready-to-file issue draft.
type RenderIssue struct {
	templates domain.TemplateRepository
	config    domain.ConfigLoader
	git       domain.Git
	clock     domain.Clock
	logger    *slog.Logger
}

// NewRenderIssue creates a new RenderIssue use case. git may be nil when
// no repository metadata is available; logger may be nil.
func NewRenderIssue(templates domain.TemplateRepository, config domain.ConfigLoader, git domain.Git, clock domain.Clock, logger *slog.Logger) *RenderIssue {
	return &RenderIssue{
		templates: templates,
		config:    config,
		git:       git,
		clock:     clock,
		logger:    logger,
	}
}

// Execute renders the named template into an issue draft.
func (uc *RenderIssue) Execute(_ context.Context, in RenderIssueInput) (*RenderIssueOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	tpl, err := uc.templates.Get(in.Name)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var body string
	switch tpl.Format {
	case domain.FormatForm:
		body = renderFormSkeleton(tpl)
	default:
		body = tpl.Body
	}

	if cfg.Render.StripComments || in.StripComments {
		body = parser.StripComments(body)
	}
	if cfg.Render.FillPlaceholders && !in.NoFill {
		body = uc.fillPlaceholders(body)
	}
	if uc.logger != nil {
		uc.logger.Debug("rendered template", "name", tpl.Name, "format", tpl.Format)
	}

	title := strings.TrimRight(tpl.Title, " ")
	switch {
	case in.Title != "" && title != "":
		title = title + " " + in.Title
	case in.Title != "":
		title = in.Title
	}

	return &RenderIssueOutput{
		Title:     title,
		Body:      strings.TrimRight(body, "\n") + "\n",
		Labels:    tpl.Labels,
		Assignees: tpl.Assignees,
		Template:  tpl,
	}, nil
}

// fillPlaceholders substitutes {{version}}, {{branch}}, {{repo}} and
// {{date}} tokens from repository metadata and the clock. Tokens stay
// verbatim when the metadata is missing.
func (uc *RenderIssue) fillPlaceholders(body string) string {
	if uc.clock != nil && strings.Contains(body, "{{date}}") {
		body = strings.ReplaceAll(body, "{{date}}", uc.clock.Now().Format("2006-01-02"))
	}
	if uc.git == nil {
		return body
	}

	if strings.Contains(body, "{{version}}") {
		version, err := uc.git.LatestTag()
		if err == nil && version == "" {
			version, err = uc.git.HeadShort()
		}
		if err == nil && version != "" {
			body = strings.ReplaceAll(body, "{{version}}", version)
		}
	}
	if strings.Contains(body, "{{branch}}") {
		branch, err := uc.git.CurrentBranch()
		if err == nil && branch != "" {
			body = strings.ReplaceAll(body, "{{branch}}", branch)
		}
	}
	if strings.Contains(body, "{{repo}}") {
		slug, err := uc.git.RemoteSlug()
		if err == nil && slug != "" {
			body = strings.ReplaceAll(body, "{{repo}}", slug)
		}
	}
	return body
}

// renderFormSkeleton converts an issue form into a Markdown draft a
// reporter can fill by hand.
func renderFormSkeleton(tpl *domain.Template) string {
	var b strings.Builder

	for _, el := range tpl.Elements {
		switch el.Type {
		case "markdown":
			if el.Attributes.Value != "" {
				b.WriteString(strings.TrimRight(el.Attributes.Value, "\n"))
				b.WriteString("\n\n")
			}
		case "checkboxes":
			writeElementHeading(&b, el)
			for _, opt := range el.Attributes.Options {
				fmt.Fprintf(&b, "- [ ] %s\n", opt)
			}
			b.WriteString("\n")
		case "dropdown":
			writeElementHeading(&b, el)
			for _, opt := range el.Attributes.Options {
				fmt.Fprintf(&b, "- %s\n", opt)
			}
			b.WriteString("\n")
		default: // input, textarea
			writeElementHeading(&b, el)
			if el.Attributes.Placeholder != "" {
				fmt.Fprintf(&b, "<!-- %s -->\n", el.Attributes.Placeholder)
			}
			if el.Attributes.Value != "" {
				b.WriteString(el.Attributes.Value)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeElementHeading(b *strings.Builder, el domain.FormElement) {
	label := el.Attributes.Label
	if label == "" {
		label = el.ID
	}
	fmt.Fprintf(b, "### %s\n\n", label)
	if el.Attributes.Description != "" {
		fmt.Fprintf(b, "<!-- %s -->\n", el.Attributes.Description)
	}
}
