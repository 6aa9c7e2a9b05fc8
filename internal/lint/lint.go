// Package lint checks issue templates against the document-level rules
// GitHub's issue UI relies on: valid front matter, required metadata keys
// present and non-empty, well-formed bodies and chooser config.
package lint

import (
	"fmt"
	"strings"

	"github.com/runoshun/issuekit/internal/domain"
)

// Rule IDs, used for reporting and severity overrides.
const (
	RuleFrontMatterMissing     = "front-matter/missing"
	RuleFrontMatterSyntax      = "front-matter/syntax"
	RuleFrontMatterRequired    = "front-matter/required"
	RuleFrontMatterRecommended = "front-matter/recommended"
	RuleFrontMatterUnknownKey  = "front-matter/unknown-key"
	RuleNameDuplicate          = "name/duplicate"
	RuleLabelsEmpty            = "labels/empty"
	RuleLabelsUnknown          = "labels/unknown"
	RuleBodyEmpty              = "body/empty"
	RuleBodyHeading            = "body/heading"
	RuleFormBodyMissing        = "form/body-missing"
	RuleFormElementType        = "form/element-type"
	RuleFormDuplicateID        = "form/duplicate-id"
	RuleFormLabelMissing       = "form/label-missing"
	RuleChooserSyntax          = "chooser/syntax"
	RuleChooserContactLink     = "chooser/contact-link"
	RuleFileExtension          = "file/extension"
)

// Runner checks templates and produces findings.
type Runner struct {
	cfg *domain.Config
}

// NewRunner creates a Runner using the given configuration.
func NewRunner(cfg *domain.Config) *Runner {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Runner{cfg: cfg}
}

// Run lints all templates, the chooser (may be nil) and any extra files
// found in the template directory. Findings are sorted by path and line.
func (r *Runner) Run(templates []*domain.Template, chooser *domain.Chooser, extraFiles []string) []domain.Finding {
	var findings []domain.Finding

	for _, tpl := range templates {
		findings = append(findings, r.checkTemplate(tpl)...)
	}
	findings = append(findings, r.checkDuplicateNames(templates)...)
	if chooser != nil {
		findings = append(findings, r.checkChooser(chooser)...)
	}
	for _, path := range extraFiles {
		findings = append(findings, r.finding(RuleFileExtension, domain.SeverityWarning,
			path, 0, "unexpected file in template directory"))
	}

	domain.SortFindings(findings)
	return findings
}

// finding builds a Finding, applying configured severity overrides.
func (r *Runner) finding(rule string, def domain.Severity, path string, line int, format string, args ...any) domain.Finding {
	return domain.Finding{
		Rule:     rule,
		Severity: r.cfg.SeverityFor(rule, def),
		Path:     path,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}

// checkDuplicateNames flags templates sharing a display name.
func (r *Runner) checkDuplicateNames(templates []*domain.Template) []domain.Finding {
	var findings []domain.Finding
	seen := map[string]string{} // lower name -> first path
	for _, tpl := range templates {
		if tpl.Name == "" {
			continue
		}
		key := strings.ToLower(tpl.Name)
		if first, ok := seen[key]; ok {
			findings = append(findings, r.finding(RuleNameDuplicate, domain.SeverityError,
				tpl.Path, tpl.Keys["name"], "duplicate template name %q (also in %s)", tpl.Name, first))
			continue
		}
		seen[key] = tpl.Path
	}
	return findings
}

// checkChooser validates the template chooser config.
func (r *Runner) checkChooser(c *domain.Chooser) []domain.Finding {
	var findings []domain.Finding

	for _, msg := range c.ParseErrors {
		sev := domain.SeverityWarning
		if strings.HasPrefix(msg, "yaml:") {
			sev = domain.SeverityError
		}
		findings = append(findings, r.finding(RuleChooserSyntax, sev, c.Path, 0, "%s", msg))
	}

	for _, link := range c.ContactLinks {
		var missing []string
		if link.Name == "" {
			missing = append(missing, "name")
		}
		if link.URL == "" {
			missing = append(missing, "url")
		}
		if link.About == "" {
			missing = append(missing, "about")
		}
		if len(missing) > 0 {
			findings = append(findings, r.finding(RuleChooserContactLink, domain.SeverityError,
				c.Path, link.Line, "contact link missing %s", strings.Join(missing, ", ")))
		}
		if link.URL != "" && !strings.HasPrefix(link.URL, "https://") && !strings.HasPrefix(link.URL, "http://") {
			findings = append(findings, r.finding(RuleChooserContactLink, domain.SeverityError,
				c.Path, link.Line, "contact link url must be http(s): %s", link.URL))
		}
	}
	return findings
}
