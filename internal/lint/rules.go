package lint

import (
	"strings"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/parser"
)

// checkTemplate runs all single-template rules.
func (r *Runner) checkTemplate(tpl *domain.Template) []domain.Finding {
	var findings []domain.Finding

	findings = append(findings, r.checkSyntax(tpl)...)
	findings = append(findings, r.checkKeys(tpl)...)
	findings = append(findings, r.checkLabels(tpl)...)

	switch tpl.Format {
	case domain.FormatMarkdown:
		findings = append(findings, r.checkMarkdownBody(tpl)...)
	case domain.FormatForm:
		findings = append(findings, r.checkForm(tpl)...)
	}
	return findings
}

// checkSyntax reports parse problems recorded while loading the file.
func (r *Runner) checkSyntax(tpl *domain.Template) []domain.Finding {
	var findings []domain.Finding
	for _, msg := range tpl.ParseErrors {
		rule := RuleFrontMatterSyntax
		if msg == domain.ErrNoFrontMatter.Error() {
			rule = RuleFrontMatterMissing
			msg = "template has no YAML front matter"
		}
		findings = append(findings, r.finding(rule, domain.SeverityError, tpl.Path, 0, "%s", msg))
	}
	return findings
}

// checkKeys enforces the required and recommended key sets and flags
// keys GitHub does not read.
func (r *Runner) checkKeys(tpl *domain.Template) []domain.Finding {
	// Without front matter there are no keys worth reporting on.
	if len(tpl.Keys) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, key := range r.cfg.Lint.Required {
		line, present := keyLine(tpl, key)
		switch {
		case !present:
			findings = append(findings, r.finding(RuleFrontMatterRequired, domain.SeverityError,
				tpl.Path, 0, "missing required key %q", key))
		case keyEmpty(tpl, key):
			findings = append(findings, r.finding(RuleFrontMatterRequired, domain.SeverityError,
				tpl.Path, line, "required key %q is empty", key))
		}
	}
	for _, key := range r.cfg.Lint.Recommended {
		if _, present := keyLine(tpl, key); !present {
			findings = append(findings, r.finding(RuleFrontMatterRecommended, domain.SeverityWarning,
				tpl.Path, 0, "missing recommended key %q", key))
		}
	}

	if tpl.Format == domain.FormatMarkdown {
		for key, line := range tpl.Keys {
			if !parser.KnownFrontMatterKey(key) {
				findings = append(findings, r.finding(RuleFrontMatterUnknownKey, domain.SeverityWarning,
					tpl.Path, line, "unknown front matter key %q", key))
			}
		}
	} else {
		for key, line := range tpl.Keys {
			if !knownFormKey(key) {
				findings = append(findings, r.finding(RuleFrontMatterUnknownKey, domain.SeverityWarning,
					tpl.Path, line, "unknown form key %q", key))
			}
		}
	}
	return findings
}

// keyLine locates a key, treating the classic `about` and the issue-form
// `description` spellings as aliases.
func keyLine(tpl *domain.Template, key string) (int, bool) {
	if line, ok := tpl.Keys[key]; ok {
		return line, true
	}
	switch key {
	case "about":
		line, ok := tpl.Keys["description"]
		return line, ok
	case "description":
		line, ok := tpl.Keys["about"]
		return line, ok
	}
	return 0, false
}

// keyEmpty reports whether a present key carries no value. The `about`
// key accepts the issue-form `description` spelling and vice versa.
func keyEmpty(tpl *domain.Template, key string) bool {
	switch key {
	case "name":
		return tpl.Name == ""
	case "about", "description":
		return tpl.About == "" && tpl.Description == ""
	case "title":
		return tpl.Title == ""
	case "labels":
		return len(tpl.Labels) == 0
	case "assignees":
		return len(tpl.Assignees) == 0
	}
	return false
}

var knownFormKeys = map[string]bool{
	"name":        true,
	"description": true,
	"title":       true,
	"labels":      true,
	"assignees":   true,
	"body":        true,
	"projects":    true,
	"type":        true,
}

func knownFormKey(key string) bool {
	return knownFormKeys[strings.ToLower(key)]
}

// checkLabels validates the labels list.
func (r *Runner) checkLabels(tpl *domain.Template) []domain.Finding {
	var findings []domain.Finding
	line := tpl.Keys["labels"]

	for _, label := range tpl.Labels {
		if strings.TrimSpace(label) == "" {
			findings = append(findings, r.finding(RuleLabelsEmpty, domain.SeverityError,
				tpl.Path, line, "empty label"))
		}
	}

	if len(r.cfg.Lint.AllowedLabels) > 0 {
		allowed := make(map[string]bool, len(r.cfg.Lint.AllowedLabels))
		for _, l := range r.cfg.Lint.AllowedLabels {
			allowed[strings.ToLower(l)] = true
		}
		for _, label := range tpl.Labels {
			if label == "" {
				continue
			}
			if !allowed[strings.ToLower(label)] {
				findings = append(findings, r.finding(RuleLabelsUnknown, domain.SeverityWarning,
					tpl.Path, line, "label %q is not in allowed_labels", label))
			}
		}
	}
	return findings
}

// checkMarkdownBody validates the Markdown body structure.
func (r *Runner) checkMarkdownBody(tpl *domain.Template) []domain.Finding {
	var findings []domain.Finding
	info := parser.AnalyzeBody(tpl.Body, tpl.BodyLine)

	if !info.HasText && len(info.Headings) == 0 {
		findings = append(findings, r.finding(RuleBodyEmpty, domain.SeverityWarning,
			tpl.Path, tpl.BodyLine, "template body is empty"))
		return findings
	}
	if len(info.Headings) == 0 {
		findings = append(findings, r.finding(RuleBodyHeading, domain.SeverityInfo,
			tpl.Path, tpl.BodyLine, "template body has no headings"))
	}
	return findings
}

// checkForm validates issue-form body elements.
func (r *Runner) checkForm(tpl *domain.Template) []domain.Finding {
	var findings []domain.Finding

	if _, hasBody := tpl.Keys["body"]; !hasBody || len(tpl.Elements) == 0 {
		// A syntactically broken form already reported its problem.
		if len(tpl.ParseErrors) == 0 {
			findings = append(findings, r.finding(RuleFormBodyMissing, domain.SeverityError,
				tpl.Path, 0, "issue form has no body elements"))
		}
		return findings
	}

	ids := map[string]int{} // id -> line of first occurrence
	for _, el := range tpl.Elements {
		if el.Type == "" || !domain.KnownFormType(el.Type) {
			findings = append(findings, r.finding(RuleFormElementType, domain.SeverityError,
				tpl.Path, el.Line, "unknown element type %q", el.Type))
		}
		if el.ID != "" {
			if first, ok := ids[el.ID]; ok {
				findings = append(findings, r.finding(RuleFormDuplicateID, domain.SeverityError,
					tpl.Path, el.Line, "duplicate element id %q (first used at line %d)", el.ID, first))
			} else {
				ids[el.ID] = el.Line
			}
		}
		// markdown elements render attributes.value; all others need a label.
		if el.Type != "" && el.Type != "markdown" && domain.KnownFormType(el.Type) && el.Attributes.Label == "" {
			findings = append(findings, r.finding(RuleFormLabelMissing, domain.SeverityError,
				tpl.Path, el.Line, "%s element has no label", el.Type))
		}
	}
	return findings
}
