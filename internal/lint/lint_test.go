package lint_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/parser"
	"github.com/runoshun/issuekit/internal/lint"
)

func run(t *testing.T, cfg *domain.Config, files map[string]string) []domain.Finding {
	t.Helper()
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var templates []*domain.Template
	for _, path := range paths {
		templates = append(templates, parser.Parse(path, files[path]))
	}
	return lint.NewRunner(cfg).Run(templates, nil, nil)
}

func rules(findings []domain.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Rule)
	}
	return out
}

const cleanTemplate = `---
name: Bug report
about: Create a report to help us improve
title: "[BUG] "
labels: bug
assignees: octocat
---

## Describe the bug

A clear description.
`

func TestRunner_CleanTemplate(t *testing.T) {
	findings := run(t, nil, map[string]string{"bug_report.md": cleanTemplate})
	assert.Empty(t, findings)
}

func TestRunner_FrontMatter(t *testing.T) {
	t.Run("missing front matter", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "## Body only\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleFrontMatterMissing, findings[0].Rule)
		assert.Equal(t, domain.SeverityError, findings[0].Severity)
	})

	t.Run("broken yaml", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: [x\n---\n## B\n"})
		assert.Contains(t, rules(findings), lint.RuleFrontMatterSyntax)
	})

	t.Run("missing required key", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\ntitle: x\nlabels: a\nassignees: b\n---\n## B\ntext\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleFrontMatterRequired, findings[0].Rule)
		assert.Contains(t, findings[0].Message, `"about"`)
	})

	t.Run("empty required key reports line", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: ''\nabout: A\ntitle: x\nlabels: a\nassignees: b\n---\n## B\ntext\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleFrontMatterRequired, findings[0].Rule)
		assert.Contains(t, findings[0].Message, "empty")
		assert.Equal(t, 2, findings[0].Line)
	})

	t.Run("missing recommended keys warn", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\nabout: A\n---\n## B\ntext\n"})
		require.Len(t, findings, 3)
		for _, f := range findings {
			assert.Equal(t, lint.RuleFrontMatterRecommended, f.Rule)
			assert.Equal(t, domain.SeverityWarning, f.Severity)
		}
	})

	t.Run("unknown key warns", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: a\nassignees: b\nmilestone: 3\n---\n## B\ntext\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleFrontMatterUnknownKey, findings[0].Rule)
		assert.Equal(t, 7, findings[0].Line)
	})
}

func TestRunner_DuplicateNames(t *testing.T) {
	findings := run(t, nil, map[string]string{
		"a.md": cleanTemplate,
		"b.md": cleanTemplate,
	})

	require.Len(t, findings, 1)
	assert.Equal(t, lint.RuleNameDuplicate, findings[0].Rule)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	// Reported on the second file in discovery order.
	assert.Equal(t, "b.md", findings[0].Path)
}

func TestRunner_Labels(t *testing.T) {
	t.Run("empty label", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: [\"bug\", \"\"]\nassignees: b\n---\n## B\ntext\n"})
		assert.Contains(t, rules(findings), lint.RuleLabelsEmpty)
	})

	t.Run("allowed labels", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Lint.AllowedLabels = []string{"bug", "question"}

		findings := run(t, cfg, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: wontfix\nassignees: b\n---\n## B\ntext\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleLabelsUnknown, findings[0].Rule)
		assert.Contains(t, findings[0].Message, "wontfix")
	})
}

func TestRunner_Body(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: a\nassignees: b\n---\n\n<!-- only a comment -->\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleBodyEmpty, findings[0].Rule)
	})

	t.Run("no headings is info", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: a\nassignees: b\n---\n\nplain text body\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleBodyHeading, findings[0].Rule)
		assert.Equal(t, domain.SeverityInfo, findings[0].Severity)
	})
}

func TestRunner_Forms(t *testing.T) {
	t.Run("clean form", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"f.yml": `name: Bug
description: File a bug
title: "[BUG] "
labels: bug
assignees: octocat
body:
  - type: input
    id: version
    attributes:
      label: Version
`})
		assert.Empty(t, findings)
	})

	t.Run("missing body", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"f.yml": "name: F\ndescription: d\ntitle: t\nlabels: a\nassignees: b\n"})
		assert.Contains(t, rules(findings), lint.RuleFormBodyMissing)
	})

	t.Run("unknown element type", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"f.yml": "name: F\ndescription: d\ntitle: t\nlabels: a\nassignees: b\nbody:\n  - type: slider\n    attributes:\n      label: X\n"})
		assert.Contains(t, rules(findings), lint.RuleFormElementType)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"f.yml": `name: F
description: d
title: t
labels: a
assignees: b
body:
  - type: input
    id: version
    attributes:
      label: A
  - type: input
    id: version
    attributes:
      label: B
`})
		assert.Contains(t, rules(findings), lint.RuleFormDuplicateID)
	})

	t.Run("missing label", func(t *testing.T) {
		findings := run(t, nil, map[string]string{"f.yml": "name: F\ndescription: d\ntitle: t\nlabels: a\nassignees: b\nbody:\n  - type: textarea\n"})
		assert.Contains(t, rules(findings), lint.RuleFormLabelMissing)
	})
}

func TestRunner_Chooser(t *testing.T) {
	t.Run("valid chooser", func(t *testing.T) {
		chooser := parser.ParseChooser("config.yml", "blank_issues_enabled: false\ncontact_links:\n  - name: Forum\n    url: https://example.com\n    about: Ask here\n")
		findings := lint.NewRunner(nil).Run(nil, chooser, nil)
		assert.Empty(t, findings)
	})

	t.Run("incomplete contact link", func(t *testing.T) {
		chooser := parser.ParseChooser("config.yml", "contact_links:\n  - name: Forum\n    url: ftp://example.com\n")
		findings := lint.NewRunner(nil).Run(nil, chooser, nil)

		require.Len(t, findings, 2)
		assert.Equal(t, lint.RuleChooserContactLink, findings[0].Rule)
		assert.Contains(t, findings[0].Message, "about")
		assert.Contains(t, findings[1].Message, "http")
	})
}

func TestRunner_ExtraFilesAndSeverityOverride(t *testing.T) {
	t.Run("extra files warn", func(t *testing.T) {
		findings := lint.NewRunner(nil).Run(nil, nil, []string{".github/ISSUE_TEMPLATE/notes.txt"})
		require.Len(t, findings, 1)
		assert.Equal(t, lint.RuleFileExtension, findings[0].Rule)
		assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	})

	t.Run("severity override applies", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Lint.Severity[lint.RuleBodyHeading] = "error"

		findings := run(t, cfg, map[string]string{"t.md": "---\nname: T\nabout: A\ntitle: x\nlabels: a\nassignees: b\n---\n\nplain text\n"})
		require.Len(t, findings, 1)
		assert.Equal(t, domain.SeverityError, findings[0].Severity)
	})
}

func TestRunner_SortsFindings(t *testing.T) {
	findings := run(t, nil, map[string]string{
		"z.md": "## no front matter\n",
		"a.md": "## no front matter\n",
	})
	require.Len(t, findings, 2)
	assert.Equal(t, "a.md", findings[0].Path)
	assert.Equal(t, "z.md", findings[1].Path)
}
