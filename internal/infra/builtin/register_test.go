package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/infra/builtin"
	"github.com/runoshun/issuekit/internal/infra/parser"
)

func TestPresets(t *testing.T) {
	presets := builtin.Presets()
	require.Len(t, presets, 3)

	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.FileName)
	}
	assert.Equal(t, []string{"bug_report.md", "feature_request.md", "question.md"}, names)
}

// Every preset must carry complete front matter; `init` output should
// lint clean out of the box.
func TestPresetsParseClean(t *testing.T) {
	for _, p := range builtin.Presets() {
		t.Run(p.FileName, func(t *testing.T) {
			tpl := parser.Parse(p.FileName, p.Content)

			assert.Empty(t, tpl.ParseErrors)
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.About)
			assert.NotEmpty(t, tpl.Title)
			assert.NotEmpty(t, tpl.Labels)
			assert.Contains(t, tpl.Keys, "assignees")

			info := parser.AnalyzeBody(tpl.Body, tpl.BodyLine)
			assert.NotEmpty(t, info.Headings, "preset body should have headings")
		})
	}
}

func TestChooserPreset(t *testing.T) {
	p := builtin.ChooserPreset()
	assert.Equal(t, "config.yml", p.FileName)

	c := parser.ParseChooser(p.FileName, p.Content)
	assert.Empty(t, c.ParseErrors)
	assert.False(t, c.BlankIssuesEnabled)
	require.Len(t, c.ContactLinks, 1)
}
