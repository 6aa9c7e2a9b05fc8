package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/infra/parser"
)

func TestAnalyzeBody(t *testing.T) {
	t.Run("headings and checklists", func(t *testing.T) {
		body := "## Checklist\n\n- [ ] I searched existing issues\n- [ ] I read the docs\n\n### Details\n\nSome text.\n"
		info := parser.AnalyzeBody(body, 1)

		require.Len(t, info.Headings, 2)
		assert.Equal(t, "Checklist", info.Headings[0].Text)
		assert.Equal(t, 2, info.Headings[0].Level)
		assert.Equal(t, 1, info.Headings[0].Line)
		assert.Equal(t, "Details", info.Headings[1].Text)
		assert.Equal(t, 6, info.Headings[1].Line)
		assert.Equal(t, 2, info.TaskItems)
		assert.True(t, info.HasText)
	})

	t.Run("base line offset", func(t *testing.T) {
		info := parser.AnalyzeBody("# Top\n", 10)
		require.Len(t, info.Headings, 1)
		assert.Equal(t, 10, info.Headings[0].Line)
	})

	t.Run("comments detected", func(t *testing.T) {
		body := "intro\n\n<!-- describe the bug -->\n\nmore\n"
		info := parser.AnalyzeBody(body, 1)
		require.Len(t, info.Comments, 1)
		assert.Equal(t, "<!-- describe the bug -->", info.Comments[0].Text)
		assert.Equal(t, 3, info.Comments[0].Line)
	})

	t.Run("comment-only body has no text", func(t *testing.T) {
		info := parser.AnalyzeBody("<!-- placeholder -->\n\n<!-- more -->\n", 1)
		assert.False(t, info.HasText)
	})

	t.Run("empty body", func(t *testing.T) {
		info := parser.AnalyzeBody("", 1)
		assert.False(t, info.HasText)
		assert.Empty(t, info.Headings)
	})
}

func TestStripComments(t *testing.T) {
	in := "a\n\n<!-- one -->\n\nb\n<!-- multi\nline -->\nc\n"
	out := parser.StripComments(in)

	assert.NotContains(t, out, "<!--")
	assert.Contains(t, out, "a\n")
	assert.Contains(t, out, "b\n")
	assert.Contains(t, out, "c\n")
	assert.NotContains(t, out, "\n\n\n")
}
