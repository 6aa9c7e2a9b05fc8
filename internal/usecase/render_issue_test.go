package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/testutil"
	"github.com/runoshun/issuekit/internal/usecase"
)

func renderRepo(tpl *domain.Template) *testutil.MockTemplateRepository {
	repo := testutil.NewMockTemplateRepository()
	repo.Templates = []*domain.Template{tpl}
	return repo
}

func TestRenderIssue_Execute(t *testing.T) {
	git := &testutil.MockGit{Branch: "main", Head: "abc1234", Tag: "v1.2.0"}

	t.Run("renders markdown body with title prefix", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Title = "[BUG] "
		tpl.Body = "## Describe the bug\n\n<!-- what happened -->\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report", Title: "crash on start"})

		require.NoError(t, err)
		assert.Equal(t, "[BUG] crash on start", out.Title)
		assert.Contains(t, out.Body, "## Describe the bug")
		assert.Contains(t, out.Body, "<!-- what happened -->")
		assert.Equal(t, []string{"bug"}, out.Labels)
	})

	t.Run("keeps bare prefix without a title", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Title = "[BUG] "
		tpl.Body = "body\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Equal(t, "[BUG]", out.Title)
	})

	t.Run("strips comments on request", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "## Steps\n\n<!-- fill me -->\n\ntext\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report", StripComments: true})

		require.NoError(t, err)
		assert.NotContains(t, out.Body, "<!--")
		assert.Contains(t, out.Body, "## Steps")
	})

	t.Run("fills version and branch placeholders", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Version: {{version}}\nBranch: {{branch}}\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "Version: v1.2.0")
		assert.Contains(t, out.Body, "Branch: main")
	})

	t.Run("falls back to head hash without tags", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Version: {{version}}\n"

		noTags := &testutil.MockGit{Branch: "main", Head: "abc1234"}
		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, noTags, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "Version: abc1234")
	})

	t.Run("fills repo and date placeholders", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Repo: {{repo}}\nReported: {{date}}\n"

		withRemote := &testutil.MockGit{Branch: "main", Slug: "runoshun/issuekit"}
		clock := testutil.FixedClock{Time: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)}
		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, withRemote, clock, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "Repo: runoshun/issuekit")
		assert.Contains(t, out.Body, "Reported: 2026-08-24")
	})

	t.Run("repo token stays without a remote", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Repo: {{repo}}\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, &testutil.MockGit{}, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "{{repo}}")
	})

	t.Run("no-fill keeps tokens verbatim", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Version: {{version}}\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report", NoFill: true})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "{{version}}")
	})

	t.Run("nil git keeps tokens verbatim", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "Version: {{version}}\n"

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, nil, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "{{version}}")
	})

	t.Run("renders form skeleton", func(t *testing.T) {
		tpl := formTemplate()
		tpl.Title = "[Crash]: "
		tpl.Elements = []domain.FormElement{
			{Type: "markdown", Attributes: domain.FormAttributes{Value: "Thanks for reporting!"}},
			{Type: "input", ID: "version", Attributes: domain.FormAttributes{Label: "Version", Placeholder: "v1.0.0"}},
			{Type: "textarea", ID: "what", Attributes: domain.FormAttributes{Label: "What happened?", Description: "Be specific"}},
			{Type: "checkboxes", ID: "checks", Attributes: domain.FormAttributes{Label: "Checklist", Options: []string{"Searched existing issues"}}},
			{Type: "dropdown", ID: "os", Attributes: domain.FormAttributes{Label: "OS", Options: []string{"Linux", "macOS"}}},
		}

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Crash report"})

		require.NoError(t, err)
		assert.Contains(t, out.Body, "Thanks for reporting!")
		assert.Contains(t, out.Body, "### Version")
		assert.Contains(t, out.Body, "<!-- v1.0.0 -->")
		assert.Contains(t, out.Body, "### What happened?")
		assert.Contains(t, out.Body, "<!-- Be specific -->")
		assert.Contains(t, out.Body, "- [ ] Searched existing issues")
		assert.Contains(t, out.Body, "- Linux")
	})

	t.Run("config strip_comments applies", func(t *testing.T) {
		tpl := bugTemplate()
		tpl.Body = "## H\n\n<!-- hint -->\n"

		cfg := domain.NewDefaultConfig()
		cfg.Render.StripComments = true

		uc := usecase.NewRenderIssue(renderRepo(tpl), &testutil.MockConfigLoader{Cfg: cfg}, git, testutil.FixedClock{}, nil)
		out, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "Bug report"})

		require.NoError(t, err)
		assert.NotContains(t, out.Body, "<!--")
	})

	t.Run("unknown template", func(t *testing.T) {
		uc := usecase.NewRenderIssue(testutil.NewMockTemplateRepository(), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		_, err := uc.Execute(context.Background(), usecase.RenderIssueInput{Name: "missing"})

		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		uc := usecase.NewRenderIssue(testutil.NewMockTemplateRepository(), &testutil.MockConfigLoader{}, git, testutil.FixedClock{}, nil)
		_, err := uc.Execute(context.Background(), usecase.RenderIssueInput{})

		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})
}
