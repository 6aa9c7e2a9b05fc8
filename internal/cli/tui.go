package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive browser.
// Running `issuekit` without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse templates interactively",
		Long:  `Launch the interactive terminal browser for the repository's issue templates.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUI(c)
		},
	}
	return cmd
}

// launchTUI starts the template browser.
func launchTUI(c *app.Container) error {
	if c == nil {
		return domain.ErrNotGitRepository
	}

	model := tui.New(c.ListTemplatesUseCase(), c.RenderIssueUseCase())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
