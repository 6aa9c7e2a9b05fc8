// Package cli provides the command-line interface for issuekit.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
)

// Command group IDs.
const (
	groupSetup     = "setup"
	groupTemplate  = "template"
	groupAuthoring = "authoring"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for issuekit.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "issuekit",
		Short: "GitHub issue template toolkit",
		Long: `issuekit manages the issue templates of a GitHub repository.
It discovers classic Markdown templates and YAML issue forms, lints them
against the rules GitHub's issue UI relies on, scaffolds a starter set,
and renders templates into ready-to-file issue drafts.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Ignore error (broken config files are reported by `lint`)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the template browser TUI
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTemplate, Title: "Template Commands:"},
		&cobra.Group{ID: groupAuthoring, Title: "Authoring Commands:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Template commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupTemplate

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTemplate

	lintCmd := newLintCommand(c)
	lintCmd.GroupID = groupTemplate

	// Authoring commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupAuthoring

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTemplate

	root.AddCommand(
		initCmd,
		configCmd,
		listCmd,
		showCmd,
		lintCmd,
		newCmd,
		tuiCmd,
	)

	return root
}
