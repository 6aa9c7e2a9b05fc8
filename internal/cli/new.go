package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/usecase"
)

// newNewCommand creates the new command.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title         string
		Out           string
		StripComments bool
		NoFill        bool
	}

	cmd := &cobra.Command{
		Use:   "new <template>",
		Short: "Render a template into an issue draft",
		Long: `Render an issue template into a ready-to-file draft.

Markdown templates are rendered as-is; YAML issue forms are converted
into a Markdown skeleton with one section per form element. The
{{version}}, {{branch}}, {{repo}} and {{date}} tokens in template bodies are substituted
from the repository's latest tag (or HEAD) and current branch.

Examples:
  # Draft a bug report
  issuekit new bug_report --title "crash on start"

  # Write the draft to a file, without placeholder comments
  issuekit new bug_report --strip-comments --out draft.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RenderIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RenderIssueInput{
				Name:          args[0],
				Title:         opts.Title,
				StripComments: opts.StripComments,
				NoFill:        opts.NoFill,
			})
			if err != nil {
				return err
			}

			var b strings.Builder
			if out.Title != "" {
				fmt.Fprintf(&b, "Title: %s\n", out.Title)
			}
			if len(out.Labels) > 0 {
				fmt.Fprintf(&b, "Labels: %s\n", strings.Join(out.Labels, ", "))
			}
			if len(out.Assignees) > 0 {
				fmt.Fprintf(&b, "Assignees: %s\n", strings.Join(out.Assignees, ", "))
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(out.Body)

			if opts.Out != "" {
				if err := os.WriteFile(opts.Out, []byte(b.String()), 0o644); err != nil {
					return fmt.Errorf("write draft: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote draft to %s\n", opts.Out)
				return nil
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Issue title (appended to the template's title prefix)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the draft to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.StripComments, "strip-comments", false, "Remove HTML comment placeholders")
	cmd.Flags().BoolVar(&opts.NoFill, "no-fill", false, "Keep {{version}}, {{branch}}, {{repo}} and {{date}} tokens verbatim")

	return cmd
}
