package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/usecase"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
		Raw  bool
	}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a template's metadata and body",
		Long: `Show a single issue template.

The template may be addressed by its display name ("Bug report") or by
its file-name slug ("bug_report"). Use --raw to print the file verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTemplateUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTemplateInput{Name: args[0]})
			if err != nil {
				return err
			}
			tpl := out.Template

			w := cmd.OutOrStdout()
			if opts.Raw {
				_, _ = fmt.Fprint(w, tpl.Raw)
				return nil
			}
			if opts.JSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(templateToJSON(tpl))
			}

			_, _ = fmt.Fprintf(w, "Name:      %s\n", tpl.Name)
			if about := tpl.DisplayAbout(); about != "" {
				_, _ = fmt.Fprintf(w, "About:     %s\n", about)
			}
			if tpl.Title != "" {
				_, _ = fmt.Fprintf(w, "Title:     %s\n", tpl.Title)
			}
			if len(tpl.Labels) > 0 {
				_, _ = fmt.Fprintf(w, "Labels:    %s\n", strings.Join(tpl.Labels, ", "))
			}
			if len(tpl.Assignees) > 0 {
				_, _ = fmt.Fprintf(w, "Assignees: %s\n", strings.Join(tpl.Assignees, ", "))
			}
			_, _ = fmt.Fprintf(w, "Format:    %s\n", tpl.Format)
			_, _ = fmt.Fprintf(w, "Path:      %s\n", tpl.Path)

			switch tpl.Format {
			case domain.FormatForm:
				_, _ = fmt.Fprintf(w, "\nElements (%d):\n", len(tpl.Elements))
				for _, el := range tpl.Elements {
					label := el.Attributes.Label
					if label == "" {
						label = el.ID
					}
					_, _ = fmt.Fprintf(w, "  - %s: %s\n", el.Type, label)
				}
			default:
				_, _ = fmt.Fprintf(w, "\n%s", tpl.Body)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the template file verbatim")

	return cmd
}
