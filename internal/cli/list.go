package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/usecase"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Labels []string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered issue templates",
		Long: `List the issue templates discovered in the repository.

Templates are searched in .github/ISSUE_TEMPLATE, docs/ISSUE_TEMPLATE
and ISSUE_TEMPLATE, falling back to the legacy single-file locations.

Examples:
  # List all templates
  issuekit list

  # Only YAML issue forms
  issuekit list --format form

  # Templates carrying the "bug" label, as JSON
  issuekit list --label bug --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTemplatesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTemplatesInput{
				Format: opts.Format,
				Labels: opts.Labels,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTemplatesJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			if len(out.Templates) == 0 {
				_, _ = fmt.Fprintln(w, "No issue templates found. Run `issuekit init` to scaffold a starter set.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tFORMAT\tLABELS\tPATH")
			for _, tpl := range out.Templates {
				name := tpl.Name
				if name == "" {
					name = "(unnamed)"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, tpl.Format, joinLabels(tpl.Labels), tpl.Path)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if out.Chooser != nil && !out.Chooser.BlankIssuesEnabled {
				_, _ = fmt.Fprintln(w, "\nBlank issues are disabled by", out.Chooser.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Filter by format: markdown or form")
	cmd.Flags().StringSliceVarP(&opts.Labels, "label", "l", nil, "Filter by label (repeatable, AND condition)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func joinLabels(labels []string) string {
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ", "
		}
		out += l
	}
	return out
}

// templateJSON is the JSON shape of a template in list/show output.
type templateJSON struct {
	Name      string   `json:"name"`
	About     string   `json:"about,omitempty"`
	Title     string   `json:"title,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Format    string   `json:"format"`
	Path      string   `json:"path"`
}

func templateToJSON(tpl *domain.Template) templateJSON {
	return templateJSON{
		Name:      tpl.Name,
		About:     tpl.DisplayAbout(),
		Title:     tpl.Title,
		Labels:    tpl.Labels,
		Assignees: tpl.Assignees,
		Format:    string(tpl.Format),
		Path:      tpl.Path,
	}
}

func printTemplatesJSON(cmd *cobra.Command, out *usecase.ListTemplatesOutput) error {
	items := make([]templateJSON, 0, len(out.Templates))
	for _, tpl := range out.Templates {
		items = append(items, templateToJSON(tpl))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
