package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/usecase"
)

// newLintCommand creates the lint command.
func newLintCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format      string
		MinSeverity string
		Strict      bool
	}

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check issue templates for problems",
		Long: `Check every discovered template, the chooser config and any stray
files in the template directory.

Each finding carries a rule id (e.g. front-matter/required) whose
severity can be overridden in the [lint.severity] config section.

Exit status is 1 when any error-level finding exists, or, with
--strict, when any warning exists.

Examples:
  # Lint with human-readable output
  issuekit lint

  # Machine-readable output for CI
  issuekit lint --format json

  # Treat warnings as failures
  issuekit lint --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.LintTemplatesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LintTemplatesInput{
				MinSeverity: opts.MinSeverity,
			})
			if err != nil {
				if errors.Is(err, domain.ErrNoTemplates) {
					return fmt.Errorf("no issue templates found (run `issuekit init` to scaffold a starter set)")
				}
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.Format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out.Findings); err != nil {
					return err
				}
			case "", "text":
				for _, f := range out.Findings {
					if f.Line > 0 {
						_, _ = fmt.Fprintf(w, "%s:%d: %s: %s (%s)\n", f.Path, f.Line, f.Severity, f.Message, f.Rule)
					} else {
						_, _ = fmt.Fprintf(w, "%s: %s: %s (%s)\n", f.Path, f.Severity, f.Message, f.Rule)
					}
				}
				_, _ = fmt.Fprintf(w, "%d template(s) checked: %d error(s), %d warning(s), %d info\n",
					out.TemplateCount,
					out.Counts[domain.SeverityError],
					out.Counts[domain.SeverityWarning],
					out.Counts[domain.SeverityInfo])
			default:
				return fmt.Errorf("unknown output format: %s", opts.Format)
			}

			if out.HasErrors {
				return fmt.Errorf("lint failed with %d error(s)", out.Counts[domain.SeverityError])
			}
			if opts.Strict && out.Counts[domain.SeverityWarning] > 0 {
				return fmt.Errorf("lint failed with %d warning(s) (--strict)", out.Counts[domain.SeverityWarning])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.MinSeverity, "min-severity", "", "Hide findings below this severity: info, warning or error")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat warnings as failures")

	return cmd
}
