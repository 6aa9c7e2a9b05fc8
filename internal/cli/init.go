package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Force       bool
		WithChooser bool
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold starter issue templates",
		Long: `Write the built-in issue templates to .github/ISSUE_TEMPLATE.

Creates bug_report.md, feature_request.md and question.md. With
--with-chooser, also creates config.yml so blank issues are directed
to the template chooser.

Error conditions:
- Templates already exist: error (use --force to overwrite)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitTemplatesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitTemplatesInput{
				Force:       opts.Force,
				WithChooser: opts.WithChooser,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyInitialized) {
					return fmt.Errorf("%s already contains templates (use --force to overwrite)", domain.PrimaryTemplateDir)
				}
				return err
			}

			w := cmd.OutOrStdout()
			for _, path := range out.Created {
				_, _ = fmt.Fprintf(w, "Created %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing template files")
	cmd.Flags().BoolVar(&opts.WithChooser, "with-chooser", false, "Also write the template chooser (config.yml)")

	return cmd
}
