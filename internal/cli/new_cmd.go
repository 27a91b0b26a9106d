package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
	"github.com/alexanderramin/scenariogen/internal/service"
)

func newNewCmd(app *App) *cobra.Command {
	var req service.StartRequest
	var noPlay bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a scenario interview",
		Long: `Start a scenario interview. The story request and tags become the
opening turn and the model fills in the rest of the overview.

Without flags on a terminal, a form asks for them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if req.StoryRequest == "" && req.Tags == "" && app.interactive() {
				if err := scenarioForm(&req).RunWithContext(ctx); err != nil {
					return err
				}
			}

			if noPlay {
				sess, err := app.Scenarios.Create(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Created %s %s\n", formatter.TruncID(sess.ID), formatter.Bold(sess.Title))
				return nil
			}

			stop := app.startSpinner(cmd.ErrOrStderr(), "Writing the opening...")
			res, err := app.Scenarios.Start(ctx, req)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s\n\n", formatter.Dim("Started"), formatter.TruncID(res.Session.ID), formatter.Bold(res.Session.Title))
			fmt.Fprint(out, res.Input)
			fmt.Fprint(out, formatter.FormatOutput(res.Output))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Scenario title (defaults to the story request)")
	cmd.Flags().StringVarP(&req.StoryRequest, "request", "r", "", "What the scenario should be about")
	cmd.Flags().StringVarP(&req.Tags, "tags", "t", "", "Comma separated tags")
	cmd.Flags().BoolVar(&noPlay, "no-play", false, "Create the session without generating the opening turn")

	return cmd
}
