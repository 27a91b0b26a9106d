package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
)

func newSessionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"ls"},
		Short:   "List scenarios, most recently played first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Scenarios.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, app.now()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SESSION",
		Short: "Show a scenario's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Scenarios.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(sess, app.now()))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete SESSION",
		Aliases: []string{"rm"},
		Short:   "Delete a scenario with its transcript and cards",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.Scenarios.GetSession(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				title := fmt.Sprintf("Delete %q?", sess.Title)
				if err := confirmForm(title, &confirmed).RunWithContext(ctx); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Scenarios.DeleteSession(ctx, sess.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", formatter.TruncID(sess.ID), sess.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
