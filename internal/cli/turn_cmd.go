package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
)

func newTurnCmd(app *App) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "turn SESSION",
		Aliases: []string{"continue"},
		Short:   "Play the next turn of a scenario",
		Long: `Play the next turn. Without --input the model continues where the
transcript leaves off. --input help prints usage; any other input only starts
a new line, which closes the field being written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.startSpinner(cmd.ErrOrStderr(), "Generating...")
			res, err := app.Scenarios.PlayTurn(cmd.Context(), args[0], input)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOutput(res.Output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Player input for this turn")

	return cmd
}

func newTranscriptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript SESSION",
		Short: "Print a scenario's transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Scenarios.Transcript(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
