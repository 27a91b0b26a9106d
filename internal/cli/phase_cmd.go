package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
)

// newPhaseCmd runs one turn phase at a time for hosts that call the model
// themselves.
func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Run a single turn phase",
		Long: `Run the phases of a turn one at a time: input, then context, then
output with the text your model generated for that context.`,
	}

	cmd.AddCommand(
		newPhaseInputCmd(app),
		newPhaseContextCmd(app),
		newPhaseOutputCmd(app),
	)

	return cmd
}

func newPhaseInputCmd(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "input SESSION",
		Short: "Submit player input, or nothing to continue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.SubmitInput(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Input text")

	return cmd
}

func newPhaseContextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "context SESSION",
		Short: "Print the prompt to send to the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.BuildContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.Abort {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("No generation needed; run `phase output` with empty text."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
}

func newPhaseOutputCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "output SESSION",
		Short: "Submit generated text and print the finished output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var generated string
			if file != "" {
				var err error
				if generated, err = readInput(cmd.InOrStdin(), file); err != nil {
					return err
				}
			}
			out, err := app.Scenarios.SubmitOutput(cmd.Context(), args[0], generated)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOutput(*out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File holding the generated text, or - for stdin")

	return cmd
}
