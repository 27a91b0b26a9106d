package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
	"github.com/alexanderramin/scenariogen/internal/service"
)

func newOutlineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "View or edit a scenario's outline card",
	}

	cmd.AddCommand(
		newOutlineShowCmd(app),
		newOutlineSetCmd(app),
		newOutlineResetCmd(app),
	)

	return cmd
}

func newOutlineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SESSION",
		Short: "Print the outline card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.Outline(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutline(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newOutlineSetCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set SESSION",
		Short: "Replace the outline from a file",
		Long: `Replace the outline card. Sections are lines of their own and fields
are "> Label: ..." lines. Prefix a label with (D) for a description field.
Use --file - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			res, err := app.Scenarios.UpdateOutline(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}
			printOutline(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Outline file, or - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newOutlineResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset SESSION",
		Short: "Restore the default outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.ResetOutline(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutline(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printOutline(w io.Writer, res *service.OutlineResult) {
	if res.Reset {
		fmt.Fprintln(w, formatter.StyleYellow.Render("The outline could not be read and was reset to the default."))
	}
	fmt.Fprint(w, formatter.FormatCard(res.Card))
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}
