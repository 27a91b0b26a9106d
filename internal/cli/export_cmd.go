package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export SESSION",
		Short: "Write the story bible JSON",
		Long: `Write the story bible built from the transcript so far. Fields the
interview has not reached yet are left out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bible, err := app.Scenarios.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), bible)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(bible+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing story bible: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Story bible written to %s\n", formatter.Bold(outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
