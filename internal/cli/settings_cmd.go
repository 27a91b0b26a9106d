package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change a scenario's settings card",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SESSION",
		Short: "Print every setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.Settings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(res.Settings))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set SESSION KEY VALUE",
		Short: "Change one setting",
		Long: "Change one setting. Keys:\n  " + strings.Join(settings.Keys(), "\n  ") +
			"\n\nThe section may be omitted when the key is unambiguous.",
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveSettingKey(args[1])
			if err != nil {
				return err
			}
			res, err := app.Scenarios.UpdateSetting(cmd.Context(), args[0], key, args[2])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(res.Settings))
			return nil
		},
	}
}

// resolveSettingKey expands a bare key such as "seed_word_count" to its
// full section.key path.
func resolveSettingKey(key string) (string, error) {
	if strings.Contains(key, ".") {
		return key, nil
	}
	var match string
	for _, path := range settings.Keys() {
		if strings.HasSuffix(path, "."+key) {
			if match != "" {
				return "", fmt.Errorf("setting %q matches more than one section: %w", key, settings.ErrInvalidSetting)
			}
			match = path
		}
	}
	if match == "" {
		return "", fmt.Errorf("unknown setting %q: %w", key, settings.ErrInvalidSetting)
	}
	return match, nil
}
