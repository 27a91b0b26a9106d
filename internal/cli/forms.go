package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
	"github.com/alexanderramin/scenariogen/internal/service"
)

// huhTheme styles forms with the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// scenarioForm asks for the opening form's fields.
func scenarioForm(req *service.StartRequest) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Story Request").
				Description("What should the scenario be about? Leave blank to let the model decide.").
				Placeholder("a heist in a flooded city").
				Value(&req.StoryRequest),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated genres or themes, optional.").
				Placeholder("Crime, Noir").
				Value(&req.Tags),
			huh.NewInput().
				Title("Title").
				Description("Blank uses the story request.").
				Value(&req.Title).
				Validate(validateTitle),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

var errTitleNewline = errors.New("title must be a single line")

func validateTitle(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return errTitleNewline
	}
	return nil
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}
