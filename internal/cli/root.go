package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/api"
	"github.com/alexanderramin/scenariogen/internal/cli/formatter"
	"github.com/alexanderramin/scenariogen/internal/service"
)

// App holds what the CLI commands share.
type App struct {
	Scenarios service.ScenarioService
	Log       *zap.Logger

	// HTTPAddr is the default listen address for `serve`.
	HTTPAddr string

	// Model backs the model field of `serve`'s /health. Nil when no
	// generator is configured.
	Model api.ModelChecker

	// IsInteractive reports whether stdin is a terminal. Forms and spinners
	// only run when it returns true.
	IsInteractive func() bool

	// Now is the clock for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// startSpinner animates message on w while interactive. The returned
// function stops it.
func (a *App) startSpinner(w io.Writer, message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(w, message)
}

// NewRootCmd creates the top-level "scenariogen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scenariogen",
		Short: "Build story bibles through an outline-driven interview",
		Long: `scenariogen walks a language model through an outline one field at a
time and turns the finished transcript into a JSON story bible.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newTurnCmd(app),
		newPhaseCmd(app),
		newTranscriptCmd(app),
		newExportCmd(app),
		newSessionsCmd(app),
		newShowCmd(app),
		newDeleteCmd(app),
		newOutlineCmd(app),
		newSettingsCmd(app),
		newServeCmd(app),
	)

	return root
}
