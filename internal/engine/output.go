package engine

import (
	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/normalize"
	"github.com/alexanderramin/scenariogen/internal/position"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

// OutputKind says what FinalizeOutput produced.
type OutputKind string

const (
	// OutputText is normalized generated text.
	OutputText OutputKind = "text"
	// OutputComplete is normalized text that filled the last outline field,
	// followed by CompletionNotice.
	OutputComplete OutputKind = "complete"
	// OutputExport is the story bible JSON.
	OutputExport OutputKind = "export"
	OutputHelp   OutputKind = "help"
	OutputError  OutputKind = "error"
)

// AppendsToTranscript reports whether output of this kind becomes part of
// the transcript.
func (k OutputKind) AppendsToTranscript() bool {
	return k == OutputText || k == OutputComplete
}

// Output is the finished text for a turn.
type Output struct {
	Text string
	Kind OutputKind
}

// OutputRequest carries the generated text and the transcript it follows.
type OutputRequest struct {
	Generated string
	// Transcript is the full text before Generated.
	Transcript string
	// Opening is the first turn's text, searched for the story request.
	Opening string
	Docs    Documents
}

// FinalizeOutput turns generated text into what the user sees. Errors take
// priority over everything, then help, then the export of a completed
// outline. Otherwise the text is normalized, with a completion notice when
// it reached the end of the outline.
func (e *Engine) FinalizeOutput(state *domain.TurnState, req OutputRequest) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("output phase panicked", zap.Any("panic", r))
			state.Record(ErrNameUncaughtOutput, msgUncaughtOutput)
			out = Output{Text: e.ErrorText(state), Kind: OutputError}
		}
	}()

	if state.Failed() {
		return Output{Text: e.ErrorText(state), Kind: OutputError}
	}
	if state.HelpRequested {
		state.HelpRequested = false
		return Output{Text: HelpText, Kind: OutputHelp}
	}
	if state.Complete {
		state.Complete = false
		bible, err := ExportStoryBible(req.Transcript, req.Opening, req.Docs.Settings)
		if err != nil {
			e.log.Error("story bible export failed", zap.Error(err))
			state.Record(ErrNameUncaughtOutput, msgUncaughtOutput)
			return Output{Text: e.ErrorText(state), Kind: OutputError}
		}
		return Output{Text: "\n" + bible, Kind: OutputExport}
	}

	text := normalize.Normalize(normalize.Input{
		Text:          req.Generated,
		Previous:      req.Transcript,
		Continuation:  state.Continuation,
		PendingHeader: state.PendingHeader,
		Seeds:         state.Seeds,
		ShowSeeds:     req.Docs.Settings.Seeds.AddRandomSeedWords && req.Docs.Settings.Seeds.ShowSeedWords,
	})
	state.Continuation = false
	state.PendingHeader = ""

	after := textformat.ParseSoft(req.Transcript+text, textformat.Transcript)
	working, err := workingOutline(req.Docs.Outline, after)
	if err == nil && position.IsComplete(working, after) {
		e.log.Info("outline completed")
		return Output{Text: text + CompletionNotice, Kind: OutputComplete}
	}
	return Output{Text: text, Kind: OutputText}
}
