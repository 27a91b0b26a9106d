package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/position"
	"github.com/alexanderramin/scenariogen/internal/prompt"
	"github.com/alexanderramin/scenariogen/internal/textformat"
)

// ContextRequest is the transcript to send for generation.
type ContextRequest struct {
	Transcript string
	Docs       Documents
}

// ContextResult is the text to generate from.
type ContextResult struct {
	Text string
	// Abort is true when Text is AbortPrompt and generation should be skipped.
	Abort bool
	// Complete is true when the transcript already reached the outline's end.
	Complete bool
}

// BuildContext splices the hidden prompt into the transcript. It aborts for
// help requests, a completed outline, or any error recorded this turn.
func (e *Engine) BuildContext(state *domain.TurnState, req ContextRequest) (res ContextResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("context phase panicked", zap.Any("panic", r))
			state.Record(ErrNameUncaughtContext, msgUncaughtContext)
			res = ContextResult{Text: AbortPrompt, Abort: true}
		}
	}()

	if state.HelpRequested || state.Failed() {
		return ContextResult{Text: AbortPrompt, Abort: true}
	}

	lines := textformat.Lines(req.Transcript, textformat.Transcript)
	parsed, err := textformat.ParseLines(lines)
	if err != nil {
		e.log.Warn("transcript parse failed", zap.Error(err))
		state.Record(ErrNameContextParsing, msgContextParsing)
	}

	working, err := workingOutline(req.Docs.Outline, parsed)
	if err != nil {
		e.log.Warn("outline unusable", zap.Error(err))
		state.Record(ErrNameOutlineParsing, msgOutlineParsing)
		return ContextResult{Text: AbortPrompt, Abort: true}
	}

	if position.IsComplete(working, parsed) {
		state.Complete = true
		e.log.Debug("outline complete, aborting generation")
		return ContextResult{Text: AbortPrompt, Abort: true, Complete: true}
	}

	built := prompt.Build(prompt.Request{
		Lines:      lines,
		Outline:    working,
		Transcript: parsed,
		Settings:   req.Docs.Settings,
		Rand:       e.rand,
	})
	state.Continuation = built.Continuation
	state.PendingHeader = built.PendingHeader
	state.Seeds = built.Seeds
	e.log.Debug("hidden prompt built",
		zap.String("section", built.Cursor.Section),
		zap.String("field", built.Cursor.Field),
		zap.Int("remaining", built.Cursor.Remaining),
		zap.Bool("continuation", built.Continuation),
		zap.String("pending_header", built.PendingHeader),
	)

	if state.Failed() {
		return ContextResult{Text: AbortPrompt, Abort: true}
	}
	return ContextResult{Text: strings.Join(prompt.Insert(lines, built.Prompt, built.Section), "\n")}
}

// workingOutline expands the character template against the transcript's
// roster.
func workingOutline(doc, transcript *domain.Document) (*domain.Document, error) {
	if doc.IsEmpty() {
		return nil, fmt.Errorf("outline has no sections")
	}
	return outline.ExpandCharacterTemplate(doc, outline.RosterFrom(transcript)), nil
}
