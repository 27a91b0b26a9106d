// Package engine drives one interview turn in three phases: preparing the
// user's input, building the generation context with its hidden prompt, and
// finalizing the generated output. Phases share a domain.TurnState that the
// caller persists between them.
package engine

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

// Engine runs turn phases. It holds no per-session state.
type Engine struct {
	log      *zap.Logger
	rand     *rand.Rand
	settings settings.Cache
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand fixes the random source used for seed words.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// New creates an Engine. A nil logger discards output.
func New(log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Documents are the session's outline and settings cards, resolved for use.
type Documents struct {
	Outline *domain.Document
	// OutlineText is the canonical outline to store back.
	OutlineText string
	// OutlineReset is true when the stored outline was unusable and the
	// default replaced it.
	OutlineReset bool
	Settings     settings.Settings
	// SettingsText is the canonical settings card to store back.
	SettingsText string
}

// LoadDocuments repairs the stored outline and resolves settings. Empty text
// means the card does not exist yet and defaults are used.
func (e *Engine) LoadDocuments(outlineText, settingsText string) Documents {
	doc, canonical, reset := outline.Ensure(outlineText)
	if reset && outlineText != "" {
		e.log.Warn("outline could not be repaired, reset to default")
	}
	s, settingsCanonical := e.settings.Resolve(settingsText)
	return Documents{
		Outline:      doc,
		OutlineText:  canonical,
		OutlineReset: reset && outlineText != "",
		Settings:     s,
		SettingsText: settingsCanonical,
	}
}

// BeginTurn clears state left over from the previous turn.
func (e *Engine) BeginTurn(state *domain.TurnState) {
	state.Reset()
}

// ErrorText renders the first recorded error as a comment line. Later errors
// are usually consequences of the first and are only logged.
func (e *Engine) ErrorText(state *domain.TurnState) string {
	if !state.Failed() {
		return ""
	}
	for i, te := range state.Errors {
		e.log.Debug("turn error", zap.Int("index", i), zap.String("name", te.Name), zap.String("message", te.Message))
	}
	first := state.Errors[0]
	return "// " + first.Name + ": " + first.Message + "\n"
}
