package service

import (
	"context"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

// Generator produces the text that follows a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StartRequest describes a new interview. Title defaults to the story
// request, or to "Untitled Scenario" when both are blank.
type StartRequest struct {
	Title        string
	StoryRequest string
	Tags         string
}

// TurnResult is everything one turn produced.
type TurnResult struct {
	Session *domain.Session
	// Input is the text the input phase appended to the transcript.
	Input   string
	Context engine.ContextResult
	Output  engine.Output
}

// InputResult is the outcome of the input phase when the host drives the
// phases itself.
type InputResult struct {
	Session *domain.Session
	Text    string
}

// OutlineResult is a session's outline card after a read or edit.
type OutlineResult struct {
	Card *domain.Card
	// Reset is true when the submitted outline could not be repaired and the
	// default outline was stored instead.
	Reset bool
}

// SettingsResult is a session's settings card and its typed values.
type SettingsResult struct {
	Card     *domain.Card
	Settings settings.Settings
}

type ScenarioService interface {
	// Create stores a session with default cards and no turns. The host
	// submits the opening form as its first input.
	Create(ctx context.Context, req StartRequest) (*domain.Session, error)
	// Start creates a session with default cards and plays its opening turn.
	Start(ctx context.Context, req StartRequest) (*TurnResult, error)
	// PlayTurn runs input, context, generation and output for one turn. An
	// empty input is a plain continue.
	PlayTurn(ctx context.Context, sessionID, input string) (*TurnResult, error)

	SubmitInput(ctx context.Context, sessionID, input string) (*InputResult, error)
	BuildContext(ctx context.Context, sessionID string) (*engine.ContextResult, error)
	SubmitOutput(ctx context.Context, sessionID, generated string) (*engine.Output, error)

	Transcript(ctx context.Context, sessionID string) (string, error)
	// Export serializes the transcript as it stands, complete or not.
	Export(ctx context.Context, sessionID string) (string, error)

	Outline(ctx context.Context, sessionID string) (*OutlineResult, error)
	UpdateOutline(ctx context.Context, sessionID, text string) (*OutlineResult, error)
	ResetOutline(ctx context.Context, sessionID string) (*OutlineResult, error)

	Settings(ctx context.Context, sessionID string) (*SettingsResult, error)
	UpdateSetting(ctx context.Context, sessionID, key, value string) (*SettingsResult, error)

	ListSessions(ctx context.Context) ([]*domain.Session, error)
	// GetSession resolves a full session ID or a unique prefix of one.
	GetSession(ctx context.Context, idOrPrefix string) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
