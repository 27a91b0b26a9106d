package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/repository"
	"github.com/alexanderramin/scenariogen/internal/settings"
	"github.com/google/uuid"
)

// ErrNoGenerator is returned when a turn needs generated text and no
// generator is configured.
var ErrNoGenerator = errors.New("no text generator configured")

const (
	untitledScenario = "Untitled Scenario"
	maxTitleRunes    = 60
)

type scenarioService struct {
	sessions repository.SessionRepo
	cards    repository.CardRepo
	turns    repository.TurnRepo
	uow      db.UnitOfWork
	engine   *engine.Engine
	gen      Generator
	observer UseCaseObserver

	// mu serializes turns. The engine's random source is not safe for
	// concurrent use and a turn's phases must not interleave.
	mu sync.Mutex
}

// NewScenarioService wires the store, the turn engine and a generator. gen
// may be nil when only host-driven phases, exports and card edits are used.
func NewScenarioService(
	sessions repository.SessionRepo,
	cards repository.CardRepo,
	turns repository.TurnRepo,
	uow db.UnitOfWork,
	eng *engine.Engine,
	gen Generator,
	observers ...UseCaseObserver,
) ScenarioService {
	return &scenarioService{
		sessions: sessions,
		cards:    cards,
		turns:    turns,
		uow:      uow,
		engine:   eng,
		gen:      gen,
		observer: useCaseObserverOrNoop(observers),
	}
}

// snapshot is a session loaded for one use case. Phases mutate it in memory
// and save writes the result back in a single transaction.
type snapshot struct {
	session  *domain.Session
	isNew    bool
	turns    []*domain.Turn
	outline  *domain.Card
	settings *domain.Card
	docs     engine.Documents
}

func (sn *snapshot) transcript() string {
	return domain.JoinTurns(sn.turns)
}

func (sn *snapshot) opening() string {
	for _, t := range sn.turns {
		if t.Kind == domain.TurnOpening {
			return t.Text
		}
	}
	return ""
}

func (s *scenarioService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *scenarioService) Create(ctx context.Context, req StartRequest) (sess *domain.Session, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "create", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn := s.newSnapshot(req)
	fields["session_id"] = sn.session.ID
	if err = s.save(ctx, sn); err != nil {
		return nil, err
	}
	return sn.session, nil
}

func (s *scenarioService) Start(ctx context.Context, req StartRequest) (res *TurnResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "start", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn := s.newSnapshot(req)
	fields["session_id"] = sn.session.ID
	res, err = s.play(ctx, sn, engine.OpeningForm(req.StoryRequest, req.Tags))
	if err != nil {
		return nil, err
	}
	fields["output_kind"] = string(res.Output.Kind)
	return res, nil
}

// newSnapshot is an unsaved session with default cards.
func (s *scenarioService) newSnapshot(req StartRequest) *snapshot {
	now := time.Now().UTC()
	return &snapshot{
		session: &domain.Session{
			ID:        uuid.New().String(),
			Title:     sessionTitle(req),
			Status:    domain.SessionActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
		isNew: true,
		docs:  s.engine.LoadDocuments("", ""),
	}
}

func sessionTitle(req StartRequest) string {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = strings.TrimSpace(req.StoryRequest)
	}
	if title == "" {
		return untitledScenario
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		title = strings.TrimSpace(string([]rune(title)[:maxTitleRunes])) + "..."
	}
	return title
}

func (s *scenarioService) PlayTurn(ctx context.Context, sessionID, input string) (res *TurnResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID, "continue": input == ""}
	defer func() { s.observe(ctx, "play-turn", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res, err = s.play(ctx, sn, input)
	if err != nil {
		return nil, err
	}
	fields["action_count"] = res.Session.ActionCount
	fields["output_kind"] = string(res.Output.Kind)
	return res, nil
}

// play runs every phase of a turn and saves the result. Nothing is stored
// when generation fails.
func (s *scenarioService) play(ctx context.Context, sn *snapshot, input string) (*TurnResult, error) {
	text, inTurn := s.inputPhase(sn, input)
	cres := s.engine.BuildContext(&sn.session.State, engine.ContextRequest{
		Transcript: sn.transcript(),
		Docs:       sn.docs,
	})

	var generated string
	if !cres.Abort {
		if s.gen == nil {
			return nil, ErrNoGenerator
		}
		var err error
		generated, err = s.gen.Generate(ctx, cres.Text)
		if err != nil {
			return nil, fmt.Errorf("generating turn text: %w", err)
		}
	}

	out, outTurn := s.outputPhase(sn, generated)
	if err := s.save(ctx, sn, inTurn, outTurn); err != nil {
		return nil, err
	}
	return &TurnResult{Session: sn.session, Input: text, Context: cres, Output: out}, nil
}

func (s *scenarioService) SubmitInput(ctx context.Context, sessionID, input string) (res *InputResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "submit-input", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	text, turn := s.inputPhase(sn, input)
	if err = s.save(ctx, sn, turn); err != nil {
		return nil, err
	}
	return &InputResult{Session: sn.session, Text: text}, nil
}

func (s *scenarioService) BuildContext(ctx context.Context, sessionID string) (res *engine.ContextResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "build-context", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cres := s.engine.BuildContext(&sn.session.State, engine.ContextRequest{
		Transcript: sn.transcript(),
		Docs:       sn.docs,
	})
	fields["abort"] = cres.Abort
	if err = s.save(ctx, sn); err != nil {
		return nil, err
	}
	return &cres, nil
}

func (s *scenarioService) SubmitOutput(ctx context.Context, sessionID, generated string) (res *engine.Output, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "submit-output", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out, turn := s.outputPhase(sn, generated)
	fields["output_kind"] = string(out.Kind)
	if err = s.save(ctx, sn, turn); err != nil {
		return nil, err
	}
	return &out, nil
}

// inputPhase starts a turn. An empty input after the opening is a plain
// continue and only clears the previous turn's state.
func (s *scenarioService) inputPhase(sn *snapshot, input string) (string, *domain.Turn) {
	state := &sn.session.State
	kind := domain.TurnInput
	var text string
	switch {
	case sn.session.ActionCount == 0:
		kind = domain.TurnOpening
		text = s.engine.PrepareTurnInput(state, engine.InputRequest{Raw: input})
		if state.Failed() {
			return "", nil
		}
	case input == "":
		kind = domain.TurnContinue
		s.engine.BeginTurn(state)
	default:
		text = s.engine.PrepareTurnInput(state, engine.InputRequest{Raw: input, ActionCount: sn.session.ActionCount})
	}
	return text, s.appendTurn(sn, kind, text)
}

// outputPhase finishes a turn. Only generated text joins the transcript;
// help, errors and the export are shown once and not stored.
func (s *scenarioService) outputPhase(sn *snapshot, generated string) (engine.Output, *domain.Turn) {
	out := s.engine.FinalizeOutput(&sn.session.State, engine.OutputRequest{
		Generated:  generated,
		Transcript: sn.transcript(),
		Opening:    sn.opening(),
		Docs:       sn.docs,
	})

	var turn *domain.Turn
	if out.Kind.AppendsToTranscript() {
		turn = s.appendTurn(sn, domain.TurnOutput, out.Text)
	}
	switch out.Kind {
	case engine.OutputComplete:
		sn.session.Status = domain.SessionComplete
	case engine.OutputExport:
		now := time.Now().UTC()
		sn.session.ExportedAt = &now
	}
	// A rejected opening leaves the session at its first action so the
	// opening can be submitted again.
	if sn.session.ActionCount > 0 || len(sn.turns) > 0 {
		sn.session.ActionCount++
	}
	return out, turn
}

func (s *scenarioService) appendTurn(sn *snapshot, kind domain.TurnKind, text string) *domain.Turn {
	t := &domain.Turn{
		ID:        uuid.New().String(),
		SessionID: sn.session.ID,
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	sn.turns = append(sn.turns, t)
	return t
}

func (s *scenarioService) load(ctx context.Context, idOrPrefix string) (*snapshot, error) {
	sess, err := s.sessions.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	turns, err := s.turns.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	outlineCard, err := s.optionalCard(ctx, sess.ID, domain.RoleOutline)
	if err != nil {
		return nil, err
	}
	settingsCard, err := s.optionalCard(ctx, sess.ID, domain.RoleSettings)
	if err != nil {
		return nil, err
	}

	sn := &snapshot{
		session:  sess,
		turns:    turns,
		outline:  outlineCard,
		settings: settingsCard,
	}
	sn.docs = s.engine.LoadDocuments(cardEntry(outlineCard), cardEntry(settingsCard))
	return sn, nil
}

func (s *scenarioService) optionalCard(ctx context.Context, sessionID string, role domain.DocumentRole) (*domain.Card, error) {
	c, err := s.cards.Get(ctx, sessionID, role)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

func cardEntry(c *domain.Card) string {
	if c == nil {
		return ""
	}
	return c.Entry
}

// outlineCard is the outline card as it should be stored: the canonical
// text of the resolved outline.
func (sn *snapshot) outlineCard() *domain.Card {
	return sn.card(sn.outline, domain.RoleOutline, outline.Title, outline.Notes, sn.docs.OutlineText)
}

func (sn *snapshot) settingsCard() *domain.Card {
	return sn.card(sn.settings, domain.RoleSettings, settings.Title, settings.Notes, sn.docs.SettingsText)
}

func (sn *snapshot) card(existing *domain.Card, role domain.DocumentRole, title, notes, entry string) *domain.Card {
	if existing != nil {
		c := *existing
		c.Entry = entry
		return &c
	}
	now := time.Now().UTC()
	return &domain.Card{
		ID:        uuid.New().String(),
		SessionID: sn.session.ID,
		Role:      role,
		Title:     title,
		Entry:     entry,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// save writes the session, any card whose canonical text changed and the
// new turns in one transaction.
func (s *scenarioService) save(ctx context.Context, sn *snapshot, newTurns ...*domain.Turn) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txCards := repository.NewSQLiteCardRepo(tx)
		txTurns := repository.NewSQLiteTurnRepo(tx)

		if sn.isNew {
			if err := txSessions.Create(ctx, sn.session); err != nil {
				return err
			}
		} else if err := txSessions.Update(ctx, sn.session); err != nil {
			return err
		}

		for _, pair := range []struct {
			stored, want *domain.Card
		}{
			{sn.outline, sn.outlineCard()},
			{sn.settings, sn.settingsCard()},
		} {
			if pair.stored != nil && pair.stored.Entry == pair.want.Entry {
				continue
			}
			if err := txCards.Upsert(ctx, pair.want); err != nil {
				return err
			}
		}

		for _, t := range newTurns {
			if t == nil {
				continue
			}
			if err := txTurns.Append(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *scenarioService) Transcript(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.sessions.GetByPrefix(ctx, sessionID)
	if err != nil {
		return "", err
	}
	turns, err := s.turns.ListBySession(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	return domain.JoinTurns(turns), nil
}

func (s *scenarioService) Export(ctx context.Context, sessionID string) (out string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "export", startedAt, fields, err) }()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	fields["complete"] = sn.session.IsComplete()
	return engine.ExportStoryBible(sn.transcript(), sn.opening(), sn.docs.Settings)
}

func (s *scenarioService) Outline(ctx context.Context, sessionID string) (*OutlineResult, error) {
	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &OutlineResult{Card: sn.outlineCard(), Reset: sn.docs.OutlineReset}, nil
}

func (s *scenarioService) UpdateOutline(ctx context.Context, sessionID, text string) (res *OutlineResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "update-outline", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	doc, canonical, reset := outline.Ensure(text)
	changed := sn.docs.OutlineReset || !doc.Equal(sn.docs.Outline)
	fields["changed"] = changed
	fields["reset"] = reset
	fields["sections"] = doc.Len()
	if !changed {
		return &OutlineResult{Card: sn.outlineCard(), Reset: reset}, nil
	}
	sn.docs.Outline = doc
	sn.docs.OutlineText = canonical
	sn.docs.OutlineReset = reset

	if err = s.save(ctx, sn); err != nil {
		return nil, err
	}
	return &OutlineResult{Card: sn.outlineCard(), Reset: reset}, nil
}

func (s *scenarioService) ResetOutline(ctx context.Context, sessionID string) (*OutlineResult, error) {
	res, err := s.UpdateOutline(ctx, sessionID, outline.DefaultText)
	if err != nil {
		return nil, err
	}
	res.Reset = false
	return res, nil
}

func (s *scenarioService) Settings(ctx context.Context, sessionID string) (*SettingsResult, error) {
	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SettingsResult{Card: sn.settingsCard(), Settings: sn.docs.Settings}, nil
}

func (s *scenarioService) UpdateSetting(ctx context.Context, sessionID, key, value string) (res *SettingsResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID, "key": key}
	defer func() { s.observe(ctx, "update-setting", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sn, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updated, err := sn.docs.Settings.Set(key, value)
	if err != nil {
		return nil, err
	}
	sn.docs.Settings = updated
	sn.docs.SettingsText = updated.Serialize()

	if err = s.save(ctx, sn); err != nil {
		return nil, err
	}
	return &SettingsResult{Card: sn.settingsCard(), Settings: updated}, nil
}

func (s *scenarioService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *scenarioService) GetSession(ctx context.Context, idOrPrefix string) (*domain.Session, error) {
	return s.sessions.GetByPrefix(ctx, idOrPrefix)
}

func (s *scenarioService) DeleteSession(ctx context.Context, sessionID string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() { s.observe(ctx, "delete-session", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.GetByPrefix(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sess.ID)
}
