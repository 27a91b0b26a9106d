package api

import (
	"time"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/service"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

type sessionView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	ActionCount int        `json:"action_count"`
	ExportedAt  *time.Time `json:"exported_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newSessionView(s *domain.Session) sessionView {
	return sessionView{
		ID:          s.ID,
		Title:       s.Title,
		Status:      string(s.Status),
		ActionCount: s.ActionCount,
		ExportedAt:  s.ExportedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type contextView struct {
	Text     string `json:"text"`
	Abort    bool   `json:"abort"`
	Complete bool   `json:"complete"`
}

func newContextView(r engine.ContextResult) contextView {
	return contextView{Text: r.Text, Abort: r.Abort, Complete: r.Complete}
}

type outputView struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	// Append tells the host whether Text belongs in the transcript.
	Append bool `json:"append"`
}

func newOutputView(o engine.Output) outputView {
	return outputView{Text: o.Text, Kind: string(o.Kind), Append: o.Kind.AppendsToTranscript()}
}

type turnView struct {
	Session sessionView `json:"session"`
	Input   string      `json:"input"`
	Context contextView `json:"context"`
	Output  outputView  `json:"output"`
}

func newTurnView(r *service.TurnResult) turnView {
	return turnView{
		Session: newSessionView(r.Session),
		Input:   r.Input,
		Context: newContextView(r.Context),
		Output:  newOutputView(r.Output),
	}
}

type cardView struct {
	Title string `json:"title"`
	Entry string `json:"entry"`
	Notes string `json:"notes"`
}

func newCardView(c *domain.Card) cardView {
	return cardView{Title: c.Title, Entry: c.Entry, Notes: c.Notes}
}

type outlineView struct {
	cardView
	Reset bool `json:"reset"`
}

type settingsValues struct {
	DescriptionSize           int  `json:"description_size"`
	IncludeStoryRequestInJSON bool `json:"include_story_request_in_json"`
	AddRandomSeedWords        bool `json:"add_random_seed_words"`
	UseSFWList                bool `json:"use_sfw_list"`
	UseNSFWList               bool `json:"use_nsfw_list"`
	SeedWordCount             int  `json:"seed_word_count"`
	ShowSeedWords             bool `json:"show_seed_words"`
}

type settingsView struct {
	cardView
	Values settingsValues `json:"values"`
}

func newSettingsView(r *service.SettingsResult) settingsView {
	s := r.Settings
	return settingsView{
		cardView: newCardView(r.Card),
		Values:   newSettingsValues(s),
	}
}

func newSettingsValues(s settings.Settings) settingsValues {
	return settingsValues{
		DescriptionSize:           s.General.DescriptionSize,
		IncludeStoryRequestInJSON: s.General.IncludeStoryRequestInJSON,
		AddRandomSeedWords:        s.Seeds.AddRandomSeedWords,
		UseSFWList:                s.Seeds.UseSFWList,
		UseNSFWList:               s.Seeds.UseNSFWList,
		SeedWordCount:             s.Seeds.SeedWordCount,
		ShowSeedWords:             s.Seeds.ShowSeedWords,
	}
}
