package engine

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(zaptest.NewLogger(t), WithRand(rand.New(rand.NewPCG(1, 1))))
}

func TestOpeningText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"request and tags", "Story Request: a heist\nTags: Crime, Noir\n", "Story Request: a heist\n\nOverview\nTags: Crime, Noir\n"},
		{"blank request", "Story Request:\nTags: Crime\n", "\nOverview\nTags: Crime\n"},
		{"blank tags", "Story Request: a heist\nTags:   \n", "Story Request: a heist\n\nOverview\n"},
		{"both blank", OpeningForm("", ""), "\nOverview\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OpeningText(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := OpeningText("hello there")
	assert.ErrorIs(t, err, ErrOpeningMalformed)
}

func TestPrepareTurnInput(t *testing.T) {
	e := newTestEngine(t)

	t.Run("opening", func(t *testing.T) {
		var st domain.TurnState
		got := e.PrepareTurnInput(&st, InputRequest{Raw: OpeningForm("a heist", "Crime"), ActionCount: 0})
		assert.Equal(t, "Story Request: a heist\n\nOverview\nTags: Crime\n", got)
		assert.False(t, st.Failed())
	})

	t.Run("malformed opening records an error", func(t *testing.T) {
		var st domain.TurnState
		got := e.PrepareTurnInput(&st, InputRequest{Raw: "???", ActionCount: 0})
		assert.Empty(t, got)
		require.True(t, st.Failed())
		assert.Equal(t, ErrNameInitialInput, st.Errors[0].Name)
	})

	t.Run("help", func(t *testing.T) {
		var st domain.TurnState
		got := e.PrepareTurnInput(&st, InputRequest{Raw: "HELP please", ActionCount: 3})
		assert.Empty(t, got)
		assert.True(t, st.HelpRequested)
	})

	t.Run("help ignored on opening", func(t *testing.T) {
		var st domain.TurnState
		e.PrepareTurnInput(&st, InputRequest{Raw: OpeningForm("help me write", ""), ActionCount: 0})
		assert.False(t, st.HelpRequested)
	})

	t.Run("other input becomes a line break and clears old state", func(t *testing.T) {
		st := domain.TurnState{Continuation: true}
		st.Record("Old", "stale")
		got := e.PrepareTurnInput(&st, InputRequest{Raw: "write more", ActionCount: 2})
		assert.Equal(t, "\n", got)
		assert.Equal(t, domain.TurnState{}, st)
	})
}

func TestLoadDocuments(t *testing.T) {
	e := newTestEngine(t)

	d := e.LoadDocuments("", "")
	assert.Equal(t, outline.DefaultText, d.OutlineText)
	assert.False(t, d.OutlineReset)
	assert.Equal(t, settings.Default(), d.Settings)

	d = e.LoadDocuments("garbage", "General Settings\n> Description Size: 80")
	assert.True(t, d.OutlineReset)
	assert.Equal(t, outline.DefaultText, d.OutlineText)
	assert.Equal(t, 80, d.Settings.General.DescriptionSize)
	assert.Contains(t, d.SettingsText, "> Description Size: 80 words")
}

func TestBuildContext(t *testing.T) {
	e := newTestEngine(t)
	docs := e.LoadDocuments("", "")

	t.Run("hidden prompt follows the section heading", func(t *testing.T) {
		var st domain.TurnState
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\nTags: Crime\n", Docs: docs})
		require.False(t, res.Abort)
		assert.True(t, strings.HasPrefix(res.Text, "\nOverview\n# Priority Instructions\n"))
		assert.Contains(t, res.Text, "Genre: ${Two or three major categories that best describe the story}")
		assert.True(t, strings.HasSuffix(res.Text, "\nTags: Crime\n"))
		assert.False(t, st.Continuation)
	})

	t.Run("help aborts", func(t *testing.T) {
		st := domain.TurnState{HelpRequested: true}
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\n", Docs: docs})
		assert.True(t, res.Abort)
		assert.Equal(t, AbortPrompt, res.Text)
	})

	t.Run("earlier error aborts", func(t *testing.T) {
		var st domain.TurnState
		st.Record(ErrNameInitialInput, "bad")
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\n", Docs: docs})
		assert.True(t, res.Abort)
	})

	t.Run("completed outline aborts and flags export", func(t *testing.T) {
		small := e.LoadDocuments("Overview\n> Tags: ...", "")
		var st domain.TurnState
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\nTags: Crime\n", Docs: small})
		assert.True(t, res.Complete)
		assert.True(t, res.Abort)
		assert.True(t, st.Complete)
	})

	t.Run("transcript parse error is reported", func(t *testing.T) {
		var st domain.TurnState
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\n: orphan value\n", Docs: docs})
		assert.True(t, res.Abort)
		require.True(t, st.Failed())
		assert.Equal(t, ErrNameContextParsing, st.Errors[0].Name)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		var st domain.TurnState
		res := e.BuildContext(&st, ContextRequest{Transcript: "\nOverview\n"})
		assert.True(t, res.Abort)
		require.True(t, st.Failed())
		assert.Equal(t, ErrNameUncaughtContext, st.Errors[0].Name)
	})
}

func TestFinalizeOutput(t *testing.T) {
	e := newTestEngine(t)
	docs := e.LoadDocuments("", "")

	t.Run("first error wins", func(t *testing.T) {
		var st domain.TurnState
		st.Record(ErrNameInitialInput, "first")
		st.Record(ErrNameContextParsing, "second")
		out := e.FinalizeOutput(&st, OutputRequest{Generated: "ignored", Docs: docs})
		assert.Equal(t, OutputError, out.Kind)
		assert.Equal(t, "// Initial Input Error: first\n", out.Text)
		assert.False(t, out.Kind.AppendsToTranscript())
	})

	t.Run("help", func(t *testing.T) {
		st := domain.TurnState{HelpRequested: true}
		out := e.FinalizeOutput(&st, OutputRequest{Docs: docs})
		assert.Equal(t, OutputHelp, out.Kind)
		assert.Equal(t, HelpText, out.Text)
		assert.False(t, st.HelpRequested)
	})

	t.Run("normalized text", func(t *testing.T) {
		st := domain.TurnState{PendingHeader: "world_info"}
		out := e.FinalizeOutput(&st, OutputRequest{Generated: "World: Earth", Transcript: "\nOverview\nTags: Crime\n", Docs: docs})
		assert.Equal(t, OutputText, out.Kind)
		assert.Equal(t, "\nWorld Info\nWorld: Earth\n", out.Text)
		assert.Empty(t, st.PendingHeader)
		assert.True(t, out.Kind.AppendsToTranscript())
	})

	t.Run("single-word values", func(t *testing.T) {
		st := domain.TurnState{PendingHeader: "protagonist"}
		out := e.FinalizeOutput(&st, OutputRequest{Generated: "Name: Alice Smith\nGender: Female", Transcript: "x\n", Docs: docs})
		require.False(t, st.Failed())
		assert.Equal(t, OutputText, out.Kind)
		assert.Equal(t, "\nProtagonist\nName: Alice Smith\nGender: Female\n", out.Text)
	})

	t.Run("last field adds the completion notice", func(t *testing.T) {
		small := e.LoadDocuments("Overview\n> Tags: ...\n> Genre: ...", "")
		var st domain.TurnState
		out := e.FinalizeOutput(&st, OutputRequest{Generated: "Genre: Drama", Transcript: "\nOverview\nTags: Crime\n", Docs: small})
		assert.Equal(t, OutputComplete, out.Kind)
		assert.Equal(t, "Genre: Drama\n"+CompletionNotice, out.Text)
	})

	t.Run("completed outline exports", func(t *testing.T) {
		st := domain.TurnState{Complete: true}
		out := e.FinalizeOutput(&st, OutputRequest{Transcript: "\nOverview\nTags: Crime\n", Docs: docs})
		assert.Equal(t, OutputExport, out.Kind)
		assert.True(t, strings.HasPrefix(out.Text, "\n{\n    \"story_bible\""))
		assert.False(t, st.Complete)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		var st domain.TurnState
		out := e.FinalizeOutput(&st, OutputRequest{Generated: "Tags: x", Transcript: "\n"})
		assert.Equal(t, OutputError, out.Kind)
		assert.True(t, strings.HasPrefix(out.Text, "// "+ErrNameUncaughtOutput+": "))
	})
}

func TestExportStoryBible(t *testing.T) {
	transcript := "Story Request: a heist\n\nOverview\nTags: Crime, Noir\nGenre: <Noir> & more\n// a comment\n"

	got, err := ExportStoryBible(transcript, transcript, settings.Default())
	require.NoError(t, err)
	assert.Equal(t, `{
    "story_bible": {
        "overview": {
            "tags": "Crime, Noir",
            "genre": "<Noir> & more"
        }
    }
}`, got)

	s := settings.Default()
	s.General.IncludeStoryRequestInJSON = true
	got, err = ExportStoryBible(transcript, transcript, s)
	require.NoError(t, err)
	assert.Contains(t, got, "\"overview\": {\n            \"story_request\": \"a heist\",\n            \"tags\"")

	got, err = ExportStoryBible(transcript, "no request here", s)
	require.NoError(t, err)
	assert.NotContains(t, got, "story_request")
}

func TestErrorText_Empty(t *testing.T) {
	assert.Empty(t, newTestEngine(t).ErrorText(&domain.TurnState{}))
}
