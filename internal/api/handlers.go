package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/scenariogen/internal/service"
)

// Handler exposes the scenario service over HTTP.
type Handler struct {
	scenarios service.ScenarioService
}

func NewHandler(scenarios service.ScenarioService) *Handler {
	return &Handler{scenarios: scenarios}
}

type createSessionRequest struct {
	Title        string `json:"title"`
	StoryRequest string `json:"story_request"`
	Tags         string `json:"tags"`
}

type textRequest struct {
	Text string `json:"text"`
}

type turnRequest struct {
	Input string `json:"input"`
}

type settingRequest struct {
	Value string `json:"value" binding:"required"`
}

// CreateSession stores a new session without playing its opening turn.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	sess, err := h.scenarios.Create(c.Request.Context(), service.StartRequest{
		Title:        req.Title,
		StoryRequest: req.StoryRequest,
		Tags:         req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionView(sess))
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.scenarios.ListSessions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, newSessionView(s))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": views})
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.scenarios.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(sess))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.scenarios.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitInput runs the input phase. The returned text is what the host
// appends to its transcript.
func (h *Handler) SubmitInput(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.scenarios.SubmitInput(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": newSessionView(res.Session),
		"text":    res.Text,
	})
}

func (h *Handler) BuildContext(c *gin.Context) {
	res, err := h.scenarios.BuildContext(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newContextView(*res))
}

func (h *Handler) SubmitOutput(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.scenarios.SubmitOutput(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOutputView(*out))
}

// PlayTurn runs a whole turn, generation included. An empty body is a plain
// continue.
func (h *Handler) PlayTurn(c *gin.Context) {
	var req turnRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	res, err := h.scenarios.PlayTurn(c.Request.Context(), c.Param("id"), req.Input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTurnView(res))
}

func (h *Handler) Transcript(c *gin.Context) {
	text, err := h.scenarios.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Export returns the story bible as the raw JSON document.
func (h *Handler) Export(c *gin.Context) {
	bible, err := h.scenarios.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(bible))
}

func (h *Handler) Outline(c *gin.Context) {
	res, err := h.scenarios.Outline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outlineView{cardView: newCardView(res.Card), Reset: res.Reset})
}

func (h *Handler) UpdateOutline(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.scenarios.UpdateOutline(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outlineView{cardView: newCardView(res.Card), Reset: res.Reset})
}

func (h *Handler) ResetOutline(c *gin.Context) {
	res, err := h.scenarios.ResetOutline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outlineView{cardView: newCardView(res.Card), Reset: res.Reset})
}

func (h *Handler) Settings(c *gin.Context) {
	res, err := h.scenarios.Settings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSettingsView(res))
}

// UpdateSetting sets one dotted key such as "seed_word_settings.seed_word_count".
func (h *Handler) UpdateSetting(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.scenarios.UpdateSetting(c.Request.Context(), c.Param("id"), c.Param("key"), req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSettingsView(res))
}
