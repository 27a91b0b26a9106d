package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/service"
)

// ModelChecker reports whether the model server answers.
type ModelChecker interface {
	Available(ctx context.Context) bool
}

// NewRouter builds the HTTP surface over the scenario service. model may be
// nil when no generator is configured.
func NewRouter(scenarios service.ScenarioService, model ModelChecker, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log.Named("http")))

	r.GET("/health", health(model))

	h := NewHandler(scenarios)
	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)

		sessions.POST("/:id/input", h.SubmitInput)
		sessions.POST("/:id/context", h.BuildContext)
		sessions.POST("/:id/output", h.SubmitOutput)
		sessions.POST("/:id/turn", h.PlayTurn)

		sessions.GET("/:id/transcript", h.Transcript)
		sessions.GET("/:id/export", h.Export)

		sessions.GET("/:id/outline", h.Outline)
		sessions.PUT("/:id/outline", h.UpdateOutline)
		sessions.DELETE("/:id/outline", h.ResetOutline)

		sessions.GET("/:id/settings", h.Settings)
		sessions.PUT("/:id/settings/:key", h.UpdateSetting)
	}
	return r
}

// health always answers 200: sessions stay usable through the phase
// endpoints when the model is down.
func health(model ModelChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := "disabled"
		if model != nil {
			state = "unreachable"
			if model.Available(c.Request.Context()) {
				state = "available"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model": state})
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= 500 {
			log.Error("http_request", fields...)
			return
		}
		log.Info("http_request", fields...)
	}
}
