package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/scenariogen/internal/llm"
	"github.com/alexanderramin/scenariogen/internal/repository"
	"github.com/alexanderramin/scenariogen/internal/service"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

// APIError is the body of every failed request.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{Message: msg, Code: code},
	})
}

// respondServiceError maps service and store errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrAmbiguousPrefix):
		respondError(c, http.StatusConflict, "ambiguous_id", err)
	case errors.Is(err, settings.ErrInvalidSetting):
		respondError(c, http.StatusBadRequest, "invalid_setting", err)
	case errors.Is(err, service.ErrNoGenerator):
		respondError(c, http.StatusServiceUnavailable, "no_generator", err)
	case errors.Is(err, llm.ErrTimeout):
		respondError(c, http.StatusGatewayTimeout, "generator_timeout", err)
	case errors.Is(err, llm.ErrUnavailable), errors.Is(err, llm.ErrRetryExhausted), errors.Is(err, llm.ErrEmptyOutput):
		respondError(c, http.StatusBadGateway, "generator_failed", err)
	default:
		respondError(c, http.StatusInternalServerError, "internal", err)
	}
}
