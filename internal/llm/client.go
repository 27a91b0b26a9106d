package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the model server is reachable.
	Available(ctx context.Context) bool
}

// openAIClient implements LLMClient against any OpenAI-compatible chat
// completions API.
type openAIClient struct {
	cfg      LLMConfig
	api      *openai.Client
	observer Observer
}

// NewOpenAIClient creates an LLMClient for the endpoint in cfg.
func NewOpenAIClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimRight(cfg.Endpoint, "/")
	apiCfg.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
	return &openAIClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(apiCfg),
		observer: observer,
	}
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})
	body := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: float32(temp),
		MaxTokens:   maxTok,
	}

	timeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond
	attempts := 1 + c.cfg.MaxRetries

	var lastErr error
	var tried int
	for tried < attempts {
		tried++
		resp, err := c.doRequest(ctx, body, timeout)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Attempts:  tried,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      resp.Choices[0].Message.Content,
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// The caller gave up; a retry cannot succeed.
		if ctx.Err() != nil {
			break
		}
		// Rejected requests fail the same way every time.
		if isClientError(err) {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  tried,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

// doRequest runs one attempt under its own timeout.
func (c *openAIClient) doRequest(ctx context.Context, body openai.ChatCompletionRequest, timeout time.Duration) (*openai.ChatCompletionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyOutput
	}
	return &resp, nil
}

func (c *openAIClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := c.api.ListModels(ctx)
	return err == nil
}

// classify maps the last attempt's error onto the package's sentinel errors.
func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, ErrEmptyOutput):
		return err
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func isClientError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 && apiErr.HTTPStatusCode != http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 400 && reqErr.HTTPStatusCode < 500 && reqErr.HTTPStatusCode != http.StatusTooManyRequests
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyOutput):
		return "EMPTY_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
