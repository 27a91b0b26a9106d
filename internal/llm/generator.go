package llm

import (
	"context"
)

// TurnSystemPrompt tells a chat model to behave like a text continuation
// model, which is what the hidden prompt inside the transcript expects.
const TurnSystemPrompt = `You are continuing a document. The user message is the document so far; it contains an instruction block followed by the text to continue. Reply with only the text that comes next, in the same line-based "Field: value" format, without commentary or code fences.`

// TextGenerator continues session transcripts with an LLMClient.
type TextGenerator struct {
	client LLMClient
	system string
}

// NewTextGenerator creates a TextGenerator using TurnSystemPrompt.
func NewTextGenerator(client LLMClient) *TextGenerator {
	return &TextGenerator{client: client, system: TurnSystemPrompt}
}

// Generate returns the text that follows prompt.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:         TaskTurn,
		SystemPrompt: g.system,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
