package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// Implementations must open a new chat session on every call so that no
// conversational context leaks between prompts.
type LLMProvider interface {
	// Send submits prompt as the first turn of a fresh session and returns
	// the model's text reply.
	Send(ctx context.Context, prompt string) (string, error)
}
