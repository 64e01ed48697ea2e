// Package providers implements the CLI-backed language-model provider:
// prompt construction from conversation history, subprocess invocation
// of the external agent, and sanitization of its output.
package providers

import "context"

// ChatMessage is one turn of conversation history. Recognized roles are
// "system", "user" and "assistant"; anything else is dropped during
// prompt construction.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the interface the surrounding application consumes. Both
// operations block until the backend produces its full response.
type Provider interface {
	// ChatWithSystem runs a single turn: an optional system prompt plus
	// one user message.
	ChatWithSystem(ctx context.Context, system, message string) (string, error)

	// ChatWithHistory runs a turn over an ordered conversation history,
	// compacted to the provider's prompt budget.
	ChatWithHistory(ctx context.Context, messages []ChatMessage) (string, error)
}
