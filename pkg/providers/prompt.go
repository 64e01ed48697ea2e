package providers

import (
	"strings"
	"unicode/utf8"
)

// PromptBudget bounds the prompt built from conversation history.
// Explicit configuration, never process-global, so tests can vary it.
type PromptBudget struct {
	// MaxPromptChars is the byte ceiling for the built prompt.
	MaxPromptChars int
	// MaxHistoryTurns is how many of the most recent user/assistant
	// turns survive compaction.
	MaxHistoryTurns int
}

// PromptBuilder renders an ordered conversation history into a single
// prompt string for a non-chat CLI backend.
//
// SystemAnchor handles backends that inject their own system prompt:
// when set, a system message contributes only the sub-block starting at
// the anchor header (typically the tool-use protocol section), since
// everything before it would duplicate instructions the backend already
// has. A system message without the anchor contributes nothing. When
// SystemAnchor is empty, system messages are copied in full.
type PromptBuilder struct {
	Budget       PromptBudget
	SystemAnchor string
}

// Build renders history into one prompt. Unrecognized roles are dropped.
// If more parts accumulate than MaxHistoryTurns+1, the first part (the
// system contribution) is preserved and only the most recent
// MaxHistoryTurns parts are kept after it: intermediate history is
// dropped oldest-first, there is no summarization. The joined result is
// cut at a rune boundary to fit MaxPromptChars.
func (b PromptBuilder) Build(history []ChatMessage) string {
	var parts []string

	for _, msg := range history {
		switch msg.Role {
		case "system":
			if part, ok := b.systemPart(msg.Content); ok {
				parts = append(parts, part)
			}
		case "user":
			parts = append(parts, "User: "+msg.Content)
		case "assistant":
			parts = append(parts, "Assistant: "+msg.Content)
		}
	}

	if b.Budget.MaxHistoryTurns > 0 && len(parts) > b.Budget.MaxHistoryTurns+1 {
		head := parts[0]
		tail := parts[len(parts)-b.Budget.MaxHistoryTurns:]
		parts = append([]string{head}, tail...)
	}

	prompt := strings.Join(parts, "\n\n")
	if b.Budget.MaxPromptChars > 0 {
		prompt = truncateAtRuneBoundary(prompt, b.Budget.MaxPromptChars)
	}
	return prompt
}

func (b PromptBuilder) systemPart(content string) (string, bool) {
	if b.SystemAnchor == "" {
		return "System: " + content, true
	}
	idx := strings.Index(content, b.SystemAnchor)
	if idx < 0 {
		return "", false
	}
	return content[idx:], true
}

// truncateAtRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte character.
func truncateAtRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
