package service

import (
	"context"
	"strings"

	"github.com/ahmednasr/product-compare/internal/prompt"
)

// LLM defines the interface for language model interactions
type LLM interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// ExtractAnswer strips an echoed prompt from a completion. When text contains
// the assistant cue only what follows its last occurrence is kept; if that is
// blank, or the cue is absent, text is returned unchanged.
func ExtractAnswer(text string) string {
	idx := strings.LastIndex(text, prompt.AssistantCue)
	if idx < 0 {
		return text
	}
	if answer := strings.TrimSpace(text[idx+len(prompt.AssistantCue):]); answer != "" {
		return answer
	}
	return text
}
