package service

import (
	"context"
	"strings"

	"github.com/ahmednasr/product-compare/internal/prompt"
)

// EchoLLM is an offline stand-in that behaves like an endpoint echoing its
// prompt before the continuation.
type EchoLLM struct {
	Reply string
}

// NewEchoLLM returns an EchoLLM with a canned reply.
func NewEchoLLM() *EchoLLM {
	return &EchoLLM{Reply: "I'm running in offline mode, so I can only restate the catalog above. " +
		"Tell me which features matter most to you and I'll point at the matching products."}
}

func (e *EchoLLM) GenerateResponse(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(p)
	if !strings.HasSuffix(p, prompt.AssistantCue) {
		sb.WriteString("\n\n" + prompt.AssistantCue)
	}
	sb.WriteString(" ")
	sb.WriteString(e.Reply)
	return sb.String(), nil
}
