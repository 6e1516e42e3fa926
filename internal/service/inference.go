package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// FallbackAnswer replaces the model output whenever a call fails.
const FallbackAnswer = "Sorry, I encountered an error processing your request. Please try again."

// LoadingIndicator receives the busy state around each call.
type LoadingIndicator interface {
	SetLoading(loading bool)
}

// Inference issues one completion per prompt and never fails the caller.
type Inference struct {
	llm       LLM
	indicator LoadingIndicator
	timeout   time.Duration
}

// NewInference wires the backend. timeout <= 0 leaves calls bounded only by ctx.
func NewInference(llm LLM, indicator LoadingIndicator, timeout time.Duration) *Inference {
	return &Inference{llm: llm, indicator: indicator, timeout: timeout}
}

// Infer returns the extracted answer, or FallbackAnswer on any error.
// The loading flag is raised for the duration of the call.
func (i *Inference) Infer(ctx context.Context, prompt string) string {
	i.indicator.SetLoading(true)
	defer i.indicator.SetLoading(false)

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := i.llm.GenerateResponse(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("inference call failed")
		return FallbackAnswer
	}

	answer := ExtractAnswer(text)
	log.Debug().
		Int("prompt_len", len(prompt)).
		Int("answer_len", len(answer)).
		Dur("elapsed", time.Since(start)).
		Msg("inference call completed")
	return answer
}
