package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type llmFunc func(ctx context.Context, prompt string) (string, error)

func (f llmFunc) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type recordingIndicator struct {
	states []bool
}

func (r *recordingIndicator) SetLoading(loading bool) { r.states = append(r.states, loading) }

func TestInferSuccess(t *testing.T) {
	ind := &recordingIndicator{}
	inf := NewInference(llmFunc(func(ctx context.Context, prompt string) (string, error) {
		return prompt + " The SuperPhone X has a better camera.", nil
	}), ind, time.Second)

	got := inf.Infer(context.Background(), "...context...Assistant:")
	assert.Equal(t, "The SuperPhone X has a better camera.", got)
	assert.Equal(t, []bool{true, false}, ind.states)
}

func TestInferFallbackOnError(t *testing.T) {
	ind := &recordingIndicator{}
	inf := NewInference(llmFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("network down")
	}), ind, time.Second)

	got := inf.Infer(context.Background(), "p")
	assert.Equal(t, FallbackAnswer, got)
	assert.Equal(t, "Sorry, I encountered an error processing your request. Please try again.", got)
	assert.Equal(t, []bool{true, false}, ind.states)
}

func TestInferResetsLoadingOnPanic(t *testing.T) {
	ind := &recordingIndicator{}
	inf := NewInference(llmFunc(func(ctx context.Context, prompt string) (string, error) {
		panic("boom")
	}), ind, 0)

	require.Panics(t, func() { inf.Infer(context.Background(), "p") })
	assert.Equal(t, []bool{true, false}, ind.states)
}

func TestInferAppliesTimeout(t *testing.T) {
	inf := NewInference(llmFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), &recordingIndicator{}, 20*time.Millisecond)

	done := make(chan string, 1)
	go func() { done <- inf.Infer(context.Background(), "p") }()

	select {
	case got := <-done:
		assert.Equal(t, FallbackAnswer, got)
	case <-time.After(2 * time.Second):
		t.Fatal("inference did not time out")
	}
}
