package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/product-compare/internal/catalog"
	"github.com/ahmednasr/product-compare/internal/conversation"
	"github.com/ahmednasr/product-compare/internal/models"
)

type fakeInferrer struct {
	mu      sync.Mutex
	prompts []string
	answer  string
}

func (f *fakeInferrer) Infer(ctx context.Context, prompt string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

func (f *fakeInferrer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func newTestService(products []models.Product, inf Inferrer) (ChatService, *conversation.Store) {
	store := conversation.NewStore(products)
	return NewChatService(store, inf), store
}

func TestSubmitAppendsTwoMessagesPerTurn(t *testing.T) {
	inf := &fakeInferrer{answer: "ok"}
	svc, store := newTestService(catalog.Sample(), inf)
	initial := store.Len()

	for n := 1; n <= 4; n++ {
		reply, err := svc.Submit(context.Background(), "question")
		require.NoError(t, err)
		require.Equal(t, models.Message{Role: models.RoleAssistant, Content: "ok"}, reply)
		require.Equal(t, initial+2*n, store.Len())
	}
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	inf := &fakeInferrer{answer: "ok"}
	svc, store := newTestService(catalog.Sample(), inf)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), text)
		require.ErrorIs(t, err, ErrEmptyMessage)
	}
	require.Equal(t, 1, store.Len())
	require.Zero(t, inf.calls())
}

func TestSubmitPromptUsesHistoryBeforeTurn(t *testing.T) {
	inf := &fakeInferrer{answer: "The SuperPhone X has a better camera."}
	svc, _ := newTestService(catalog.Sample(), inf)

	_, err := svc.Submit(context.Background(), "Which smartphone has the best camera?")
	require.NoError(t, err)

	p := inf.prompts[0]
	assert.Contains(t, p, "Previous conversation:\nAssistant: "+conversation.Greeting+"\n\nUser: Which smartphone has the best camera?\n\nAssistant:")
	assert.Equal(t, 1, strings.Count(p, "User: Which smartphone"))
	assert.Contains(t, p, "Product: SuperPhone X")
	assert.Contains(t, p, "Product: UltraPhone 12")
}

func TestSubmitNarrowsAvailableProducts(t *testing.T) {
	products := append(catalog.Sample(), models.Product{ID: "tv1", Name: "VisionTV 55", Category: "tv", Price: 549})
	inf := &fakeInferrer{answer: "ok"}
	svc, _ := newTestService(products, inf)

	_, err := svc.Submit(context.Background(), "Which TV fits a small room?")
	require.NoError(t, err)

	require.Len(t, svc.AvailableProducts(), 1)
	assert.Equal(t, "tv1", svc.AvailableProducts()[0].ID)
	assert.Contains(t, inf.prompts[0], "Product: VisionTV 55")
	assert.NotContains(t, inf.prompts[0], "Product: SuperPhone X")
	assert.Len(t, svc.Catalog(), 3)
}

func TestSubmitLaptopFallsBackToFullCatalog(t *testing.T) {
	svc, _ := newTestService(catalog.Sample(), &fakeInferrer{answer: "ok"})

	_, err := svc.Submit(context.Background(), "Any good LAPTOP deals?")
	require.NoError(t, err)
	require.Equal(t, catalog.Sample(), svc.AvailableProducts())
}

type blockingInferrer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingInferrer) Infer(ctx context.Context, prompt string) string {
	close(b.started)
	<-b.release
	return "done"
}

func TestSubmitRejectsOverlappingTurns(t *testing.T) {
	inf := &blockingInferrer{started: make(chan struct{}), release: make(chan struct{})}
	svc, store := newTestService(catalog.Sample(), inf)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "first")
		errc <- err
	}()

	select {
	case <-inf.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first turn never reached inference")
	}

	_, err := svc.Submit(context.Background(), "second")
	require.ErrorIs(t, err, ErrTurnInFlight)
	require.Equal(t, 2, store.Len())

	close(inf.release)
	require.NoError(t, <-errc)
	require.Equal(t, 3, store.Len())
}

func TestSubmitWithFailingBackendAppendsFallback(t *testing.T) {
	store := conversation.NewStore(catalog.Sample())
	inf := NewInference(llmFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", context.DeadlineExceeded
	}), store, time.Second)
	svc := NewChatService(store, inf)

	reply, err := svc.Submit(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, FallbackAnswer, reply.Content)
	require.False(t, svc.Transcript().Loading)
	require.Len(t, svc.Transcript().Messages, 3)
}

func TestResetStartsOver(t *testing.T) {
	svc, _ := newTestService(catalog.Sample(), &fakeInferrer{answer: "ok"})
	_, err := svc.Submit(context.Background(), "hi")
	require.NoError(t, err)

	svc.Reset()
	require.Len(t, svc.Transcript().Messages, 1)
}
