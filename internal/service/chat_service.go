package service

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ahmednasr/product-compare/internal/catalog"
	"github.com/ahmednasr/product-compare/internal/conversation"
	"github.com/ahmednasr/product-compare/internal/models"
	"github.com/ahmednasr/product-compare/internal/prompt"
)

var (
	// ErrEmptyMessage is returned for blank submissions; nothing is recorded.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrTurnInFlight is returned while a previous message is still being answered.
	ErrTurnInFlight = errors.New("a previous message is still being answered")
)

// ChatService runs one request/response cycle per user message.
type ChatService interface {
	// Submit records text, asks the model and returns the assistant message.
	Submit(ctx context.Context, text string) (models.Message, error)
	Transcript() models.TranscriptResponse
	AvailableProducts() []models.Product
	Catalog() []models.Product
	Reset()
}

// Inferrer turns a prompt into an answer without failing.
type Inferrer interface {
	Infer(ctx context.Context, prompt string) string
}

type chatService struct {
	store     *conversation.Store
	inference Inferrer
	turn      sync.Mutex
}

// NewChatService wires dependencies and returns ChatService. It subscribes the
// category detector to the store so the available products follow the latest
// user message.
func NewChatService(store *conversation.Store, inference Inferrer) ChatService {
	s := &chatService{store: store, inference: inference}
	store.Subscribe(s.detectCategory)
	return s
}

func (s *chatService) Submit(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyMessage
	}
	if !s.turn.TryLock() {
		return models.Message{}, ErrTurnInFlight
	}
	defer s.turn.Unlock()

	history := s.store.Messages()
	s.store.Append(models.RoleUser, text)

	p := prompt.Build(s.store.Available(), history, text)
	answer := s.inference.Infer(ctx, p)

	return s.store.Append(models.RoleAssistant, answer), nil
}

func (s *chatService) Transcript() models.TranscriptResponse {
	return models.TranscriptResponse{
		Messages: s.store.Messages(),
		Loading:  s.store.Loading(),
	}
}

func (s *chatService) AvailableProducts() []models.Product {
	return s.store.Available()
}

func (s *chatService) Catalog() []models.Product {
	return s.store.Catalog()
}

func (s *chatService) Reset() {
	s.turn.Lock()
	defer s.turn.Unlock()
	s.store.Reset()
	log.Info().Msg("conversation reset")
}

// detectCategory runs after every store append.
func (s *chatService) detectCategory(messages []models.Message) {
	available := catalog.Available(s.store.Catalog(), messages)
	s.store.SetAvailable(available)
	log.Debug().Int("available", len(available)).Msg("available products updated")
}
