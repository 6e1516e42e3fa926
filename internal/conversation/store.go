// Package conversation keeps the transcript of the single chat session along
// with the in-flight flag and the product subset currently in scope.
package conversation

import (
	"sync"

	"github.com/ahmednasr/product-compare/internal/models"
)

// Greeting opens every conversation.
const Greeting = "Hello! I can help you compare products. What types of products are you interested in comparing?"

// Listener is notified with a snapshot of the transcript after each append.
type Listener func(messages []models.Message)

// Store is an append-only transcript. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	messages  []models.Message
	loading   bool
	catalog   []models.Product
	available []models.Product
	listeners []Listener
}

// NewStore returns a store seeded with the greeting; every product in catalog starts out available.
func NewStore(catalog []models.Product) *Store {
	s := &Store{catalog: catalog}
	s.reset()
	return s
}

// Append adds a message and notifies listeners outside the lock.
func (s *Store) Append(role models.Role, content string) models.Message {
	msg := models.Message{Role: role, Content: content}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	snapshot := cloneMessages(s.messages)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
	return msg
}

// Messages returns a copy of the transcript.
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMessages(s.messages)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// LastUserMessage returns the content of the most recent user entry.
func (s *Store) LastUserMessage() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == models.RoleUser {
			return s.messages[i].Content, true
		}
	}
	return "", false
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Catalog returns the full product list the store was created with.
func (s *Store) Catalog() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.catalog...)
}

// Available returns the products currently in scope.
func (s *Store) Available() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.available...)
}

func (s *Store) SetAvailable(products []models.Product) {
	s.mu.Lock()
	s.available = append([]models.Product(nil), products...)
	s.mu.Unlock()
}

// Subscribe registers l for every subsequent append.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Reset discards the transcript and starts over from the greeting.
// Listeners stay registered.
func (s *Store) Reset() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
}

func (s *Store) reset() {
	s.messages = []models.Message{{Role: models.RoleAssistant, Content: Greeting}}
	s.loading = false
	s.available = append([]models.Product(nil), s.catalog...)
}

func cloneMessages(in []models.Message) []models.Message {
	return append([]models.Message(nil), in...)
}
