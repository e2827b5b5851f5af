package muse

import (
	"log/slog"
	"time"

	"github.com/musenotes/muse/internal/platform"
	"github.com/musenotes/muse/pkg/assist"
	"github.com/musenotes/muse/pkg/core"
)

// --- Types ---

// Note is the unit of knowledge the assistant reads.
type Note = core.Note

// Card is one question/answer unit within a conversation.
type Card = core.Card

// CardState tracks the lifecycle of a Card.
type CardState = core.CardState

// LocationReference is a place extracted from a follow-up answer.
type LocationReference = core.LocationReference

// Assistant is the cached question-answering service.
type Assistant = assist.Assistant

// Conversation is the follow-up card sequence.
type Conversation = assist.Conversation

// Generator is the generative-text capability port.
type Generator = core.Generator

// Storage is the persistent key/value port.
type Storage = core.Storage

// NoteSource supplies note snapshots.
type NoteSource = core.NoteSource

// --- Configuration ---

// Option defines a functional option for configuring Muse.
type Option = platform.Option

// WithStorage injects a custom cache storage.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithGenerator injects a custom generative capability.
func WithGenerator(g core.Generator) Option {
	return platform.WithGenerator(g)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithCachePath enables the durable SQLite cache at the given path.
func WithCachePath(path string) Option {
	return platform.WithCachePath(path)
}

// WithAPIKey sets the Gemini API key.
func WithAPIKey(key string) Option {
	return platform.WithAPIKey(key)
}

// --- Factory ---

// New creates a new Muse Assistant.
func New(opts ...Option) (*assist.Assistant, error) {
	return platform.New(opts...)
}

// NewConversation starts a conversation from the initial query/answer
// pair produced by a search.
func NewConversation(a *Assistant, query, answer string, locations []LocationReference) *Conversation {
	return assist.NewConversation(a, query, answer, locations)
}
