package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/musenotes/muse/pkg/core"
)

// NoNotesResult is returned when a search is issued against an empty
// snapshot, without invoking the model.
const NoNotesResult = "You haven't written any notes yet."

// Assistant answers questions about a note collection through the
// generative capability, caching answers per collection fingerprint.
// Cached entries are reused within the same calendar day as long as the
// key material (note IDs, query, user name) still matches exactly.
type Assistant struct {
	gen    core.Generator
	cache  *cacheStore
	now    func() time.Time
	logger *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant)

// WithClock overrides the time source. Useful for testing day-boundary
// invalidation.
func WithClock(now func() time.Time) AssistantOption {
	return func(a *Assistant) {
		a.now = now
	}
}

// WithLogger sets the logger for the assistant.
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(a *Assistant) {
		a.logger = logger
	}
}

// NewAssistant wires an Assistant. The storage collaborator may be shared
// with other components; the assistant owns its own key namespaces.
func NewAssistant(gen core.Generator, storage core.Storage, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		gen:    gen,
		cache:  &cacheStore{storage: storage},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Welcome returns a greeting for userName, cached per user per day.
// A capability failure degrades to a templated fallback; a greeting is
// decorative and never worth surfacing an error for.
func (a *Assistant) Welcome(ctx context.Context, userName string) string {
	now := a.now()
	if e := a.cache.getWelcome(ctx); e != nil && sameDay(e.Timestamp, now) && e.UserName == userName {
		return e.Message
	}

	text, err := a.gen.Generate(ctx, WelcomePrompt(userName))
	if err != nil {
		a.logger.Warn("welcome generation failed, using fallback", "error", err)
		return fmt.Sprintf("Hi %s, hope you're having a good day", userName)
	}

	message := strings.TrimSpace(text)
	a.put(ctx, "welcome", func() error {
		return a.cache.putWelcome(ctx, welcomeEntry{
			Message:   message,
			UserName:  userName,
			Timestamp: now.UnixMilli(),
		})
	})
	return message
}

// Topics returns up to three search suggestions derived from the
// snapshot, cached per collection fingerprint per day. An empty snapshot
// or a capability failure yields an empty list.
func (a *Assistant) Topics(ctx context.Context, notes []core.Note) []string {
	if len(notes) == 0 {
		return nil
	}

	now := a.now()
	ids := noteIDs(notes)
	if e := a.cache.getSuggestions(ctx); e != nil && sameDay(e.Timestamp, now) && sameIDSet(e.NoteIDs, ids) {
		return e.Suggestions
	}

	text, err := a.gen.Generate(ctx, TopicsPrompt(notes, now))
	if err != nil {
		a.logger.Warn("topic suggestions failed", "error", err)
		return nil
	}

	suggestions := ParseList(text)
	a.put(ctx, "suggestions", func() error {
		return a.cache.putSuggestions(ctx, suggestionsEntry{
			Suggestions: suggestions,
			NoteIDs:     ids,
			Timestamp:   now.UnixMilli(),
		})
	})
	return suggestions
}

// Search answers query from the snapshot. Results are kept in a bounded
// history; a fresh entry with the exact same query (case-sensitive, not
// trimmed) and note set is returned without a model call. Capability
// failures propagate: a failed search is a visible, actionable state.
func (a *Assistant) Search(ctx context.Context, notes []core.Note, query string) (string, error) {
	if len(notes) == 0 {
		return NoNotesResult, nil
	}

	now := a.now()
	ids := noteIDs(notes)
	for _, e := range a.cache.allSearches(ctx) {
		if sameDay(e.Timestamp, now) && e.Query == query && sameIDSet(e.NoteIDs, ids) {
			return e.Result, nil
		}
	}

	text, err := a.gen.Generate(ctx, SearchPrompt(notes, query, now))
	if err != nil {
		return "", fmt.Errorf("search notes: %w", err)
	}

	result := strings.TrimSpace(text)
	a.put(ctx, "search", func() error {
		return a.cache.appendSearch(ctx, searchEntry{
			Result:    result,
			Query:     query,
			NoteIDs:   ids,
			Timestamp: now.UnixMilli(),
		})
	})
	return result, nil
}

// SmartSuggestions returns follow-up questions derived from a previous
// answer. Never cached: the previous answer already varies per day. A
// capability failure degrades to an empty list.
func (a *Assistant) SmartSuggestions(ctx context.Context, previousAnswer string) []string {
	text, err := a.gen.Generate(ctx, SmartSuggestionsPrompt(previousAnswer))
	if err != nil {
		a.logger.Warn("smart suggestions failed", "error", err)
		return nil
	}
	return ParseList(text)
}

// FollowUp answers question using previousAnswer as conversational
// context, extracting location references from the sectioned response.
// Capability failures propagate.
func (a *Assistant) FollowUp(ctx context.Context, previousAnswer, question string) (string, []core.LocationReference, error) {
	text, err := a.gen.Generate(ctx, FollowUpPrompt(previousAnswer, question))
	if err != nil {
		return "", nil, fmt.Errorf("follow-up answer: %w", err)
	}
	answer, locations := ParseSectioned(text)
	return answer, locations, nil
}

// Bootstrap issues the app-start fetches. Welcome and topics are
// independent, so they run concurrently; both degrade internally and
// never error.
func (a *Assistant) Bootstrap(ctx context.Context, userName string, notes []core.Note) (welcome string, topics []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		welcome = a.Welcome(ctx, userName)
		return nil
	})
	g.Go(func() error {
		topics = a.Topics(ctx, notes)
		return nil
	})
	_ = g.Wait()
	return welcome, topics
}

// put runs a cache write and swallows its error. Caching is an
// optimization: a failed write must never block the value already
// computed for the caller.
func (a *Assistant) put(ctx context.Context, class string, fn func() error) {
	if err := fn(); err != nil {
		a.logger.Warn("cache write failed", "class", class, "error", err)
	}
}
