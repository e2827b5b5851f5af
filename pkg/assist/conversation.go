package assist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/musenotes/muse/pkg/core"
)

// Conversation is an ordered, append-only sequence of question/answer
// cards. Only the latest card advances; cards are never deleted
// individually. A new top-level query means a new Conversation.
//
// In-flight work is never cancelled; a result always lands in the
// conversation it was issued for. Callers that switch to a new
// conversation use ID to discard results from the abandoned one.
type Conversation struct {
	id        string
	assistant *Assistant

	mu    sync.Mutex
	cards []core.Card
}

// NewConversation starts a conversation from the initial query/answer
// pair. An empty answer leaves the first card pending until Resolve
// supplies one.
func NewConversation(assistant *Assistant, query, answer string, locations []core.LocationReference) *Conversation {
	card := core.Card{Question: query, State: core.CardPending}
	if answer != "" {
		card.Answer = answer
		card.Locations = locations
		card.State = core.CardAnswered
	}
	return &Conversation{
		id:        uuid.NewString(),
		assistant: assistant,
		cards:     []core.Card{card},
	}
}

// ID identifies this conversation instance.
func (c *Conversation) ID() string { return c.id }

// Begin loads smart suggestions for the first card if it already has an
// answer. A no-op while the card is still pending.
func (c *Conversation) Begin(ctx context.Context) {
	c.mu.Lock()
	last := len(c.cards) - 1
	if c.cards[last].State != core.CardAnswered {
		c.mu.Unlock()
		return
	}
	answer := c.cards[last].Answer
	c.mu.Unlock()

	c.loadSuggestions(ctx, last, answer)
}

// Resolve supplies the externally fetched answer for a pending latest
// card, then loads its suggestions.
func (c *Conversation) Resolve(ctx context.Context, answer string, locations []core.LocationReference) error {
	c.mu.Lock()
	last := len(c.cards) - 1
	if c.cards[last].State != core.CardPending {
		c.mu.Unlock()
		return core.ErrNoPendingCard
	}
	c.cards[last].Answer = answer
	c.cards[last].Locations = locations
	c.cards[last].State = core.CardAnswered
	c.mu.Unlock()

	c.loadSuggestions(ctx, last, answer)
	return nil
}

// Ask appends a new pending card for the selected suggestion, fetches its
// answer using the previous card's answer as conversational context, then
// loads its suggestions. A failed fetch leaves the new card pending and
// returns the error: an unanswered question is a visible, actionable
// state.
func (c *Conversation) Ask(ctx context.Context, question string) (core.Card, error) {
	c.mu.Lock()
	last := len(c.cards) - 1
	prev := c.cards[last]
	if prev.State == core.CardPending {
		c.mu.Unlock()
		return core.Card{}, core.ErrUnansweredCard
	}
	c.cards = append(c.cards, core.Card{Question: question, State: core.CardPending})
	i := last + 1
	c.mu.Unlock()

	answer, locations, err := c.assistant.FollowUp(ctx, prev.Answer, question)
	if err != nil {
		return core.Card{}, err
	}

	c.mu.Lock()
	c.cards[i].Answer = answer
	c.cards[i].Locations = locations
	c.cards[i].State = core.CardAnswered
	c.mu.Unlock()

	c.loadSuggestions(ctx, i, answer)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cards[i], nil
}

// loadSuggestions fetches smart suggestions for card i. Failures degrade
// to an empty list; the conversation is never blocked on suggestions.
func (c *Conversation) loadSuggestions(ctx context.Context, i int, answer string) {
	c.mu.Lock()
	c.cards[i].State = core.CardSuggestionsLoading
	c.mu.Unlock()

	suggestions := c.assistant.SmartSuggestions(ctx, answer)

	c.mu.Lock()
	c.cards[i].SmartSuggestions = suggestions
	c.cards[i].State = core.CardSuggestionsReady
	c.mu.Unlock()
}

// Cards returns a snapshot of the card sequence.
func (c *Conversation) Cards() []core.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Latest returns the most recent card.
func (c *Conversation) Latest() core.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cards[len(c.cards)-1]
}
