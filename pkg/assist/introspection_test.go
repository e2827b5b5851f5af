package assist

import (
	"context"
	"testing"
	"time"

	"github.com/musenotes/muse/pkg/adapters/kv"
	"github.com/musenotes/muse/pkg/core"
)

func TestAssistantState(t *testing.T) {
	now := time.Now()
	gen := &fakeGenerator{respond: func(string) (string, error) { return "ok", nil }}
	a := NewAssistant(gen, kv.NewMemory(), WithClock(fixedClock(now)))
	ctx := context.Background()

	state, ok := a.State().(AssistantState)
	if !ok {
		t.Fatalf("unexpected state type %T", a.State())
	}
	if state.HasWelcome || state.HasSuggestions || state.SearchHistorySize != 0 {
		t.Errorf("expected empty initial state, got %+v", state)
	}

	a.Welcome(ctx, "Sam")
	notes := []core.Note{{ID: "1", Content: "Bought a bike", CreatedAt: now}}
	a.Topics(ctx, notes)
	if _, err := a.Search(ctx, notes, "what did I buy"); err != nil {
		t.Fatal(err)
	}

	state = a.State().(AssistantState)
	if !state.HasWelcome || !state.HasSuggestions || state.SearchHistorySize != 1 {
		t.Errorf("expected populated state, got %+v", state)
	}

	if a.ComponentType() != "assistant" {
		t.Errorf("unexpected component type %q", a.ComponentType())
	}
}
