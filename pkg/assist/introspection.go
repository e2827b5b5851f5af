package assist

import (
	"context"

	"github.com/aretw0/introspection"
)

// AssistantState exposes internal cache state for observability.
type AssistantState struct {
	SearchHistorySize int  `json:"search_history_size"`
	HasWelcome        bool `json:"has_welcome"`
	HasSuggestions    bool `json:"has_suggestions"`
}

// State implements introspection.Introspectable.
func (a *Assistant) State() any {
	ctx := context.Background()
	return AssistantState{
		SearchHistorySize: len(a.cache.allSearches(ctx)),
		HasWelcome:        a.cache.getWelcome(ctx) != nil,
		HasSuggestions:    a.cache.getSuggestions(ctx) != nil,
	}
}

// ComponentType implements introspection.Component.
func (a *Assistant) ComponentType() string {
	return "assistant"
}

var _ introspection.Introspectable = (*Assistant)(nil)
var _ introspection.Component = (*Assistant)(nil)
