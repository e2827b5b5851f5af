package platform

import (
	"github.com/musenotes/muse/pkg/adapters/kv"
	"github.com/musenotes/muse/pkg/adapters/llm"
	"github.com/musenotes/muse/pkg/assist"
)

// New assembles an Assistant from the configured collaborators, falling
// back to the default adapters where none are injected.
func New(opts ...Option) (*assist.Assistant, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		if o.cachePath != "" {
			s, err := kv.OpenSQLite(o.cachePath)
			if err != nil {
				return nil, err
			}
			storage = s
		} else {
			storage = kv.NewMemory()
		}
	}

	gen := o.generator
	if gen == nil {
		g, err := llm.NewGemini(o.apiKey)
		if err != nil {
			return nil, err
		}
		gen = g
	}

	var aopts []assist.AssistantOption
	if o.logger != nil {
		aopts = append(aopts, assist.WithLogger(o.logger))
	}
	if o.clock != nil {
		aopts = append(aopts, assist.WithClock(o.clock))
	}

	return assist.NewAssistant(gen, storage, aopts...), nil
}
