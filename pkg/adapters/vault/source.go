package vault

import (
	"context"

	"github.com/aretw0/lifecycle"
)

type vaultSource struct {
	events <-chan Event
	out    chan lifecycle.Event
}

// NewLifecycleSource bridges a vault event channel to the generic
// lifecycle Event interface, so a host application can supervise the
// watcher alongside its other components.
func NewLifecycleSource(events <-chan Event) lifecycle.Source {
	return &vaultSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *vaultSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *vaultSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// vault.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
