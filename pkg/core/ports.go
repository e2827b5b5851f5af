package core

import "context"

// Generator is the opaque generative-text capability.
// Implementations perform a single attempt per call; retry and timeout
// policy belongs to the capability boundary, not to callers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Storage is the generic persistent key/value collaborator.
// The assistant owns its key namespaces and all (de)serialization.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (memory, SQLite, remote KV).
type Storage interface {
	// GetItem returns the value stored at key, and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value at key, overwriting any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes the value at key. Removing a missing key is not
	// an error.
	RemoveItem(ctx context.Context, key string) error
}

// NoteSource supplies immutable note snapshots.
type NoteSource interface {
	Notes(ctx context.Context) ([]Note, error)
}
