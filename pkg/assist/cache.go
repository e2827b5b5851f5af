package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/musenotes/muse/pkg/core"
)

// Storage key namespaces owned by the assistant.
const (
	keyWelcome     = "muse/welcome"
	keySuggestions = "muse/suggestions"
	keySearches    = "muse/searches"
)

// searchHistoryCap bounds the persisted search history, newest first.
const searchHistoryCap = 10

type welcomeEntry struct {
	Message   string `json:"message"`
	UserName  string `json:"userName"`
	Timestamp int64  `json:"timestamp"`
}

type suggestionsEntry struct {
	Suggestions []string `json:"suggestions"`
	NoteIDs     []string `json:"noteIds"`
	Timestamp   int64    `json:"timestamp"`
}

type searchEntry struct {
	Result    string   `json:"result"`
	Query     string   `json:"query"`
	NoteIDs   []string `json:"noteIds"`
	Timestamp int64    `json:"timestamp"`
}

// cacheStore wraps the generic Storage collaborator with the three cache
// classes and their serialization. It returns whatever is persisted;
// freshness checks belong to the caller.
type cacheStore struct {
	storage core.Storage
}

// getWelcome returns the persisted welcome entry, or nil if absent.
func (s *cacheStore) getWelcome(ctx context.Context) *welcomeEntry {
	var e welcomeEntry
	if !s.read(ctx, keyWelcome, &e) {
		return nil
	}
	return &e
}

func (s *cacheStore) putWelcome(ctx context.Context, e welcomeEntry) error {
	return s.write(ctx, keyWelcome, e)
}

// getSuggestions returns the persisted topic suggestions entry, or nil.
func (s *cacheStore) getSuggestions(ctx context.Context) *suggestionsEntry {
	var e suggestionsEntry
	if !s.read(ctx, keySuggestions, &e) {
		return nil
	}
	return &e
}

func (s *cacheStore) putSuggestions(ctx context.Context, e suggestionsEntry) error {
	return s.write(ctx, keySuggestions, e)
}

// allSearches returns the persisted search history, most recent first.
func (s *cacheStore) allSearches(ctx context.Context) []searchEntry {
	var entries []searchEntry
	if !s.read(ctx, keySearches, &entries) {
		return nil
	}
	return entries
}

// appendSearch prepends the entry and truncates the history to capacity.
func (s *cacheStore) appendSearch(ctx context.Context, e searchEntry) error {
	entries := append([]searchEntry{e}, s.allSearches(ctx)...)
	if len(entries) > searchHistoryCap {
		entries = entries[:searchHistoryCap]
	}
	return s.write(ctx, keySearches, entries)
}

// read unmarshals the value at key into v. A missing key, a storage error
// or a corrupt record all report false. Corruption self-heals: the record
// is removed so the next write starts clean, and no parse error surfaces.
func (s *cacheStore) read(ctx context.Context, key string, v any) bool {
	raw, ok, err := s.storage.GetItem(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		_ = s.storage.RemoveItem(ctx, key)
		return false
	}
	return true
}

func (s *cacheStore) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := s.storage.SetItem(ctx, key, string(data)); err != nil {
		return fmt.Errorf("persist cache entry: %w", err)
	}
	return nil
}

// sameDay reports whether the epoch-ms timestamp falls on the same local
// calendar day as now. Entries from a previous day are stale even when
// their key material still matches.
func sameDay(tsMillis int64, now time.Time) bool {
	y1, m1, d1 := time.UnixMilli(tsMillis).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
