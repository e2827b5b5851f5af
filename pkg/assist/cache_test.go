package assist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/musenotes/muse/pkg/adapters/kv"
)

func TestCacheStore_SelfHealsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	store := &cacheStore{storage: mem}

	if err := mem.SetItem(ctx, keyWelcome, "{not json"); err != nil {
		t.Fatal(err)
	}

	if e := store.getWelcome(ctx); e != nil {
		t.Fatalf("expected corrupt record to read as a miss, got %+v", e)
	}

	// The corrupt record must be gone so the next write starts clean.
	if _, ok, _ := mem.GetItem(ctx, keyWelcome); ok {
		t.Error("expected corrupt record to be removed")
	}

	entry := welcomeEntry{Message: "Hi Sam", UserName: "Sam", Timestamp: time.Now().UnixMilli()}
	if err := store.putWelcome(ctx, entry); err != nil {
		t.Fatal(err)
	}
	got := store.getWelcome(ctx)
	if got == nil || got.Message != "Hi Sam" {
		t.Errorf("expected rewritten entry to round-trip, got %+v", got)
	}
}

func TestCacheStore_SearchHistoryBounded(t *testing.T) {
	ctx := context.Background()
	store := &cacheStore{storage: kv.NewMemory()}

	for i := 0; i < searchHistoryCap+1; i++ {
		err := store.appendSearch(ctx, searchEntry{
			Result: fmt.Sprintf("result-%d", i),
			Query:  fmt.Sprintf("query-%d", i),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	entries := store.allSearches(ctx)
	if len(entries) != searchHistoryCap {
		t.Fatalf("expected history capped at %d, got %d", searchHistoryCap, len(entries))
	}
	if entries[0].Query != fmt.Sprintf("query-%d", searchHistoryCap) {
		t.Errorf("expected newest entry first, got %q", entries[0].Query)
	}
	for _, e := range entries {
		if e.Query == "query-0" {
			t.Error("expected oldest entry to be evicted")
		}
	}
}

func TestCacheStore_MissingKeys(t *testing.T) {
	ctx := context.Background()
	store := &cacheStore{storage: kv.NewMemory()}

	if store.getWelcome(ctx) != nil {
		t.Error("expected nil welcome on empty storage")
	}
	if store.getSuggestions(ctx) != nil {
		t.Error("expected nil suggestions on empty storage")
	}
	if entries := store.allSearches(ctx); len(entries) != 0 {
		t.Errorf("expected empty history, got %v", entries)
	}
}

func TestSameDay(t *testing.T) {
	noon := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	if !sameDay(noon.Add(-6*time.Hour).UnixMilli(), noon) {
		t.Error("same calendar day should be fresh regardless of elapsed hours")
	}
	if sameDay(noon.Add(-13*time.Hour).UnixMilli(), noon) {
		t.Error("a timestamp from the previous day is stale even within 24h")
	}
	if sameDay(noon.AddDate(-1, 0, 0).UnixMilli(), noon) {
		t.Error("same month and day in another year is stale")
	}
}
