package assist

import (
	"encoding/json"
	"sort"

	"github.com/musenotes/muse/pkg/core"
)

// Fingerprint identifies a note collection independent of ordering.
// It is the JSON-encoded list of note IDs, sorted lexicographically, so
// two snapshots holding the same notes always produce the same key.
type Fingerprint string

// FingerprintNotes derives the cache key for a snapshot.
func FingerprintNotes(notes []core.Note) Fingerprint {
	ids := noteIDs(notes)
	sort.Strings(ids)
	data, _ := json.Marshal(ids) // a []string cannot fail to marshal
	return Fingerprint(data)
}

func noteIDs(notes []core.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

// sameIDSet reports whether two ID lists carry the same multiset of IDs,
// ignoring order. This is the key-material comparison for freshness.
func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		if counts[id] == 0 {
			return false
		}
		counts[id]--
	}
	return true
}
