package assist

import (
	"encoding/json"
	"strings"

	"github.com/musenotes/muse/pkg/core"
)

// maxListItems caps how many lines a list response contributes.
const maxListItems = 3

// ParseList extracts up to three non-blank lines from raw model output.
// Lines are accepted verbatim after trimming; no per-line validation.
func ParseList(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == maxListItems {
			break
		}
	}
	return items
}

const (
	answerMarker    = "ANSWER:"
	locationsMarker = "LOCATIONS:"
)

// ParseSectioned splits a follow-up response into its answer text and
// location references. Output that deviates from the expected shape
// degrades to empty values; this never fails. A missing ANSWER marker
// yields an empty answer, which callers treat as "no content", not as an
// error.
func ParseSectioned(raw string) (string, []core.LocationReference) {
	answer := ""
	if i := strings.Index(raw, answerMarker); i >= 0 {
		rest := raw[i+len(answerMarker):]
		if j := strings.Index(rest, locationsMarker); j >= 0 {
			rest = rest[:j]
		}
		answer = strings.TrimSpace(rest)
	}

	locations := []core.LocationReference{}
	if i := strings.Index(raw, locationsMarker); i >= 0 {
		blob := strings.TrimSpace(raw[i+len(locationsMarker):])
		var parsed []core.LocationReference
		if err := json.Unmarshal([]byte(blob), &parsed); err == nil && parsed != nil {
			locations = parsed
		}
	}

	return answer, locations
}
