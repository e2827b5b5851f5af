package assist

import (
	"testing"
	"time"

	"github.com/musenotes/muse/pkg/core"
)

func TestFingerprint_PermutationInvariance(t *testing.T) {
	now := time.Now()
	a := []core.Note{
		{ID: "alpha", Content: "first", CreatedAt: now},
		{ID: "beta", Content: "second", CreatedAt: now},
		{ID: "gamma", Content: "third", CreatedAt: now},
	}
	b := []core.Note{a[2], a[0], a[1]}

	if FingerprintNotes(a) != FingerprintNotes(b) {
		t.Errorf("expected identical fingerprints for permuted snapshots")
	}
}

func TestFingerprint_ContentChange(t *testing.T) {
	a := []core.Note{{ID: "alpha"}, {ID: "beta"}}
	b := []core.Note{{ID: "alpha"}, {ID: "beta"}, {ID: "gamma"}}
	c := []core.Note{{ID: "alpha"}}

	if FingerprintNotes(a) == FingerprintNotes(b) {
		t.Errorf("expected different fingerprint after adding a note")
	}
	if FingerprintNotes(a) == FingerprintNotes(c) {
		t.Errorf("expected different fingerprint after removing a note")
	}
}

func TestFingerprint_Empty(t *testing.T) {
	if got := FingerprintNotes(nil); got != "[]" {
		t.Errorf("expected [] for empty snapshot, got %s", got)
	}
}

func TestSameIDSet(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"identical", []string{"1", "2"}, []string{"1", "2"}, true},
		{"reordered", []string{"1", "2"}, []string{"2", "1"}, true},
		{"different length", []string{"1"}, []string{"1", "2"}, false},
		{"different ids", []string{"1", "2"}, []string{"1", "3"}, false},
		{"duplicate counts", []string{"1", "1"}, []string{"1", "2"}, false},
		{"both empty", nil, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sameIDSet(tc.a, tc.b); got != tc.want {
				t.Errorf("sameIDSet(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
