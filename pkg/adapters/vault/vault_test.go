package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musenotes/muse/pkg/core"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func notesByID(notes []core.Note) map[string]core.Note {
	out := make(map[string]core.Note, len(notes))
	for _, n := range notes {
		out[n.ID] = n
	}
	return out
}

func TestVault_Notes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "groceries.md", "Buy milk and eggs\n")
	writeFile(t, dir, "ideas/app.md", "---\ncreated: 2024-03-01\n---\nAn app for tracking bike rides\n")
	writeFile(t, dir, "scratch.txt", "not a note")
	writeFile(t, dir, ".obsidian/cache.md", "editor internals")

	v, err := New(dir)
	require.NoError(t, err)

	notes, err := v.Notes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)

	byID := notesByID(notes)

	groceries, ok := byID["groceries"]
	require.True(t, ok)
	assert.Equal(t, "Buy milk and eggs", groceries.Content)
	assert.WithinDuration(t, time.Now(), groceries.CreatedAt, time.Minute,
		"a note without frontmatter uses file mtime")

	app, ok := byID["ideas/app"]
	require.True(t, ok)
	assert.Equal(t, "An app for tracking bike rides", app.Content,
		"frontmatter must be stripped from the content")
	assert.Equal(t, 2024, app.CreatedAt.Year())
	assert.Equal(t, time.March, app.CreatedAt.Month())
}

func TestVault_Pattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.md", "top-level")
	writeFile(t, dir, "nested/inner.md", "nested")

	v, err := New(dir, WithPattern("*.md"))
	require.NoError(t, err)

	notes, err := v.Notes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "top", notes[0].ID)
}

func TestVault_CreatedRFC3339(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "note.md", "---\ncreated: 2024-03-01T09:30:00Z\n---\nbody\n")

	v, err := New(dir)
	require.NoError(t, err)
	notes, err := v.Notes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)

	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.True(t, notes[0].CreatedAt.Equal(want), "got %v", notes[0].CreatedAt)
}

func TestVault_MalformedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "note.md", "---\ncreated: [not: valid\n---\nbody text\n")

	v, err := New(dir)
	require.NoError(t, err)
	notes, err := v.Notes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "body text", notes[0].Content)
}

func TestVault_MissingPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestVault_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.md", "x")

	_, err := New(filepath.Join(dir, "file.md"))
	assert.Error(t, err)
}

func TestSplitFrontmatter(t *testing.T) {
	meta, body, ok := splitFrontmatter([]byte("---\ncreated: 2024-01-01\n---\nhello\n"))
	require.True(t, ok)
	assert.Equal(t, "created: 2024-01-01", string(meta))
	assert.Equal(t, "hello\n", string(body))

	_, _, ok = splitFrontmatter([]byte("no fences here"))
	assert.False(t, ok)

	_, _, ok = splitFrontmatter([]byte("---\nunterminated: yes\n"))
	assert.False(t, ok)
}

func TestVault_Watch(t *testing.T) {
	dir := t.TempDir()
	v, err := New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := v.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, dir, "fresh.md", "a new note")

	select {
	case ev := <-events:
		assert.Contains(t, ev.Path, "fresh.md")
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change event")
	}

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open, "channel should close on context cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("expected channel to close")
	}
}

func TestLifecycleSource(t *testing.T) {
	events := make(chan Event, 1)
	source := NewLifecycleSource(events)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, source.Start(ctx))

	events <- Event{Path: "notes/fresh.md", Time: time.Now()}

	select {
	case ev := <-source.Events():
		assert.Equal(t, "vault change: notes/fresh.md", ev.String())
	case <-time.After(5 * time.Second):
		t.Fatal("expected bridged event")
	}

	close(events)
	select {
	case _, open := <-source.Events():
		assert.False(t, open, "output should close when the input closes")
	case <-time.After(5 * time.Second):
		t.Fatal("expected output channel to close")
	}
}

func TestVault_WatchIgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	v, err := New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := v.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, dir, "scratch.txt", "not a note")

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for non-matching file: %v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}
