// Package vault reads a directory of Markdown notes as immutable
// snapshots for the assistant. It never writes back: the note collection
// is owned by whoever edits the files.
package vault

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/musenotes/muse/pkg/core"
)

// DefaultPattern selects which files count as notes.
const DefaultPattern = "**/*.md"

// Vault exposes a directory of Markdown notes as a core.NoteSource.
type Vault struct {
	Path    string
	Pattern string
	Logger  *slog.Logger
}

// Option configures a Vault.
type Option func(*Vault)

// WithPattern overrides the note file pattern (doublestar syntax).
func WithPattern(pattern string) Option {
	return func(v *Vault) {
		v.Pattern = pattern
	}
}

// WithLogger sets the logger for the vault.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Vault) {
		v.Logger = logger
	}
}

// New creates a Vault rooted at the given path. The path must exist and
// be a directory.
func New(path string, opts ...Option) (*Vault, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("vault path does not exist: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path is not a directory: %s", path)
	}

	v := &Vault{Path: path, Pattern: DefaultPattern, Logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Notes walks the vault and returns the current snapshot. A note's ID is
// its slash-relative path without extension; its creation time comes from
// a `created` frontmatter field, falling back to file mtime. Files that
// cannot be read are skipped with a warning rather than failing the
// whole snapshot.
func (v *Vault) Notes(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note

	err := filepath.WalkDir(v.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			// Skip hidden directories (.git, .muse, editors' droppings).
			if strings.HasPrefix(d.Name(), ".") && path != v.Path {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(v.Path, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if ok, _ := doublestar.Match(v.Pattern, relPath); !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			v.Logger.Warn("failed to read note", "path", relPath, "error", err)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		id := strings.TrimSuffix(relPath, filepath.Ext(relPath))
		notes = append(notes, parseNote(id, data, info.ModTime()))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk vault dir: %w", err)
	}

	return notes, nil
}

var _ core.NoteSource = (*Vault)(nil)

// frontmatter is the subset of note metadata the assistant cares about.
type frontmatter struct {
	Created string `yaml:"created"`
}

func parseNote(id string, data []byte, mtime time.Time) core.Note {
	content := data
	created := mtime

	if meta, body, ok := splitFrontmatter(data); ok {
		content = body
		var fm frontmatter
		if err := yaml.Unmarshal(meta, &fm); err == nil && fm.Created != "" {
			if t, ok := parseCreated(fm.Created); ok {
				created = t
			}
		}
	}

	return core.Note{
		ID:        id,
		Content:   strings.TrimSpace(string(content)),
		CreatedAt: created,
	}
}

// splitFrontmatter separates a leading YAML frontmatter block (fenced by
// ---) from the markdown body.
func splitFrontmatter(data []byte) (meta, body []byte, ok bool) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return nil, nil, false
	}

	rest := data[bytes.IndexByte(data, '\n')+1:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, false
	}

	meta = rest[:end]
	body = rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return meta, body, true
}

func parseCreated(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
