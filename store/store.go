package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"edt-finder-cli/model"
	"edt-finder-cli/parser"
)

// DefaultTTL bounds how long a snapshot may be reused even when its key
// still matches.
const DefaultTTL = 30 * time.Second

type snapshot struct {
	records []model.SessionRecord
	diags   []parser.Diagnostic
}

// Store caches parsed corpus snapshots. The cache key folds in the size
// and modification time of every timetable file under the root, so a hit
// can only serve a snapshot of the current on-disk content; any edit
// changes the key and forces a re-parse.
type Store struct {
	cache *gocache.Cache
}

// New creates a store with the given snapshot TTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: gocache.New(ttl, 2*ttl)}
}

// Load returns the parsed records and diagnostics for a corpus root,
// re-parsing only when the on-disk content changed since the last call.
// Callers must treat the returned slices as read-only.
func (s *Store) Load(root string) ([]model.SessionRecord, []parser.Diagnostic, error) {
	key, err := corpusKey(root)
	if err != nil {
		return nil, nil, err
	}
	if cached, ok := s.cache.Get(key); ok {
		snap := cached.(snapshot)
		return snap.records, snap.diags, nil
	}

	records, diags, err := parser.LoadDir(root)
	if err != nil {
		return nil, nil, err
	}
	s.cache.Set(key, snapshot{records: records, diags: diags}, gocache.DefaultExpiration)
	return records, diags, nil
}

// corpusKey fingerprints the corpus: one segment per subdirectory
// timetable file with its size and mtime.
func corpusKey(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("read corpus root: %w", err)
	}
	var b strings.Builder
	b.WriteString(root)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name(), parser.TimetableFileName)
		info, err := os.Stat(path)
		if err != nil {
			// Missing or unreadable files still shape the key so that
			// adding one later invalidates the snapshot.
			fmt.Fprintf(&b, "|%s:absent", entry.Name())
			continue
		}
		fmt.Fprintf(&b, "|%s:%d:%d", entry.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}
