// internal/ledger/ledger.go

// Package ledger persists the set of listing keys that have already been
// observed, so repeated runs never notify about the same listing twice.
package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Ledger is an in-memory seen-set backed by a flat JSON file. Keys are only
// ever added; a key marked seen is never reconsidered as new in this or any
// later run.
type Ledger struct {
	path string
	seen map[string]struct{}
}

// Load reconstitutes the ledger from its backing file. A missing or corrupt
// file means no prior state, not an error.
func Load(path string) *Ledger {
	l := &Ledger{path: path, seen: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return l
	}
	for _, k := range keys {
		l.seen[k] = struct{}{}
	}
	return l
}

// IsNew reports whether the key has never been observed.
func (l *Ledger) IsNew(key string) bool {
	_, ok := l.seen[key]
	return !ok
}

// MarkSeen records the key in memory. Durable only after Persist.
func (l *Ledger) MarkSeen(key string) {
	l.seen[key] = struct{}{}
}

func (l *Ledger) Len() int {
	return len(l.seen)
}

// Keys returns every seen key in sorted order.
func (l *Ledger) Keys() []string {
	keys := make([]string, 0, len(l.seen))
	for k := range l.seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Persist atomically overwrites the backing file with the full current set.
// Keys are sorted so the artifact stays diff-friendly.
func (l *Ledger) Persist() error {
	data, err := json.MarshalIndent(l.Keys(), "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".seen-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp opens 0600; the artifact stays world-readable.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), l.path)
}
