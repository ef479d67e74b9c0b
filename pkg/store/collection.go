package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

// SchemaVersion is stamped into every snapshot envelope so future format
// changes can be migrated instead of discarded.
const SchemaVersion = 1

// envelope wraps a persisted collection.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	SavedAt       time.Time       `json:"saved_at"`
	Items         json.RawMessage `json:"items"`
}

// CollectionStore persists whole collections as JSON snapshots keyed by
// name, one file per key. Missing or malformed data is never a failure:
// reads fall back to the supplied defaults, mirroring how the dashboard
// treats a broken snapshot as "start from seed data". A go-cache layer
// serves repeated reads.
type CollectionStore struct {
	dir   string
	cache *cache.Cache
}

func NewCollectionStore(dir string) *CollectionStore {
	return &CollectionStore{
		dir:   dir,
		cache: cache.New(30*time.Minute, 10*time.Minute),
	}
}

func (s *CollectionStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Invalidate drops the cached copy of a collection.
func (s *CollectionStore) Invalidate(key string) {
	s.cache.Delete(key)
}

// Load reads the collection stored under key. Absent files, unreadable
// JSON and unknown schema versions all degrade to the defaults; only the
// fallback slice is copied, never aliased.
func Load[T any](s *CollectionStore, key string, defaults []T) []T {
	if raw, found := s.cache.Get(key); found {
		if items, ok := raw.([]T); ok {
			return items
		}
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return cloneSlice(defaults)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.SchemaVersion != SchemaVersion {
		return cloneSlice(defaults)
	}

	var items []T
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return cloneSlice(defaults)
	}

	s.cache.Set(key, items, cache.DefaultExpiration)
	return items
}

// Save writes the whole collection under key, replacing any prior snapshot.
func Save[T any](s *CollectionStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", key, err)
	}

	env := envelope{
		SchemaVersion: SchemaVersion,
		SavedAt:       time.Now(),
		Items:         raw,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal envelope %s: %w", key, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}

	s.cache.Set(key, items, cache.DefaultExpiration)
	return nil
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
