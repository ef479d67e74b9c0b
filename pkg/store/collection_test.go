package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedRecord struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func TestSaveThenLoad(t *testing.T) {
	s := NewCollectionStore(t.TempDir())
	in := []seedRecord{{Id: 1, Name: "Ada"}, {Id: 2, Name: "Grace"}}

	require.NoError(t, Save(s, "candidates", in))

	out := Load[seedRecord](s, "candidates", nil)
	assert.Equal(t, in, out)
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	s := NewCollectionStore(t.TempDir())
	defaults := []seedRecord{{Id: 9, Name: "Seed"}}

	out := Load(s, "candidates", defaults)
	assert.Equal(t, defaults, out)

	// the fallback is a copy, not an alias
	out[0].Name = "Mutated"
	assert.Equal(t, "Seed", defaults[0].Name)
}

func TestMalformedSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewCollectionStore(dir)
	defaults := []seedRecord{{Id: 9, Name: "Seed"}}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "candidates.json"), []byte("{not json"), 0o644))
	assert.Equal(t, defaults, Load(s, "candidates", defaults))
}

func TestUnknownSchemaVersionFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewCollectionStore(dir)
	defaults := []seedRecord{{Id: 9, Name: "Seed"}}

	payload := []byte(`{"schema_version": 99, "items": [{"id": 1, "name": "Future"}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "candidates.json"), payload, 0o644))

	assert.Equal(t, defaults, Load(s, "candidates", defaults))
}

func TestCachedReadSurvivesFileDeletion(t *testing.T) {
	dir := t.TempDir()
	s := NewCollectionStore(dir)
	in := []seedRecord{{Id: 1, Name: "Ada"}}

	require.NoError(t, Save(s, "candidates", in))
	require.NoError(t, os.Remove(filepath.Join(dir, "candidates.json")))

	assert.Equal(t, in, Load[seedRecord](s, "candidates", nil))

	s.Invalidate("candidates")
	assert.Nil(t, Load[seedRecord](s, "candidates", nil))
}
