package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadArtifact(t *testing.T) {
	p := trainedPipeline(t)
	path := filepath.Join(t.TempDir(), "model", "expense_model.gob")

	require.NoError(t, SaveArtifact(path, p))

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)

	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, p.Accuracy, loaded.Accuracy)
	assert.Equal(t, p.Classes(), loaded.Classes())
	assert.Equal(t, p.Vectorizer.Dim(), loaded.Vectorizer.Dim())

	for _, text := range []string{"ride with uber", "electric bill payment", "weekend getaway"} {
		want, err := p.Predict(text)
		require.NoError(t, err)
		got, err := loaded.Predict(text)
		require.NoError(t, err)

		assert.Equal(t, want.Category, got.Category, "input %q", text)
		assert.InDelta(t, want.TopConfidence, got.TopConfidence, 1e-12, "input %q", text)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "expense_model.gob", entries[0].Name())
}

func TestLoadArtifactMissing(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.gob"))
	assert.Error(t, err)
}

func TestLoadArtifactCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0644))

	_, err := LoadArtifact(path)
	assert.Error(t, err)
}

func TestRemoveLegacyArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense_model.gob")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	RemoveLegacyArtifact(path)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again, or with no path configured, is a no-op.
	RemoveLegacyArtifact(path)
	RemoveLegacyArtifact("")
}
