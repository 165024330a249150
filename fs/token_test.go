package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session", "token")
	store := fs.NewTokenStore(path)

	_, err := store.Token()
	assert.ErrorIs(t, err, autodoc.ErrNoToken)

	require.NoError(t, store.SetToken("tok-abc"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, store.Clear())
	_, err = store.Token()
	assert.ErrorIs(t, err, autodoc.ErrNoToken)

	// Clearing again is fine.
	assert.NoError(t, store.Clear())
}

func TestPreferenceStore_SelectedPrompt(t *testing.T) {
	t.Parallel()

	store := fs.NewPreferenceStore(filepath.Join(t.TempDir(), "prefs", "prompt"))

	id, err := store.SelectedPrompt()
	require.NoError(t, err)
	assert.Zero(t, id, "absent preference reads as zero")

	require.NoError(t, store.SetSelectedPrompt(12))

	id, err = store.SelectedPrompt()
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}
