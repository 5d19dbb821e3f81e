package resrel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := resrel.NewFileTokenStore(path)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means no token")

	require.NoError(t, store.Save("abc123"))

	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an absent token is not an error.
	require.NoError(t, store.Clear())
}

func TestFileTokenStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("abc123\n"), 0o600))

	token, err := resrel.NewFileTokenStore(path).Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestMemoryTokenStore(t *testing.T) {
	store := &resrel.MemoryTokenStore{}

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc123"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}
