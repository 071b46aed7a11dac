package wlan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "profiles.db")
	store, err := OpenProfileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put("Office", "<office/>", false))
	require.NoError(t, store.Put("Home", "<home/>", false))
	require.ErrorIs(t, store.Put("Home", "<other/>", false), ErrProfileExists)
	require.NoError(t, store.Put("Home", "<home v2/>", true))

	document, err := store.Get("Home")
	require.NoError(t, err)
	require.Equal(t, "<home v2/>", document)
	_, err = store.Get("Lobby")
	require.ErrorIs(t, err, ErrProfileNotFound)

	names, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"Home", "Office"}, names)

	require.NoError(t, store.Delete("Office"))
	require.ErrorIs(t, store.Delete("Office"), ErrProfileNotFound)
	require.NoError(t, store.Close())

	store, err = OpenProfileStore(path)
	require.NoError(t, err)
	defer store.Close()
	names, err = store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"Home"}, names)
}
