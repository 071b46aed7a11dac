package wlan

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKnownNetworks(t *testing.T) {
	networks, err := ParseKnownNetworks(strings.NewReader("Home\n\n  Office  \r\nLobby"))
	require.NoError(t, err)
	require.Equal(t, []string{"Home", "Office", "Lobby"}, networks)
	require.True(t, IsKnownNetwork(networks, "Office"))
	require.False(t, IsKnownNetwork(networks, "office"))
	require.False(t, IsKnownNetwork(nil, "Home"))
}

func TestAddKnownNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wlan_data", "known_networks.txt")
	require.NoError(t, AddKnownNetwork(path, "Home"))
	require.NoError(t, AddKnownNetwork(path, "Office"))
	require.NoError(t, AddKnownNetwork(path, "Home"))

	networks, err := LoadKnownNetworks(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Home", "Office"}, networks)
}

func TestLoadKnownNetworksMissing(t *testing.T) {
	networks, err := LoadKnownNetworks(filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	require.Empty(t, networks)
	require.False(t, IsKnownNetwork(networks, "Home"))
}
