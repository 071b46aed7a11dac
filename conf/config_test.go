package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sagernet/sing-wlan/conf"
	"github.com/sagernet/sing-wlan/wlan"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	options, err := conf.Load("")
	require.NoError(t, err)
	require.Equal(t, uint32(wlan.ClientVersionVista), options.ClientVersion)
	require.Equal(t, wlan.DefaultStatusBuffer, options.StatusBuffer)
	require.Equal(t, conf.DefaultScanDelay, options.ScanDelay.Build())
	require.Equal(t, conf.DefaultKnownNetworks, options.KnownNetworks)
	require.Equal(t, wlan.SelectionStrict, options.Policy())
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "log": {"level": "debug", "timestamp": true},
  "selection_policy": "permissive",
  "scan_delay": "1500ms",
  "connect_timeout": "1m",
  "known_networks": "networks.txt"
}`)
	options, err := conf.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", options.Log.Level)
	require.True(t, options.Log.Timestamp)
	require.Equal(t, wlan.SelectionPermissive, options.Policy())
	require.Equal(t, 1500*time.Millisecond, options.ScanDelay.Build())
	require.Equal(t, time.Minute, options.NativeOptions().ConnectTimeout)
	require.Equal(t, "networks.txt", options.KnownNetworks)
	require.Equal(t, conf.DefaultPollInterval, options.PollInterval.Build())
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
log:
  level: warn
  disable_color: true
client_version: 1
status_buffer: 8
poll_interval: 50ms
profile_store: /tmp/profiles.db
`)
	options, err := conf.Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", options.Log.Level)
	require.True(t, options.Log.DisableColor)
	require.Equal(t, uint32(wlan.ClientVersionXP), options.ClientVersion)
	require.Equal(t, 8, options.StatusBuffer)
	require.Equal(t, 50*time.Millisecond, options.PollInterval.Build())
	require.Equal(t, "/tmp/profiles.db", options.NativeOptions().ProfileStore)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := conf.Load(writeConfig(t, "policy.json", `{"selection_policy": "greedy"}`))
	require.Error(t, err)
	_, err = conf.Load(writeConfig(t, "version.yml", "client_version: 3\n"))
	require.Error(t, err)
	_, err = conf.Load(writeConfig(t, "duration.json", `{"scan_delay": "soon"}`))
	require.Error(t, err)
	_, err = conf.Load(writeConfig(t, "unknown.json", `{"inbounds": []}`))
	require.Error(t, err)
	_, err = conf.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
