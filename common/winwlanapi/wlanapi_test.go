//go:build windows

package winwlanapi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func openTestHandle(t *testing.T) windows.Handle {
	t.Helper()
	if err := Load(); err != nil {
		t.Skipf("wlanapi.dll not available: %v", err)
	}
	handle, _, err := OpenHandle(ClientVersion2)
	if err != nil {
		t.Skipf("WLAN service not available: %v", err)
	}
	t.Cleanup(func() {
		CloseHandle(handle)
	})
	return handle
}

func TestStructLayout(t *testing.T) {
	require.Equal(t, uintptr(36), unsafe.Sizeof(Dot11SSID{}))
	require.Equal(t, uintptr(628), unsafe.Sizeof(AvailableNetwork{}))
	require.Equal(t, uintptr(516), unsafe.Sizeof(ProfileInfo{}))
}

func TestOpenHandle(t *testing.T) {
	handle := openTestHandle(t)
	require.NotZero(t, handle)
}

func TestEnumInterfaces(t *testing.T) {
	handle := openTestHandle(t)

	interfaces, err := EnumInterfaces(handle)
	require.NoError(t, err)

	t.Logf("Found %d WLAN interface(s)", len(interfaces))
	for i, iface := range interfaces {
		description := windows.UTF16ToString(iface.InterfaceDescription[:])
		t.Logf("Interface %d: %s (state=%d)", i, description, iface.InterfaceState)
	}
}

func TestQueryCurrentConnection(t *testing.T) {
	handle := openTestHandle(t)

	interfaces, err := EnumInterfaces(handle)
	require.NoError(t, err)
	if len(interfaces) == 0 {
		t.Skip("no WLAN interfaces available")
	}

	for _, iface := range interfaces {
		if iface.InterfaceState != InterfaceStateConnected {
			continue
		}

		guid := iface.InterfaceGUID
		attrs, err := QueryCurrentConnection(handle, &guid)
		require.NoError(t, err)

		ssid := attrs.AssociationAttributes.SSID.Bytes()
		bssid := attrs.AssociationAttributes.BSSID
		t.Logf("Connected to SSID: %q, BSSID: %02X:%02X:%02X:%02X:%02X:%02X",
			ssid, bssid[0], bssid[1], bssid[2], bssid[3], bssid[4], bssid[5])
		return
	}

	t.Log("no connected WLAN interface found")
}

func TestAvailableNetworksAndProfiles(t *testing.T) {
	handle := openTestHandle(t)

	interfaces, err := EnumInterfaces(handle)
	require.NoError(t, err)
	if len(interfaces) == 0 {
		t.Skip("no WLAN interfaces available")
	}

	guid := interfaces[0].InterfaceGUID
	networks, err := GetAvailableNetworkList(handle, &guid, 0)
	require.NoError(t, err)
	for _, network := range networks {
		require.LessOrEqual(t, network.SignalQuality, uint32(100))
	}

	profiles, err := GetProfileList(handle, &guid)
	require.NoError(t, err)
	for _, profile := range profiles {
		name := windows.UTF16ToString(profile.ProfileName[:])
		document, err := GetProfile(handle, &guid, name)
		require.NoError(t, err)
		require.Contains(t, document, "WLANProfile")
	}
}

func TestReasonCodeToString(t *testing.T) {
	openTestHandle(t)

	reason, err := ReasonCodeToString(1)
	require.NoError(t, err)
	require.NotEmpty(t, reason)
}

func TestCloseHandle(t *testing.T) {
	if err := Load(); err != nil {
		t.Skipf("wlanapi.dll not available: %v", err)
	}
	handle, _, err := OpenHandle(ClientVersion2)
	if err != nil {
		t.Skipf("WLAN service not available: %v", err)
	}

	require.NoError(t, CloseHandle(handle))
	// closing again should fail
	require.Error(t, CloseHandle(handle))
}
