//go:build linux

package wlan

import (
	"net"
	"testing"

	"github.com/mdlayher/wifi"
	"github.com/stretchr/testify/require"
)

func TestSignalQuality(t *testing.T) {
	require.Equal(t, uint32(0), signalQuality(-10000))
	require.Equal(t, uint32(0), signalQuality(-12000))
	require.Equal(t, uint32(60), signalQuality(-7000))
	require.Equal(t, uint32(100), signalQuality(-5000))
	require.Equal(t, uint32(100), signalQuality(-2000))
}

func TestClassifyOpenBSS(t *testing.T) {
	secured, authAlgorithm, cipherAlgorithm := classifyRSN(wifi.RSNInfo{})
	require.False(t, secured)
	require.Equal(t, uint32(AuthAlgorithmOpen), authAlgorithm)
	require.Equal(t, uint32(CipherAlgorithmNone), cipherAlgorithm)
}

func TestClassifySecuredBSS(t *testing.T) {
	secured, authAlgorithm, cipherAlgorithm := classifyRSN(wifi.RSNInfo{
		Version:         1,
		AKMs:            []wifi.RSNAKM{wifi.RSNAkmPSK},
		PairwiseCiphers: []wifi.RSNCipher{wifi.RSNCipherTKIP, wifi.RSNCipherCCMP128},
	})
	require.True(t, secured)
	require.Equal(t, uint32(AuthAlgorithmRSNAPSK), authAlgorithm)
	require.Equal(t, uint32(CipherAlgorithmCCMP), cipherAlgorithm)

	_, authAlgorithm, cipherAlgorithm = classifyRSN(wifi.RSNInfo{
		Version:         1,
		AKMs:            []wifi.RSNAKM{wifi.RSNAkm8021X},
		PairwiseCiphers: []wifi.RSNCipher{wifi.RSNCipherTKIP},
	})
	require.Equal(t, uint32(AuthAlgorithmRSNA), authAlgorithm)
	require.Equal(t, uint32(CipherAlgorithmTKIP), cipherAlgorithm)
}

func TestLinuxInterfaceIDStable(t *testing.T) {
	ifi := &wifi.Interface{Name: "wlan0", HardwareAddr: net.HardwareAddr{0x02, 0, 0, 0, 0, 1}}
	require.Equal(t, linuxInterfaceID(ifi), linuxInterfaceID(ifi))
	other := &wifi.Interface{Name: "wlan1", HardwareAddr: ifi.HardwareAddr}
	require.NotEqual(t, linuxInterfaceID(ifi), linuxInterfaceID(other))
}

func TestLinuxReasonCodeString(t *testing.T) {
	native, err := NewNative(NativeOptions{})
	require.NoError(t, err)
	reason, err := native.ReasonCodeString(linuxReasonProfileExists)
	require.NoError(t, err)
	require.NotEmpty(t, reason)
	_, err = native.ReasonCodeString(9999)
	require.Error(t, err)
}
