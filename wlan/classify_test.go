package wlan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantizeSignal(t *testing.T) {
	for quality, bars := range map[uint32]uint8{
		0: 0, 19: 0, 20: 1, 39: 1, 40: 2, 59: 2,
		60: 3, 79: 3, 80: 4, 100: 4, 101: 0,
	} {
		require.Equal(t, bars, QuantizeSignal(quality), "quality %d", quality)
	}
}

func TestQuantizeSignalMonotonic(t *testing.T) {
	var previous uint8
	for quality := uint32(0); quality <= 100; quality++ {
		bars := QuantizeSignal(quality)
		require.LessOrEqual(t, bars, uint8(4))
		require.GreaterOrEqual(t, bars, previous, "quality %d", quality)
		previous = bars
	}
}

func TestClassifySecurity(t *testing.T) {
	for algorithm, kind := range map[uint32]SecurityKind{
		AuthAlgorithmOpen:    SecurityOpen,
		AuthAlgorithmShared:  SecurityUnknown,
		AuthAlgorithmWPA:     SecurityWPA,
		AuthAlgorithmWPAPSK:  SecurityWPAPSK,
		AuthAlgorithmWPANone: SecurityUnknown,
		AuthAlgorithmRSNA:    SecurityWPA2,
		AuthAlgorithmRSNAPSK: SecurityWPA2PSK,
		0x80000000:           SecurityUnknown,
	} {
		require.Equal(t, kind, ClassifySecurity(algorithm), "algorithm %d", algorithm)
	}
}

func TestClassifyEncryption(t *testing.T) {
	require.Equal(t, EncryptionAES, ClassifyEncryption(CipherAlgorithmCCMP))
	require.Equal(t, EncryptionTKIP, ClassifyEncryption(CipherAlgorithmTKIP))
	require.Equal(t, EncryptionNone, ClassifyEncryption(CipherAlgorithmNone))
	require.Equal(t, EncryptionNone, ClassifyEncryption(CipherAlgorithmWEP))
}

func TestClassifyNetworkSSIDLength(t *testing.T) {
	record, loaded := ClassifyNetwork(rawNetwork(strings.Repeat("a", 32), 50, AuthAlgorithmRSNAPSK, CipherAlgorithmCCMP))
	require.True(t, loaded)
	require.Len(t, record.SSID, 32)
	require.Equal(t, uint8(2), record.Bars)
	require.True(t, record.Secured)

	_, loaded = ClassifyNetwork(rawNetwork(strings.Repeat("a", 33), 50, AuthAlgorithmOpen, CipherAlgorithmNone))
	require.False(t, loaded)
}

func TestDecodeSSIDPermissive(t *testing.T) {
	require.Equal(t, "caf�", DecodeSSID([]byte{'c', 'a', 'f', 0xe9}))
	require.Equal(t, "café", DecodeSSID([]byte("café")))
}

func TestConvertInterfaceState(t *testing.T) {
	require.Equal(t, StateConnected, ConvertInterfaceState(rawStateConnected))
	require.Equal(t, StateAuthenticating, ConvertInterfaceState(rawStateAuthenticating))
	require.Equal(t, StateNotReady, ConvertInterfaceState(rawStateNotReady))
	require.Equal(t, StateUnavailable, ConvertInterfaceState(42))
}
