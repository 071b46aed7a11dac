package wlan

import (
	"strings"
)

// QuantizeSignal maps a 0-100 link quality to signal bars. Values outside
// that range yield zero bars.
func QuantizeSignal(quality uint32) uint8 {
	switch {
	case quality >= 80 && quality <= 100:
		return 4
	case quality >= 60 && quality < 80:
		return 3
	case quality >= 40 && quality < 60:
		return 2
	case quality >= 20 && quality < 40:
		return 1
	default:
		return 0
	}
}

func ClassifySecurity(authAlgorithm uint32) SecurityKind {
	switch authAlgorithm {
	case AuthAlgorithmOpen:
		return SecurityOpen
	case AuthAlgorithmWPA:
		return SecurityWPA
	case AuthAlgorithmWPAPSK:
		return SecurityWPAPSK
	case AuthAlgorithmRSNA:
		return SecurityWPA2
	case AuthAlgorithmRSNAPSK:
		return SecurityWPA2PSK
	default:
		return SecurityUnknown
	}
}

func ClassifyEncryption(cipherAlgorithm uint32) EncryptionKind {
	switch cipherAlgorithm {
	case CipherAlgorithmCCMP:
		return EncryptionAES
	case CipherAlgorithmTKIP:
		return EncryptionTKIP
	default:
		return EncryptionNone
	}
}

// DecodeSSID decodes SSID octets, replacing invalid UTF-8 sequences.
func DecodeSSID(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

// ClassifyNetwork converts a raw list entry. It reports false for entries
// with an invalid SSID length.
func ClassifyNetwork(raw RawNetwork) (NetworkRecord, bool) {
	ssid := raw.SSID.Bytes()
	if ssid == nil {
		return NetworkRecord{}, false
	}
	return NetworkRecord{
		SSID:          DecodeSSID(ssid),
		Secured:       raw.SecurityEnabled,
		Security:      ClassifySecurity(raw.AuthAlgorithm),
		Encryption:    ClassifyEncryption(raw.CipherAlgorithm),
		Bars:          QuantizeSignal(raw.SignalQuality),
		SignalQuality: raw.SignalQuality,
		ProfileName:   raw.ProfileName,
		Connectable:   raw.Connectable,
	}, true
}
