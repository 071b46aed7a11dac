package wlan

import (
	"github.com/google/uuid"
)

type InterfaceID = uuid.UUID

type InterfaceState uint8

const (
	StateUnavailable InterfaceState = iota
	StateNotReady
	StateConnected
	StateAdHocFormed
	StateDisconnecting
	StateDisconnected
	StateAssociating
	StateDiscovering
	StateAuthenticating
)

func (s InterfaceState) String() string {
	switch s {
	case StateNotReady:
		return "not ready"
	case StateConnected:
		return "connected"
	case StateAdHocFormed:
		return "ad hoc network formed"
	case StateDisconnecting:
		return "disconnecting"
	case StateDisconnected:
		return "disconnected"
	case StateAssociating:
		return "associating"
	case StateDiscovering:
		return "discovering"
	case StateAuthenticating:
		return "authenticating"
	default:
		return "unavailable"
	}
}

// ConvertInterfaceState maps a raw OS interface state. Unrecognized values
// are Unavailable.
func ConvertInterfaceState(raw uint32) InterfaceState {
	switch raw {
	case rawStateNotReady:
		return StateNotReady
	case rawStateConnected:
		return StateConnected
	case rawStateAdHocFormed:
		return StateAdHocFormed
	case rawStateDisconnecting:
		return StateDisconnecting
	case rawStateDisconnected:
		return StateDisconnected
	case rawStateAssociating:
		return StateAssociating
	case rawStateDiscovering:
		return StateDiscovering
	case rawStateAuthenticating:
		return StateAuthenticating
	default:
		return StateUnavailable
	}
}

type InterfaceDescriptor struct {
	ID          InterfaceID
	Description string
	State       InterfaceState
}

type SecurityKind uint8

const (
	SecurityUnknown SecurityKind = iota
	SecurityOpen
	SecurityWPA
	SecurityWPA2
	SecurityWPAPSK
	SecurityWPA2PSK
)

// ProfileString returns the authentication value used in profile documents.
// Unknown renders as WPA2PSK, the only secured mode profiles are created for.
func (s SecurityKind) ProfileString() string {
	switch s {
	case SecurityOpen:
		return "open"
	case SecurityWPA:
		return "WPA"
	case SecurityWPA2:
		return "WPA2"
	case SecurityWPAPSK:
		return "WPAPSK"
	default:
		return "WPA2PSK"
	}
}

func (s SecurityKind) String() string {
	switch s {
	case SecurityOpen:
		return "Open"
	case SecurityWPA:
		return "WPA"
	case SecurityWPA2:
		return "WPA2"
	case SecurityWPAPSK:
		return "WPAPSK"
	case SecurityWPA2PSK:
		return "WPA2PSK"
	default:
		return "Unknown"
	}
}

// ParseSecurityKind reads an authentication value from a profile document.
func ParseSecurityKind(value string) SecurityKind {
	switch value {
	case "open":
		return SecurityOpen
	case "WPA":
		return SecurityWPA
	case "WPA2":
		return SecurityWPA2
	case "WPAPSK":
		return SecurityWPAPSK
	case "WPA2PSK":
		return SecurityWPA2PSK
	default:
		return SecurityUnknown
	}
}

type EncryptionKind uint8

const (
	EncryptionNone EncryptionKind = iota
	EncryptionAES
	EncryptionTKIP
)

func (e EncryptionKind) ProfileString() string {
	switch e {
	case EncryptionAES:
		return "AES"
	case EncryptionTKIP:
		return "TKIP"
	default:
		return "none"
	}
}

func (e EncryptionKind) String() string {
	switch e {
	case EncryptionAES:
		return "AES"
	case EncryptionTKIP:
		return "TKIP"
	default:
		return "None"
	}
}

func ParseEncryptionKind(value string) EncryptionKind {
	switch value {
	case "AES":
		return EncryptionAES
	case "TKIP":
		return EncryptionTKIP
	default:
		return EncryptionNone
	}
}

type NetworkRecord struct {
	SSID          string
	Secured       bool
	Security      SecurityKind
	Encryption    EncryptionKind
	Bars          uint8
	SignalQuality uint32
	ProfileName   string
	Connectable   bool
}
