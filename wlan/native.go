package wlan

import (
	"time"
)

const (
	NotificationSourceNone = 0
	NotificationSourceACM  = 0x00000008
	NotificationSourceMSM  = 0x00000010
	NotificationSourceAll  = NotificationSourceACM | NotificationSourceMSM
)

// Auto configuration module codes.
const (
	ACMScanComplete          = 7
	ACMScanFail              = 8
	ACMConnectionStart       = 9
	ACMConnectionComplete    = 10
	ACMConnectionAttemptFail = 11
	ACMDisconnecting         = 20
	ACMDisconnected          = 21
)

// ReasonInvalidPassword is the media specific reason reported when the shared
// key was rejected.
const ReasonInvalidPassword = 11

// Raw interface states as reported by the OS.
const (
	rawStateNotReady       = 0
	rawStateConnected      = 1
	rawStateAdHocFormed    = 2
	rawStateDisconnecting  = 3
	rawStateDisconnected   = 4
	rawStateAssociating    = 5
	rawStateDiscovering    = 6
	rawStateAuthenticating = 7
)

// DOT11_AUTH_ALGORITHM
const (
	AuthAlgorithmOpen    = 1
	AuthAlgorithmShared  = 2
	AuthAlgorithmWPA     = 3
	AuthAlgorithmWPAPSK  = 4
	AuthAlgorithmWPANone = 5
	AuthAlgorithmRSNA    = 6
	AuthAlgorithmRSNAPSK = 7
)

// DOT11_CIPHER_ALGORITHM
const (
	CipherAlgorithmNone = 0x00
	CipherAlgorithmWEP  = 0x01
	CipherAlgorithmTKIP = 0x02
	CipherAlgorithmCCMP = 0x04
)

const (
	ConnectionModeProfile = 0
	BSSTypeInfrastructure = 1
)

// OS status codes the engine interprets.
const (
	StatusSuccess          = 0
	StatusAccessDenied     = 5
	StatusNotSupported     = 50
	StatusInvalidParameter = 87
	StatusAlreadyExists    = 183
	StatusNotFound         = 1168
	StatusBadProfile       = 1206
	StatusInvalidState     = 5023
)

const (
	ClientVersionXP    = 1
	ClientVersionVista = 2

	SSIDMaxLength = 32
)

type Dot11SSID struct {
	Length uint32
	SSID   [SSIDMaxLength]byte
}

func NewDot11SSID(ssid string) (Dot11SSID, bool) {
	var raw Dot11SSID
	if len(ssid) > SSIDMaxLength {
		return raw, false
	}
	raw.Length = uint32(len(ssid))
	copy(raw.SSID[:], ssid)
	return raw, true
}

// Bytes returns the SSID octets, or nil when the declared length is invalid.
func (s Dot11SSID) Bytes() []byte {
	if s.Length > SSIDMaxLength {
		return nil
	}
	return s.SSID[:s.Length]
}

type RawInterface struct {
	ID          InterfaceID
	Description string
	State       uint32
}

type RawNetwork struct {
	ProfileName     string
	SSID            Dot11SSID
	Connectable     bool
	SignalQuality   uint32
	SecurityEnabled bool
	AuthAlgorithm   uint32
	CipherAlgorithm uint32
}

type ConnectionParameters struct {
	Mode        uint32
	ProfileName string
	SSID        *Dot11SSID
	BSSType     uint32
}

type ConnectionAttributes struct {
	State           uint32
	ProfileName     string
	SSID            Dot11SSID
	SignalQuality   uint32
	SecurityEnabled bool
	AuthAlgorithm   uint32
	CipherAlgorithm uint32
}

type ProfileInfo struct {
	Name  string
	Flags uint32
}

type NotificationPayload struct {
	ReasonCode  uint32
	ProfileName string
}

type RawNotification struct {
	Source      uint32
	Code        uint32
	InterfaceID InterfaceID
	Payload     *NotificationPayload
}

// NotificationCallback receives OS notifications on an arbitrary goroutine or
// OS thread. A nil notification means the OS delivered no event data.
type NotificationCallback func(notification *RawNotification)

// Native is the boundary to the platform wireless API. Implementations copy
// every OS buffer into Go values and release it before returning.
type Native interface {
	OpenHandle(clientVersion uint32) (negotiatedVersion uint32, err error)
	CloseHandle() error
	RegisterNotification(sources uint32, ignoreDuplicate bool, callback NotificationCallback) error
	UnregisterNotification() error
	EnumInterfaces() ([]RawInterface, error)
	Scan(id InterfaceID) error
	AvailableNetworks(id InterfaceID) ([]RawNetwork, error)
	Connect(id InterfaceID, parameters ConnectionParameters) error
	Disconnect(id InterfaceID) error
	QueryCurrentConnection(id InterfaceID) (ConnectionAttributes, error)
	SetProfile(id InterfaceID, document string, overwrite bool) (reasonCode uint32, err error)
	ReasonCodeString(reasonCode uint32) (string, error)
	ProfileList(id InterfaceID) ([]ProfileInfo, error)
	Profile(id InterfaceID, name string) (string, error)
	DeleteProfile(id InterfaceID, name string) error
}

type NativeOptions struct {
	// ProfileStore is the profile database path for platforms without an OS
	// profile store.
	ProfileStore   string
	ConnectTimeout time.Duration
	ScanTimeout    time.Duration
}

func (o *NativeOptions) applyDefaults() {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 15 * time.Second
	}
	if o.ScanTimeout <= 0 {
		o.ScanTimeout = 10 * time.Second
	}
	if o.ProfileStore == "" {
		o.ProfileStore = "wlan_data/profiles.db"
	}
}
