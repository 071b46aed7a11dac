//go:build windows

package winwlanapi

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	ClientVersion1 = 1
	ClientVersion2 = 2

	// InterfaceOpcode for WlanQueryInterface
	IntfOpcodeCurrentConnection = 7

	// NotificationSource for WlanRegisterNotification
	NotificationSourceNone = 0
	NotificationSourceACM  = 0x00000008
	NotificationSourceMSM  = 0x00000010

	// NotificationACM codes
	NotificationACMScanComplete          = 7
	NotificationACMScanFail              = 8
	NotificationACMConnectionStart       = 9
	NotificationACMConnectionComplete    = 10
	NotificationACMConnectionAttemptFail = 11
	NotificationACMDisconnecting         = 20
	NotificationACMDisconnected          = 21

	// NotificationMSM codes
	NotificationMSMConnected    = 4
	NotificationMSMDisconnected = 10

	// InterfaceState
	InterfaceStateNotReady           = 0
	InterfaceStateConnected          = 1
	InterfaceStateAdHocNetworkFormed = 2
	InterfaceStateDisconnecting      = 3
	InterfaceStateDisconnected       = 4
	InterfaceStateAssociating        = 5
	InterfaceStateDiscovering        = 6
	InterfaceStateAuthenticating     = 7

	// WLAN_CONNECTION_MODE
	ConnectionModeProfile = 0

	// DOT11_BSS_TYPE
	Dot11BSSTypeInfrastructure = 1

	// WlanGetAvailableNetworkList flags
	AvailableNetworkIncludeAllAdhocProfiles        = 0x00000001
	AvailableNetworkIncludeAllManualHiddenProfiles = 0x00000002

	// DOT11_SSID
	Dot11SSIDMaxLength = 32

	ProfileNameMaxLength = 256
	ReasonStringLength   = 512
)

type Dot11SSID struct {
	Length uint32
	SSID   [Dot11SSIDMaxLength]byte
}

type Dot11MacAddress [6]byte

type AssociationAttributes struct {
	SSID          Dot11SSID
	BSSType       uint32
	BSSID         Dot11MacAddress
	_             [2]byte // padding for 4-byte alignment
	PhyType       uint32
	PhyIndex      uint32
	SignalQuality uint32
	RxRate        uint32
	TxRate        uint32
}

type SecurityAttributes struct {
	SecurityEnabled int32 // Windows BOOL is 4 bytes
	OneXEnabled     int32
	AuthAlgorithm   uint32
	CipherAlgorithm uint32
}

type ConnectionAttributes struct {
	InterfaceState        uint32
	ConnectionMode        uint32
	ProfileName           [ProfileNameMaxLength]uint16
	AssociationAttributes AssociationAttributes
	SecurityAttributes    SecurityAttributes
}

type InterfaceInfo struct {
	InterfaceGUID        windows.GUID
	InterfaceDescription [256]uint16
	InterfaceState       uint32
}

type InterfaceInfoList struct {
	NumberOfItems uint32
	Index         uint32
	InterfaceInfo [1]InterfaceInfo
}

type AvailableNetwork struct {
	ProfileName            [ProfileNameMaxLength]uint16
	Dot11SSID              Dot11SSID
	BSSType                uint32
	NumberOfBssids         uint32
	NetworkConnectable     int32
	NotConnectableReason   uint32
	NumberOfPhyTypes       uint32
	PhyTypes               [8]uint32
	MorePhyTypes           int32
	SignalQuality          uint32
	SecurityEnabled        int32
	DefaultAuthAlgorithm   uint32
	DefaultCipherAlgorithm uint32
	Flags                  uint32
	Reserved               uint32
}

type AvailableNetworkList struct {
	NumberOfItems uint32
	Index         uint32
	Network       [1]AvailableNetwork
}

type ProfileInfo struct {
	ProfileName [ProfileNameMaxLength]uint16
	Flags       uint32
}

type ProfileInfoList struct {
	NumberOfItems uint32
	Index         uint32
	ProfileInfo   [1]ProfileInfo
}

type ConnectionParameters struct {
	ConnectionMode   uint32
	Profile          *uint16
	SSID             *Dot11SSID
	DesiredBSSIDList uintptr
	BSSType          uint32
	Flags            uint32
}

type NotificationData struct {
	NotificationSource uint32
	NotificationCode   uint32
	InterfaceGUID      windows.GUID
	DataSize           uint32
	Data               uintptr
}

// MSMNotificationData is the payload of media specific module notifications.
type MSMNotificationData struct {
	ConnectionMode  uint32
	ProfileName     [ProfileNameMaxLength]uint16
	SSID            Dot11SSID
	BSSType         uint32
	MacAddr         Dot11MacAddress
	_               [2]byte
	SecurityEnabled int32
	FirstPeer       int32
	LastPeer        int32
	ReasonCode      uint32
}

// ConnectionNotificationData is the payload of ACM connection notifications.
type ConnectionNotificationData struct {
	ConnectionMode  uint32
	ProfileName     [ProfileNameMaxLength]uint16
	SSID            Dot11SSID
	BSSType         uint32
	SecurityEnabled int32
	ReasonCode      uint32
	Flags           uint32
	ProfileXml      [1]uint16
}

// NotificationCallback is the type for notification callback functions.
// Use syscall.NewCallback to create a callback from a Go function.
type NotificationCallback func(data *NotificationData, context uintptr) uintptr

// Load reports whether wlanapi.dll and its exports can be resolved.
func Load() error {
	err := modwlanapi.Load()
	if err != nil {
		return err
	}
	return procWlanOpenHandle.Find()
}

func OpenHandle(clientVersion uint32) (windows.Handle, uint32, error) {
	var negotiatedVersion uint32
	var handle windows.Handle
	ret := wlanOpenHandle(clientVersion, 0, &negotiatedVersion, &handle)
	if ret != 0 {
		return 0, 0, os.NewSyscallError("WlanOpenHandle", windows.Errno(ret))
	}
	return handle, negotiatedVersion, nil
}

func CloseHandle(handle windows.Handle) error {
	ret := wlanCloseHandle(handle, 0)
	if ret != 0 {
		return os.NewSyscallError("WlanCloseHandle", windows.Errno(ret))
	}
	return nil
}

func EnumInterfaces(handle windows.Handle) ([]InterfaceInfo, error) {
	var list *InterfaceInfoList
	ret := wlanEnumInterfaces(handle, 0, &list)
	if ret != 0 {
		return nil, os.NewSyscallError("WlanEnumInterfaces", windows.Errno(ret))
	}
	if list == nil {
		panic("WlanEnumInterfaces succeeded without a list")
	}
	defer wlanFreeMemory(uintptr(unsafe.Pointer(list)))

	if list.NumberOfItems == 0 {
		return nil, nil
	}

	interfaces := unsafe.Slice(&list.InterfaceInfo[0], list.NumberOfItems)
	result := make([]InterfaceInfo, list.NumberOfItems)
	copy(result, interfaces)
	return result, nil
}

func QueryCurrentConnection(handle windows.Handle, interfaceGUID *windows.GUID) (*ConnectionAttributes, error) {
	var dataSize uint32
	var data uintptr
	var opcodeValueType uint32

	ret := wlanQueryInterface(handle, interfaceGUID, IntfOpcodeCurrentConnection, 0, &dataSize, &data, &opcodeValueType)
	if ret != 0 {
		return nil, os.NewSyscallError("WlanQueryInterface", windows.Errno(ret))
	}
	if data == 0 {
		panic("WlanQueryInterface succeeded without data")
	}
	defer wlanFreeMemory(data)

	attrs := (*ConnectionAttributes)(unsafe.Pointer(data))
	result := *attrs
	return &result, nil
}

func RegisterNotification(handle windows.Handle, notificationSource uint32, ignoreDuplicate bool, callback uintptr, context uintptr) error {
	var prevSource uint32
	ret := wlanRegisterNotification(handle, notificationSource, ignoreDuplicate, callback, context, 0, &prevSource)
	if ret != 0 {
		return os.NewSyscallError("WlanRegisterNotification", windows.Errno(ret))
	}
	return nil
}

func UnregisterNotification(handle windows.Handle) error {
	return RegisterNotification(handle, NotificationSourceNone, false, 0, 0)
}

func Scan(handle windows.Handle, interfaceGUID *windows.GUID) error {
	ret := wlanScan(handle, interfaceGUID, nil, 0, 0)
	if ret != 0 {
		return os.NewSyscallError("WlanScan", windows.Errno(ret))
	}
	return nil
}

func GetAvailableNetworkList(handle windows.Handle, interfaceGUID *windows.GUID, flags uint32) ([]AvailableNetwork, error) {
	var list *AvailableNetworkList
	ret := wlanGetAvailableNetworkList(handle, interfaceGUID, flags, 0, &list)
	if ret != 0 {
		return nil, os.NewSyscallError("WlanGetAvailableNetworkList", windows.Errno(ret))
	}
	if list == nil {
		panic("WlanGetAvailableNetworkList succeeded without a list")
	}
	defer wlanFreeMemory(uintptr(unsafe.Pointer(list)))

	if list.NumberOfItems == 0 {
		return nil, nil
	}

	networks := unsafe.Slice(&list.Network[0], list.NumberOfItems)
	result := make([]AvailableNetwork, list.NumberOfItems)
	copy(result, networks)
	return result, nil
}

// Connect connects using a stored profile. The SSID is optional.
func Connect(handle windows.Handle, interfaceGUID *windows.GUID, profileName string, ssid *Dot11SSID) error {
	profile, err := windows.UTF16PtrFromString(profileName)
	if err != nil {
		return err
	}
	parameters := ConnectionParameters{
		ConnectionMode: ConnectionModeProfile,
		Profile:        profile,
		SSID:           ssid,
		BSSType:        Dot11BSSTypeInfrastructure,
	}
	ret := wlanConnect(handle, interfaceGUID, &parameters, 0)
	runtime.KeepAlive(profile)
	runtime.KeepAlive(ssid)
	if ret != 0 {
		return os.NewSyscallError("WlanConnect", windows.Errno(ret))
	}
	return nil
}

func Disconnect(handle windows.Handle, interfaceGUID *windows.GUID) error {
	ret := wlanDisconnect(handle, interfaceGUID, 0)
	if ret != 0 {
		return os.NewSyscallError("WlanDisconnect", windows.Errno(ret))
	}
	return nil
}

// SetProfile installs a profile document. The returned reason code is only
// meaningful when the call failed.
func SetProfile(handle windows.Handle, interfaceGUID *windows.GUID, profileXML string, overwrite bool) (uint32, error) {
	document, err := windows.UTF16PtrFromString(profileXML)
	if err != nil {
		return 0, err
	}
	var reasonCode uint32
	ret := wlanSetProfile(handle, interfaceGUID, 0, document, nil, overwrite, 0, &reasonCode)
	runtime.KeepAlive(document)
	if ret != 0 {
		return reasonCode, os.NewSyscallError("WlanSetProfile", windows.Errno(ret))
	}
	return 0, nil
}

func GetProfile(handle windows.Handle, interfaceGUID *windows.GUID, profileName string) (string, error) {
	name, err := windows.UTF16PtrFromString(profileName)
	if err != nil {
		return "", err
	}
	var document *uint16
	var flags uint32
	var grantedAccess uint32
	ret := wlanGetProfile(handle, interfaceGUID, name, 0, &document, &flags, &grantedAccess)
	runtime.KeepAlive(name)
	if ret != 0 {
		return "", os.NewSyscallError("WlanGetProfile", windows.Errno(ret))
	}
	if document == nil {
		panic("WlanGetProfile succeeded without a document")
	}
	defer wlanFreeMemory(uintptr(unsafe.Pointer(document)))
	return windows.UTF16PtrToString(document), nil
}

func GetProfileList(handle windows.Handle, interfaceGUID *windows.GUID) ([]ProfileInfo, error) {
	var list *ProfileInfoList
	ret := wlanGetProfileList(handle, interfaceGUID, 0, &list)
	if ret != 0 {
		return nil, os.NewSyscallError("WlanGetProfileList", windows.Errno(ret))
	}
	if list == nil {
		panic("WlanGetProfileList succeeded without a list")
	}
	defer wlanFreeMemory(uintptr(unsafe.Pointer(list)))

	if list.NumberOfItems == 0 {
		return nil, nil
	}

	profiles := unsafe.Slice(&list.ProfileInfo[0], list.NumberOfItems)
	result := make([]ProfileInfo, list.NumberOfItems)
	copy(result, profiles)
	return result, nil
}

func DeleteProfile(handle windows.Handle, interfaceGUID *windows.GUID, profileName string) error {
	name, err := windows.UTF16PtrFromString(profileName)
	if err != nil {
		return err
	}
	ret := wlanDeleteProfile(handle, interfaceGUID, name, 0)
	runtime.KeepAlive(name)
	if ret != 0 {
		return os.NewSyscallError("WlanDeleteProfile", windows.Errno(ret))
	}
	return nil
}

func ReasonCodeToString(reasonCode uint32) (string, error) {
	var buffer [ReasonStringLength]uint16
	ret := wlanReasonCodeToString(reasonCode, ReasonStringLength, &buffer[0], 0)
	if ret != 0 {
		return "", os.NewSyscallError("WlanReasonCodeToString", windows.Errno(ret))
	}
	return windows.UTF16ToString(buffer[:]), nil
}

// Bytes returns the bytes of an SSID clamped to the maximum length.
func (s Dot11SSID) Bytes() []byte {
	length := s.Length
	if length > Dot11SSIDMaxLength {
		length = Dot11SSIDMaxLength
	}
	return s.SSID[:length]
}
