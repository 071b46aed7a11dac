//go:build windows

package wlan

import (
	"errors"
	"sync"
	"unsafe"

	E "github.com/sagernet/sing-wlan/common/exceptions"
	"github.com/sagernet/sing-wlan/common/winwlanapi"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

var (
	callbackOnce    sync.Once
	callbackPointer uintptr
	callbackAccess  sync.RWMutex
	callbackNextID  uintptr
	callbacks       = make(map[uintptr]NotificationCallback)
)

// notificationTrampoline runs on an OS thread pool thread. It never blocks on
// the callback registry.
func notificationTrampoline(data *winwlanapi.NotificationData, context uintptr) uintptr {
	if !callbackAccess.TryRLock() {
		return 0
	}
	callback := callbacks[context]
	callbackAccess.RUnlock()
	if callback != nil {
		callback(convertNotification(data))
	}
	return 0
}

func convertNotification(data *winwlanapi.NotificationData) *RawNotification {
	if data == nil {
		return nil
	}
	notification := &RawNotification{
		Source:      data.NotificationSource,
		Code:        data.NotificationCode,
		InterfaceID: interfaceIDFromGUID(data.InterfaceGUID),
	}
	switch data.NotificationSource {
	case winwlanapi.NotificationSourceACM:
		payload := &NotificationPayload{}
		connectionSize := uint32(unsafe.Offsetof(winwlanapi.ConnectionNotificationData{}.ProfileXml))
		switch {
		case data.Data != 0 && data.DataSize >= connectionSize:
			connection := (*winwlanapi.ConnectionNotificationData)(unsafe.Pointer(data.Data))
			payload.ReasonCode = connection.ReasonCode
			payload.ProfileName = windows.UTF16ToString(connection.ProfileName[:])
		case data.Data != 0 && data.DataSize >= 4:
			payload.ReasonCode = *(*uint32)(unsafe.Pointer(data.Data))
		}
		notification.Payload = payload
	case winwlanapi.NotificationSourceMSM:
		if data.Data != 0 && data.DataSize >= uint32(unsafe.Sizeof(winwlanapi.MSMNotificationData{})) {
			msm := (*winwlanapi.MSMNotificationData)(unsafe.Pointer(data.Data))
			notification.Payload = &NotificationPayload{
				ReasonCode:  msm.ReasonCode,
				ProfileName: windows.UTF16ToString(msm.ProfileName[:]),
			}
		}
	}
	return notification
}

func interfaceIDFromGUID(guid windows.GUID) InterfaceID {
	var id uuid.UUID
	id[0] = byte(guid.Data1 >> 24)
	id[1] = byte(guid.Data1 >> 16)
	id[2] = byte(guid.Data1 >> 8)
	id[3] = byte(guid.Data1)
	id[4] = byte(guid.Data2 >> 8)
	id[5] = byte(guid.Data2)
	id[6] = byte(guid.Data3 >> 8)
	id[7] = byte(guid.Data3)
	copy(id[8:], guid.Data4[:])
	return id
}

func guidFromInterfaceID(id InterfaceID) *windows.GUID {
	guid := &windows.GUID{
		Data1: uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3]),
		Data2: uint16(id[4])<<8 | uint16(id[5]),
		Data3: uint16(id[6])<<8 | uint16(id[7]),
	}
	copy(guid.Data4[:], id[8:])
	return guid
}

func statusError(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return NewStatusError(op, uint32(errno), err)
	}
	return NewStatusError(op, StatusInvalidParameter, err)
}

type windowsNative struct {
	access    sync.Mutex
	handle    windows.Handle
	contextID uintptr
}

func NewNative(options NativeOptions) (Native, error) {
	err := winwlanapi.Load()
	if err != nil {
		return nil, E.Cause(err, "load wlanapi.dll")
	}
	return &windowsNative{}, nil
}

func (n *windowsNative) currentHandle() (windows.Handle, error) {
	n.access.Lock()
	defer n.access.Unlock()
	if n.handle == 0 {
		return 0, ErrSessionClosed
	}
	return n.handle, nil
}

func (n *windowsNative) OpenHandle(clientVersion uint32) (uint32, error) {
	handle, negotiatedVersion, err := winwlanapi.OpenHandle(clientVersion)
	if err != nil {
		return 0, statusError("WlanOpenHandle", err)
	}
	n.access.Lock()
	n.handle = handle
	n.access.Unlock()
	return negotiatedVersion, nil
}

func (n *windowsNative) CloseHandle() error {
	n.access.Lock()
	handle := n.handle
	n.handle = 0
	n.access.Unlock()
	n.detach()
	if handle == 0 {
		return nil
	}
	err := winwlanapi.CloseHandle(handle)
	if err != nil {
		return statusError("WlanCloseHandle", err)
	}
	return nil
}

func (n *windowsNative) RegisterNotification(sources uint32, ignoreDuplicate bool, callback NotificationCallback) error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	callbackOnce.Do(func() {
		callbackPointer = windows.NewCallback(notificationTrampoline)
	})
	n.detach()
	callbackAccess.Lock()
	callbackNextID++
	contextID := callbackNextID
	callbacks[contextID] = callback
	callbackAccess.Unlock()
	err = winwlanapi.RegisterNotification(handle, sources, ignoreDuplicate, callbackPointer, contextID)
	if err != nil {
		callbackAccess.Lock()
		delete(callbacks, contextID)
		callbackAccess.Unlock()
		return statusError("WlanRegisterNotification", err)
	}
	n.access.Lock()
	n.contextID = contextID
	n.access.Unlock()
	return nil
}

func (n *windowsNative) UnregisterNotification() error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	err = winwlanapi.UnregisterNotification(handle)
	n.detach()
	if err != nil {
		return statusError("WlanRegisterNotification", err)
	}
	return nil
}

func (n *windowsNative) detach() {
	n.access.Lock()
	contextID := n.contextID
	n.contextID = 0
	n.access.Unlock()
	if contextID == 0 {
		return
	}
	callbackAccess.Lock()
	delete(callbacks, contextID)
	callbackAccess.Unlock()
}

func (n *windowsNative) EnumInterfaces() ([]RawInterface, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return nil, err
	}
	interfaces, err := winwlanapi.EnumInterfaces(handle)
	if err != nil {
		return nil, statusError("WlanEnumInterfaces", err)
	}
	rawInterfaces := make([]RawInterface, 0, len(interfaces))
	for _, info := range interfaces {
		rawInterfaces = append(rawInterfaces, RawInterface{
			ID:          interfaceIDFromGUID(info.InterfaceGUID),
			Description: windows.UTF16ToString(info.InterfaceDescription[:]),
			State:       info.InterfaceState,
		})
	}
	return rawInterfaces, nil
}

func (n *windowsNative) Scan(id InterfaceID) error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	err = winwlanapi.Scan(handle, guidFromInterfaceID(id))
	if err != nil {
		return statusError("WlanScan", err)
	}
	return nil
}

func (n *windowsNative) AvailableNetworks(id InterfaceID) ([]RawNetwork, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return nil, err
	}
	networks, err := winwlanapi.GetAvailableNetworkList(handle, guidFromInterfaceID(id), 0)
	if err != nil {
		return nil, statusError("WlanGetAvailableNetworkList", err)
	}
	rawNetworks := make([]RawNetwork, 0, len(networks))
	for _, network := range networks {
		rawNetworks = append(rawNetworks, RawNetwork{
			ProfileName:     windows.UTF16ToString(network.ProfileName[:]),
			SSID:            Dot11SSID(network.Dot11SSID),
			Connectable:     network.NetworkConnectable != 0,
			SignalQuality:   network.SignalQuality,
			SecurityEnabled: network.SecurityEnabled != 0,
			AuthAlgorithm:   network.DefaultAuthAlgorithm,
			CipherAlgorithm: network.DefaultCipherAlgorithm,
		})
	}
	return rawNetworks, nil
}

func (n *windowsNative) Connect(id InterfaceID, parameters ConnectionParameters) error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	var ssid *winwlanapi.Dot11SSID
	if parameters.SSID != nil {
		rawSSID := winwlanapi.Dot11SSID(*parameters.SSID)
		ssid = &rawSSID
	}
	err = winwlanapi.Connect(handle, guidFromInterfaceID(id), parameters.ProfileName, ssid)
	if err != nil {
		return statusError("WlanConnect", err)
	}
	return nil
}

func (n *windowsNative) Disconnect(id InterfaceID) error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	err = winwlanapi.Disconnect(handle, guidFromInterfaceID(id))
	if err != nil {
		return statusError("WlanDisconnect", err)
	}
	return nil
}

func (n *windowsNative) QueryCurrentConnection(id InterfaceID) (ConnectionAttributes, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return ConnectionAttributes{}, err
	}
	attributes, err := winwlanapi.QueryCurrentConnection(handle, guidFromInterfaceID(id))
	if err != nil {
		return ConnectionAttributes{}, statusError("WlanQueryInterface", err)
	}
	return ConnectionAttributes{
		State:           attributes.InterfaceState,
		ProfileName:     windows.UTF16ToString(attributes.ProfileName[:]),
		SSID:            Dot11SSID(attributes.AssociationAttributes.SSID),
		SignalQuality:   attributes.AssociationAttributes.SignalQuality,
		SecurityEnabled: attributes.SecurityAttributes.SecurityEnabled != 0,
		AuthAlgorithm:   attributes.SecurityAttributes.AuthAlgorithm,
		CipherAlgorithm: attributes.SecurityAttributes.CipherAlgorithm,
	}, nil
}

func (n *windowsNative) SetProfile(id InterfaceID, document string, overwrite bool) (uint32, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return 0, err
	}
	reasonCode, err := winwlanapi.SetProfile(handle, guidFromInterfaceID(id), document, overwrite)
	if err != nil {
		return reasonCode, statusError("WlanSetProfile", err)
	}
	return 0, nil
}

func (n *windowsNative) ReasonCodeString(reasonCode uint32) (string, error) {
	reason, err := winwlanapi.ReasonCodeToString(reasonCode)
	if err != nil {
		return "", statusError("WlanReasonCodeToString", err)
	}
	return reason, nil
}

func (n *windowsNative) ProfileList(id InterfaceID) ([]ProfileInfo, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return nil, err
	}
	profiles, err := winwlanapi.GetProfileList(handle, guidFromInterfaceID(id))
	if err != nil {
		return nil, statusError("WlanGetProfileList", err)
	}
	profileInfos := make([]ProfileInfo, 0, len(profiles))
	for _, profile := range profiles {
		profileInfos = append(profileInfos, ProfileInfo{
			Name:  windows.UTF16ToString(profile.ProfileName[:]),
			Flags: profile.Flags,
		})
	}
	return profileInfos, nil
}

func (n *windowsNative) Profile(id InterfaceID, name string) (string, error) {
	handle, err := n.currentHandle()
	if err != nil {
		return "", err
	}
	document, err := winwlanapi.GetProfile(handle, guidFromInterfaceID(id), name)
	if err != nil {
		return "", statusError("WlanGetProfile", err)
	}
	return document, nil
}

func (n *windowsNative) DeleteProfile(id InterfaceID, name string) error {
	handle, err := n.currentHandle()
	if err != nil {
		return err
	}
	err = winwlanapi.DeleteProfile(handle, guidFromInterfaceID(id), name)
	if err != nil {
		return statusError("WlanDeleteProfile", err)
	}
	return nil
}
