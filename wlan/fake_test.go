package wlan

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

type fakeNative struct {
	access sync.Mutex
	calls  map[string]int

	openErr     error
	closeErr    error
	registerErr error
	enumErr     error
	scanErr     error
	networksErr error
	connectErr  error
	queryErr    error

	interfaces []RawInterface
	networks   []RawNetwork
	connection ConnectionAttributes

	profiles      map[string]string
	setReasonCode uint32
	setErr        error
	reasons       map[uint32]string

	callback  NotificationCallback
	connected []ConnectionParameters
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		calls:    make(map[string]int),
		profiles: make(map[string]string),
		reasons:  make(map[uint32]string),
	}
}

func (f *fakeNative) record(name string) {
	f.access.Lock()
	f.calls[name]++
	f.access.Unlock()
}

func (f *fakeNative) count(name string) int {
	f.access.Lock()
	defer f.access.Unlock()
	return f.calls[name]
}

func (f *fakeNative) notify(notification *RawNotification) {
	f.access.Lock()
	callback := f.callback
	f.access.Unlock()
	if callback != nil {
		callback(notification)
	}
}

func (f *fakeNative) OpenHandle(clientVersion uint32) (uint32, error) {
	f.record("OpenHandle")
	if f.openErr != nil {
		return 0, f.openErr
	}
	return clientVersion, nil
}

func (f *fakeNative) CloseHandle() error {
	f.record("CloseHandle")
	return f.closeErr
}

func (f *fakeNative) RegisterNotification(sources uint32, ignoreDuplicate bool, callback NotificationCallback) error {
	f.record("RegisterNotification")
	if f.registerErr != nil {
		return f.registerErr
	}
	f.access.Lock()
	f.callback = callback
	f.access.Unlock()
	return nil
}

func (f *fakeNative) UnregisterNotification() error {
	f.record("UnregisterNotification")
	return nil
}

func (f *fakeNative) EnumInterfaces() ([]RawInterface, error) {
	f.record("EnumInterfaces")
	return f.interfaces, f.enumErr
}

func (f *fakeNative) Scan(id InterfaceID) error {
	f.record("Scan")
	return f.scanErr
}

func (f *fakeNative) AvailableNetworks(id InterfaceID) ([]RawNetwork, error) {
	f.record("AvailableNetworks")
	return f.networks, f.networksErr
}

func (f *fakeNative) Connect(id InterfaceID, parameters ConnectionParameters) error {
	f.record("Connect")
	if f.connectErr != nil {
		return f.connectErr
	}
	f.access.Lock()
	f.connected = append(f.connected, parameters)
	f.access.Unlock()
	return nil
}

func (f *fakeNative) Disconnect(id InterfaceID) error {
	f.record("Disconnect")
	return nil
}

func (f *fakeNative) QueryCurrentConnection(id InterfaceID) (ConnectionAttributes, error) {
	f.record("QueryCurrentConnection")
	return f.connection, f.queryErr
}

func (f *fakeNative) SetProfile(id InterfaceID, document string, overwrite bool) (uint32, error) {
	f.record("SetProfile")
	if f.setErr != nil {
		return f.setReasonCode, f.setErr
	}
	profile, err := ParseProfile(document)
	if err != nil {
		return 1, NewStatusError("set profile", StatusBadProfile, err)
	}
	f.access.Lock()
	defer f.access.Unlock()
	if _, exists := f.profiles[profile.Name]; exists && !overwrite {
		return 2, NewStatusError("set profile", StatusAlreadyExists, ErrProfileExists)
	}
	f.profiles[profile.Name] = document
	return 0, nil
}

func (f *fakeNative) ReasonCodeString(reasonCode uint32) (string, error) {
	f.record("ReasonCodeString")
	reason, loaded := f.reasons[reasonCode]
	if !loaded {
		return "", NewStatusError("reason", StatusInvalidParameter, nil)
	}
	return reason, nil
}

func (f *fakeNative) ProfileList(id InterfaceID) ([]ProfileInfo, error) {
	f.record("ProfileList")
	f.access.Lock()
	defer f.access.Unlock()
	names := make([]string, 0, len(f.profiles))
	for name := range f.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	profiles := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, ProfileInfo{Name: name})
	}
	return profiles, nil
}

func (f *fakeNative) Profile(id InterfaceID, name string) (string, error) {
	f.record("Profile")
	f.access.Lock()
	defer f.access.Unlock()
	document, loaded := f.profiles[name]
	if !loaded {
		return "", NewStatusError("get profile", StatusNotFound, ErrProfileNotFound)
	}
	return document, nil
}

func (f *fakeNative) DeleteProfile(id InterfaceID, name string) error {
	f.record("DeleteProfile")
	f.access.Lock()
	defer f.access.Unlock()
	if _, loaded := f.profiles[name]; !loaded {
		return NewStatusError("delete profile", StatusNotFound, ErrProfileNotFound)
	}
	delete(f.profiles, name)
	return nil
}

func rawNetwork(ssid string, quality uint32, auth uint32, cipher uint32) RawNetwork {
	var raw Dot11SSID
	raw.Length = uint32(len(ssid))
	copy(raw.SSID[:], ssid)
	return RawNetwork{
		SSID:            raw,
		Connectable:     true,
		SignalQuality:   quality,
		SecurityEnabled: auth != AuthAlgorithmOpen,
		AuthAlgorithm:   auth,
		CipherAlgorithm: cipher,
	}
}

func rawInterface(description string, state uint32) RawInterface {
	return RawInterface{
		ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(description)),
		Description: description,
		State:       state,
	}
}
