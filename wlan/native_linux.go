//go:build linux

package wlan

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	E "github.com/sagernet/sing-wlan/common/exceptions"
	"github.com/sagernet/sing-wlan/common/log"

	"github.com/google/uuid"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

// Interface identifiers are derived from the interface name and hardware
// address so they stay stable across handles.
var linuxInterfaceNamespace = uuid.MustParse("5b8ff8a4-0c1e-4b7d-9a53-7cf1d1e0a2c4")

const associationPollInterval = 500 * time.Millisecond

// Profile store reason codes.
const (
	linuxReasonInvalidProfile uint32 = iota + 1
	linuxReasonProfileExists
	linuxReasonStoreFailure
)

var linuxReasonText = map[uint32]string{
	linuxReasonInvalidProfile: "the profile document is invalid",
	linuxReasonProfileExists:  "a profile with this name already exists",
	linuxReasonStoreFailure:   "the profile store could not be written",
}

type linuxNative struct {
	options  NativeOptions
	logger   *logrus.Entry
	access   sync.Mutex
	client   *wifi.Client
	store    *ProfileStore
	sources  uint32
	callback NotificationCallback
	ctx      context.Context
	cancel   context.CancelFunc
	tasks    sync.WaitGroup
}

func NewNative(options NativeOptions) (Native, error) {
	options.applyDefaults()
	return &linuxNative{
		options: options,
		logger:  log.NewLogger("native"),
	}, nil
}

func (n *linuxNative) OpenHandle(clientVersion uint32) (uint32, error) {
	n.access.Lock()
	defer n.access.Unlock()
	if n.client != nil {
		return 0, NewStatusError("open", StatusInvalidState, E.New("handle already open"))
	}
	client, err := wifi.New()
	if err != nil {
		return 0, NewStatusError("open", StatusNotSupported, err)
	}
	store, err := OpenProfileStore(n.options.ProfileStore)
	if err != nil {
		client.Close()
		return 0, NewStatusError("open", StatusAccessDenied, err)
	}
	n.client = client
	n.store = store
	n.ctx, n.cancel = context.WithCancel(context.Background())
	if clientVersion > ClientVersionVista {
		clientVersion = ClientVersionVista
	}
	return clientVersion, nil
}

func (n *linuxNative) CloseHandle() error {
	n.access.Lock()
	if n.client == nil {
		n.access.Unlock()
		return NewStatusError("close", StatusInvalidParameter, E.New("handle not open"))
	}
	n.cancel()
	n.callback = nil
	n.access.Unlock()
	n.tasks.Wait()
	n.access.Lock()
	defer n.access.Unlock()
	err := E.Errors(n.client.Close(), n.store.Close())
	n.client = nil
	n.store = nil
	if err != nil {
		return NewStatusError("close", StatusInvalidParameter, err)
	}
	return nil
}

func (n *linuxNative) RegisterNotification(sources uint32, ignoreDuplicate bool, callback NotificationCallback) error {
	n.access.Lock()
	defer n.access.Unlock()
	if n.client == nil {
		return NewStatusError("register notification", StatusInvalidParameter, ErrSessionClosed)
	}
	n.sources = sources
	n.callback = callback
	return nil
}

func (n *linuxNative) UnregisterNotification() error {
	n.access.Lock()
	n.sources = NotificationSourceNone
	n.callback = nil
	n.access.Unlock()
	return nil
}

// emit delivers a synthetic connection manager notification.
func (n *linuxNative) emit(id InterfaceID, code uint32, reasonCode uint32, profileName string) {
	n.access.Lock()
	callback := n.callback
	enabled := n.sources&NotificationSourceACM != 0
	n.access.Unlock()
	if callback == nil || !enabled {
		return
	}
	callback(&RawNotification{
		Source:      NotificationSourceACM,
		Code:        code,
		InterfaceID: id,
		Payload: &NotificationPayload{
			ReasonCode:  reasonCode,
			ProfileName: profileName,
		},
	})
}

func linuxInterfaceID(ifi *wifi.Interface) InterfaceID {
	return uuid.NewSHA1(linuxInterfaceNamespace, []byte(ifi.Name+"/"+ifi.HardwareAddr.String()))
}

func (n *linuxNative) stations() ([]*wifi.Interface, error) {
	if n.client == nil {
		return nil, ErrSessionClosed
	}
	interfaces, err := n.client.Interfaces()
	if err != nil {
		return nil, err
	}
	var stations []*wifi.Interface
	for _, ifi := range interfaces {
		if ifi.Type == wifi.InterfaceTypeStation {
			stations = append(stations, ifi)
		}
	}
	return stations, nil
}

func (n *linuxNative) lookup(op string, id InterfaceID) (*wifi.Interface, error) {
	stations, err := n.stations()
	if err != nil {
		return nil, NewStatusError(op, StatusInvalidParameter, err)
	}
	for _, ifi := range stations {
		if linuxInterfaceID(ifi) == id {
			return ifi, nil
		}
	}
	return nil, NewStatusError(op, StatusNotFound, E.New("interface ", id, " not found"))
}

// associated returns the BSS the interface is associated with, or nil.
func (n *linuxNative) associated(ifi *wifi.Interface) (*wifi.BSS, error) {
	bss, err := n.client.BSS(ifi)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if bss.Status != wifi.BSSStatusAssociated {
		return nil, nil
	}
	return bss, nil
}

func (n *linuxNative) EnumInterfaces() ([]RawInterface, error) {
	n.access.Lock()
	defer n.access.Unlock()
	stations, err := n.stations()
	if err != nil {
		return nil, NewStatusError("enumerate interfaces", StatusInvalidParameter, err)
	}
	rawInterfaces := make([]RawInterface, 0, len(stations))
	for _, ifi := range stations {
		state := uint32(rawStateDisconnected)
		bss, err := n.client.BSS(ifi)
		switch {
		case err != nil && !errors.Is(err, os.ErrNotExist):
			n.logger.Debug("query bss of ", ifi.Name, ": ", err)
			state = rawStateNotReady
		case err != nil:
		case bss.Status == wifi.BSSStatusAssociated:
			state = rawStateConnected
		case bss.Status == wifi.BSSStatusAuthenticated:
			state = rawStateAuthenticating
		}
		rawInterfaces = append(rawInterfaces, RawInterface{
			ID:          linuxInterfaceID(ifi),
			Description: ifi.Name,
			State:       state,
		})
	}
	return rawInterfaces, nil
}

// Scan triggers a scan on a dedicated client and reports the outcome as a
// scan notification.
func (n *linuxNative) Scan(id InterfaceID) error {
	n.access.Lock()
	ifi, err := n.lookup("scan", id)
	if err != nil {
		n.access.Unlock()
		return err
	}
	parent := n.ctx
	n.tasks.Add(1)
	n.access.Unlock()
	go func() {
		defer n.tasks.Done()
		ctx, cancel := context.WithTimeout(parent, n.options.ScanTimeout)
		defer cancel()
		err := scanOnce(ctx, ifi)
		if err != nil {
			n.logger.Debug("scan ", ifi.Name, ": ", err)
			n.emit(id, ACMScanFail, 0, "")
			return
		}
		n.emit(id, ACMScanComplete, 0, "")
	}()
	return nil
}

func scanOnce(ctx context.Context, ifi *wifi.Interface) error {
	client, err := wifi.New()
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Scan(ctx, ifi)
}

func signalQuality(mBm int32) uint32 {
	quality := 2 * (int(mBm)/100 + 100)
	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return uint32(quality)
}

func classifyRSN(rsn wifi.RSNInfo) (secured bool, authAlgorithm uint32, cipherAlgorithm uint32) {
	if !rsn.IsInitialized() {
		return false, AuthAlgorithmOpen, CipherAlgorithmNone
	}
	authAlgorithm = AuthAlgorithmRSNA
	for _, akm := range rsn.AKMs {
		switch akm {
		case wifi.RSNAkmPSK, wifi.RSNAkmFTPSK, wifi.RSNAkmSAE, wifi.RSNAkmFTSAE:
			authAlgorithm = AuthAlgorithmRSNAPSK
		}
	}
	cipherAlgorithm = CipherAlgorithmNone
	for _, cipher := range rsn.PairwiseCiphers {
		switch cipher {
		case wifi.RSNCipherCCMP128, wifi.RSNCipherCCMP256, wifi.RSNCipherGCMP128, wifi.RSNCipherGCMP256:
			return true, authAlgorithm, CipherAlgorithmCCMP
		case wifi.RSNCipherTKIP:
			cipherAlgorithm = CipherAlgorithmTKIP
		}
	}
	return true, authAlgorithm, cipherAlgorithm
}

func (n *linuxNative) AvailableNetworks(id InterfaceID) ([]RawNetwork, error) {
	n.access.Lock()
	defer n.access.Unlock()
	ifi, err := n.lookup("get available networks", id)
	if err != nil {
		return nil, err
	}
	accessPoints, err := n.client.AccessPoints(ifi)
	if err != nil {
		return nil, NewStatusError("get available networks", StatusInvalidState, err)
	}
	profiles, err := n.store.List()
	if err != nil {
		n.logger.Warn("list profiles: ", err)
	}
	rawNetworks := make([]RawNetwork, 0, len(accessPoints))
	for _, bss := range accessPoints {
		var rawSSID Dot11SSID
		rawSSID.Length = uint32(len(bss.SSID))
		copy(rawSSID.SSID[:], bss.SSID)
		secured, authAlgorithm, cipherAlgorithm := classifyRSN(bss.RSN)
		rawNetwork := RawNetwork{
			SSID:            rawSSID,
			Connectable:     true,
			SignalQuality:   signalQuality(bss.Signal),
			SecurityEnabled: secured,
			AuthAlgorithm:   authAlgorithm,
			CipherAlgorithm: cipherAlgorithm,
		}
		if IsKnownNetwork(profiles, bss.SSID) {
			rawNetwork.ProfileName = bss.SSID
		}
		rawNetworks = append(rawNetworks, rawNetwork)
	}
	return rawNetworks, nil
}

func (n *linuxNative) Connect(id InterfaceID, parameters ConnectionParameters) error {
	n.access.Lock()
	ifi, err := n.lookup("connect", id)
	if err != nil {
		n.access.Unlock()
		return err
	}
	document, err := n.store.Get(parameters.ProfileName)
	if err != nil {
		n.access.Unlock()
		return NewStatusError("connect", StatusNotFound, err)
	}
	profile, err := ParseProfile(document)
	if err != nil {
		n.access.Unlock()
		return NewStatusError("connect", StatusBadProfile, err)
	}
	if profile.Security == SecurityOpen {
		err = n.client.Connect(ifi, profile.SSID)
	} else {
		err = n.client.ConnectWPAPSK(ifi, profile.SSID, profile.Passphrase)
	}
	if err != nil {
		n.access.Unlock()
		if errors.Is(err, wifi.ErrNotSupported) {
			return NewStatusError("connect", StatusNotSupported, err)
		}
		return NewStatusError("connect", StatusInvalidState, err)
	}
	parent := n.ctx
	n.tasks.Add(1)
	n.access.Unlock()
	n.emit(id, ACMConnectionStart, 0, parameters.ProfileName)
	go n.awaitAssociation(parent, id, ifi, profile.SSID, parameters.ProfileName)
	return nil
}

// awaitAssociation reports completion once the interface associates with
// ssid, or an attempt failure after the connect timeout.
func (n *linuxNative) awaitAssociation(parent context.Context, id InterfaceID, ifi *wifi.Interface, ssid string, profileName string) {
	defer n.tasks.Done()
	ctx, cancel := context.WithTimeout(parent, n.options.ConnectTimeout)
	defer cancel()
	ticker := time.NewTicker(associationPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if parent.Err() == nil {
				n.emit(id, ACMConnectionAttemptFail, 0, profileName)
			}
			return
		case <-ticker.C:
		}
		n.access.Lock()
		if n.client == nil {
			n.access.Unlock()
			return
		}
		bss, err := n.associated(ifi)
		n.access.Unlock()
		if err != nil {
			n.logger.Debug("query bss of ", ifi.Name, ": ", err)
			continue
		}
		if bss != nil && bss.SSID == ssid {
			n.emit(id, ACMConnectionComplete, 0, profileName)
			return
		}
	}
}

func (n *linuxNative) Disconnect(id InterfaceID) error {
	n.access.Lock()
	ifi, err := n.lookup("disconnect", id)
	if err != nil {
		n.access.Unlock()
		return err
	}
	err = n.client.Disconnect(ifi)
	n.access.Unlock()
	if err != nil {
		return NewStatusError("disconnect", StatusInvalidState, err)
	}
	n.emit(id, ACMDisconnecting, 0, "")
	n.emit(id, ACMDisconnected, 0, "")
	return nil
}

func (n *linuxNative) QueryCurrentConnection(id InterfaceID) (ConnectionAttributes, error) {
	n.access.Lock()
	defer n.access.Unlock()
	ifi, err := n.lookup("query current connection", id)
	if err != nil {
		return ConnectionAttributes{}, err
	}
	bss, err := n.associated(ifi)
	if err != nil {
		return ConnectionAttributes{}, NewStatusError("query current connection", StatusInvalidParameter, err)
	}
	if bss == nil {
		return ConnectionAttributes{}, NewStatusError("query current connection", StatusInvalidState, ErrNotConnected)
	}
	rawSSID, valid := NewDot11SSID(bss.SSID)
	if !valid {
		return ConnectionAttributes{}, NewStatusError("query current connection", StatusInvalidParameter, &MalformedDataError{Message: "SSID longer than 32 bytes"})
	}
	secured, authAlgorithm, cipherAlgorithm := classifyRSN(bss.RSN)
	attributes := ConnectionAttributes{
		State:           rawStateConnected,
		SSID:            rawSSID,
		SignalQuality:   signalQuality(bss.Signal),
		SecurityEnabled: secured,
		AuthAlgorithm:   authAlgorithm,
		CipherAlgorithm: cipherAlgorithm,
	}
	if _, err = n.store.Get(bss.SSID); err == nil {
		attributes.ProfileName = bss.SSID
	}
	return attributes, nil
}

func (n *linuxNative) SetProfile(id InterfaceID, document string, overwrite bool) (uint32, error) {
	profile, err := ParseProfile(document)
	if err != nil {
		return linuxReasonInvalidProfile, NewStatusError("set profile", StatusBadProfile, err)
	}
	n.access.Lock()
	defer n.access.Unlock()
	if n.store == nil {
		return 0, NewStatusError("set profile", StatusInvalidParameter, ErrSessionClosed)
	}
	err = n.store.Put(profile.Name, document, overwrite)
	if errors.Is(err, ErrProfileExists) {
		return linuxReasonProfileExists, NewStatusError("set profile", StatusAlreadyExists, err)
	} else if err != nil {
		return linuxReasonStoreFailure, NewStatusError("set profile", StatusAccessDenied, err)
	}
	return 0, nil
}

func (n *linuxNative) ReasonCodeString(reasonCode uint32) (string, error) {
	reason, loaded := linuxReasonText[reasonCode]
	if !loaded {
		return "", NewStatusError("reason code to string", StatusInvalidParameter, E.New("unknown reason code ", reasonCode))
	}
	return reason, nil
}

func (n *linuxNative) ProfileList(id InterfaceID) ([]ProfileInfo, error) {
	n.access.Lock()
	defer n.access.Unlock()
	if n.store == nil {
		return nil, NewStatusError("get profile list", StatusInvalidParameter, ErrSessionClosed)
	}
	names, err := n.store.List()
	if err != nil {
		return nil, NewStatusError("get profile list", StatusAccessDenied, err)
	}
	profiles := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, ProfileInfo{Name: name})
	}
	return profiles, nil
}

func (n *linuxNative) Profile(id InterfaceID, name string) (string, error) {
	n.access.Lock()
	defer n.access.Unlock()
	if n.store == nil {
		return "", NewStatusError("get profile", StatusInvalidParameter, ErrSessionClosed)
	}
	document, err := n.store.Get(name)
	if errors.Is(err, ErrProfileNotFound) {
		return "", NewStatusError("get profile", StatusNotFound, err)
	} else if err != nil {
		return "", NewStatusError("get profile", StatusAccessDenied, err)
	}
	return document, nil
}

func (n *linuxNative) DeleteProfile(id InterfaceID, name string) error {
	n.access.Lock()
	defer n.access.Unlock()
	if n.store == nil {
		return NewStatusError("delete profile", StatusInvalidParameter, ErrSessionClosed)
	}
	err := n.store.Delete(name)
	if errors.Is(err, ErrProfileNotFound) {
		return NewStatusError("delete profile", StatusNotFound, err)
	} else if err != nil {
		return NewStatusError("delete profile", StatusAccessDenied, err)
	}
	return nil
}
