package wlan

import (
	"runtime"
	"sync"

	E "github.com/sagernet/sing-wlan/common/exceptions"
	"github.com/sagernet/sing-wlan/common/log"
	"github.com/sagernet/sing-wlan/common/observable"

	"github.com/sirupsen/logrus"
)

const DefaultStatusBuffer = 256

type Options struct {
	Native          Native
	ClientVersion   uint32
	SelectionPolicy SelectionPolicy
	StatusBuffer    int
	// Channel is shared with the notification callback. A private channel
	// is created when nil.
	Channel *observable.Channel[ConnectionNotification]
}

// Session owns the native client handle and composes interface resolution,
// scanning, connection control and notification polling.
type Session struct {
	access            sync.Mutex
	native            Native
	clientVersion     uint32
	open              bool
	registered        bool
	negotiatedVersion uint32
	status            *observable.Channel[ConnectionNotification]
	bridge            *notificationBridge
	resolver          *Resolver
	scanner           *Scanner
	controller        *Controller
	poller            *Poller
	logger            *logrus.Entry
}

func NewSession(options Options) (*Session, error) {
	if options.Native == nil {
		return nil, E.New("missing native wlan backend")
	}
	if options.ClientVersion == 0 {
		options.ClientVersion = ClientVersionVista
	}
	status := options.Channel
	if status == nil {
		bufferSize := options.StatusBuffer
		if bufferSize <= 0 {
			bufferSize = DefaultStatusBuffer
		}
		status = observable.NewEvictingChannel(bufferSize, isUnknownNotification)
	}
	session := &Session{
		native:        options.Native,
		clientVersion: options.ClientVersion,
		status:        status,
		bridge:        &notificationBridge{status: status},
		resolver:      NewResolver(options.Native, options.SelectionPolicy, log.NewLogger("resolver")),
		scanner:       NewScanner(options.Native, log.NewLogger("scanner")),
		controller:    NewController(options.Native, log.NewLogger("controller")),
		poller:        NewPoller(status, log.NewLogger("notify")),
		logger:        log.NewLogger("session"),
	}
	runtime.SetFinalizer(session, (*Session).finalize)
	return session, nil
}

func (s *Session) finalize() {
	err := s.Close()
	if err != nil {
		s.logger.Error("close dropped session: ", err)
	}
}

// Open acquires the native handle and registers for connection
// notifications. A registration failure is logged and the session is still
// considered open.
func (s *Session) Open() error {
	s.access.Lock()
	defer s.access.Unlock()
	if s.open {
		return nil
	}
	negotiatedVersion, err := s.native.OpenHandle(s.clientVersion)
	if err != nil {
		s.logger.Error("open handle: ", err)
		return &HandleError{Op: "open", Err: err}
	}
	s.open = true
	s.negotiatedVersion = negotiatedVersion
	s.bridge.active.Store(true)
	err = s.native.RegisterNotification(NotificationSourceAll, false, s.bridge.deliver)
	if err != nil {
		s.logger.Error("register notification: ", err)
	} else {
		s.registered = true
	}
	s.logger.Info("opened wlan handle, negotiated version ", negotiatedVersion)
	return nil
}

// Close releases the native handle. Closing a closed session does nothing.
func (s *Session) Close() error {
	s.access.Lock()
	defer s.access.Unlock()
	if !s.open {
		return nil
	}
	s.bridge.active.Store(false)
	if s.registered {
		err := s.native.UnregisterNotification()
		if err != nil {
			s.logger.Warn("unregister notification: ", err)
		}
		s.registered = false
	}
	err := s.native.CloseHandle()
	s.open = false
	s.negotiatedVersion = 0
	s.resolver.Clear()
	s.scanner.Clear()
	if err != nil {
		s.logger.Error("close handle: ", err)
		return &HandleError{Op: "close", Err: err}
	}
	s.logger.Info("closed wlan handle")
	return nil
}

func (s *Session) IsOpen() bool {
	s.access.Lock()
	defer s.access.Unlock()
	return s.open
}

func (s *Session) NegotiatedVersion() uint32 {
	s.access.Lock()
	defer s.access.Unlock()
	return s.negotiatedVersion
}

// NotificationChannel returns the channel notifications are delivered to.
func (s *Session) NotificationChannel() *observable.Channel[ConnectionNotification] {
	return s.status
}

func (s *Session) lockOpen() error {
	s.access.Lock()
	if !s.open {
		s.access.Unlock()
		return ErrSessionClosed
	}
	return nil
}

func (s *Session) lockInterface() (InterfaceID, error) {
	err := s.lockOpen()
	if err != nil {
		return InterfaceID{}, err
	}
	descriptor, loaded := s.resolver.Interface()
	if !loaded {
		s.access.Unlock()
		return InterfaceID{}, ErrInterfaceUnresolved
	}
	return descriptor.ID, nil
}

func (s *Session) ResolveInterface() (InterfaceDescriptor, error) {
	err := s.lockOpen()
	if err != nil {
		return InterfaceDescriptor{}, err
	}
	defer s.access.Unlock()
	return s.resolver.Resolve()
}

// Interface returns the resolved interface.
func (s *Session) Interface() (InterfaceDescriptor, bool) {
	return s.resolver.Interface()
}

// ClearInterface forgets the resolved interface so the next
// ResolveInterface selects again.
func (s *Session) ClearInterface() {
	s.resolver.Clear()
}

func (s *Session) Interfaces() ([]InterfaceDescriptor, error) {
	err := s.lockOpen()
	if err != nil {
		return nil, err
	}
	defer s.access.Unlock()
	return s.resolver.Interfaces()
}

func (s *Session) RequestScan() error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.scanner.RequestScan(id)
}

func (s *Session) RefreshNetworks() error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.scanner.Refresh(id)
}

func (s *Session) ListNetworks() []NetworkRecord {
	return s.scanner.Networks()
}

func (s *Session) Network(ssid string) (NetworkRecord, bool) {
	return s.scanner.Network(ssid)
}

// Connect requests a connection through the stored profile named ssid.
func (s *Session) Connect(ssid string) error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.controller.Connect(id, ssid)
}

// ConnectWithPassphrase installs a profile for a scanned network, replacing
// any existing one, and requests a connection with it.
func (s *Session) ConnectWithPassphrase(ssid string, passphrase string) error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	err = s.installProfile(id, ssid, passphrase)
	if err != nil {
		return err
	}
	return s.controller.Connect(id, ssid)
}

func (s *Session) Disconnect() error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.controller.Disconnect(id)
}

// ConnectedSSID returns the SSID of the current connection, or ok == false
// when the interface is not connected.
func (s *Session) ConnectedSSID() (ssid string, ok bool, err error) {
	id, err := s.lockInterface()
	if err != nil {
		return "", false, err
	}
	defer s.access.Unlock()
	return s.controller.CurrentConnection(id)
}

// SetProfile renders a profile for a scanned network from its security and
// encryption and installs it, replacing any existing profile.
func (s *Session) SetProfile(ssid string, passphrase string) error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.installProfile(id, ssid, passphrase)
}

func (s *Session) installProfile(id InterfaceID, ssid string, passphrase string) error {
	record, loaded := s.scanner.Network(ssid)
	if !loaded {
		s.logger.Error("no scanned network named ", ssid)
		return &ProfileError{Op: "set", Name: ssid, Err: ErrNetworkNotFound}
	}
	document, err := RenderProfile(NewProfile(ssid, passphrase, record.Encryption, record.Security))
	if err != nil {
		return &ProfileError{Op: "set", Name: ssid, Err: err}
	}
	return s.controller.SetProfile(id, document, true)
}

// InstallProfile installs a rendered profile document as is.
func (s *Session) InstallProfile(document string, overwrite bool) error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.controller.SetProfile(id, document, overwrite)
}

func (s *Session) ProfileList() ([]ProfileInfo, error) {
	id, err := s.lockInterface()
	if err != nil {
		return nil, err
	}
	defer s.access.Unlock()
	return s.controller.ProfileList(id)
}

func (s *Session) Profile(name string) (string, error) {
	id, err := s.lockInterface()
	if err != nil {
		return "", err
	}
	defer s.access.Unlock()
	return s.controller.Profile(id, name)
}

func (s *Session) DeleteProfile(name string) error {
	id, err := s.lockInterface()
	if err != nil {
		return err
	}
	defer s.access.Unlock()
	return s.controller.DeleteProfile(id, name)
}

func (s *Session) HasProfile(name string) (bool, error) {
	id, err := s.lockInterface()
	if err != nil {
		return false, err
	}
	defer s.access.Unlock()
	return s.controller.HasProfile(id, name)
}

// FindAutoConnectProfile returns the first stored profile configured for
// automatic connection.
func (s *Session) FindAutoConnectProfile() (string, bool, error) {
	id, err := s.lockInterface()
	if err != nil {
		return "", false, err
	}
	defer s.access.Unlock()
	profiles, err := s.controller.ProfileList(id)
	if err != nil {
		return "", false, err
	}
	name, found := s.controller.FindAutoConnectProfile(id, profiles)
	return name, found, nil
}

// PollConnectionStatus returns at most one pending connection event without
// blocking. Completion and disconnection update the resolved interface state.
func (s *Session) PollConnectionStatus() (ConnectionNotification, bool) {
	event, received := s.poller.Poll()
	if !received {
		return event, false
	}
	switch event {
	case NotificationConnectionComplete:
		s.resolver.setState(StateConnected)
	case NotificationDisconnected:
		s.resolver.setState(StateDisconnected)
	}
	return event, true
}

// DroppedNotifications reports events lost to contention or a full channel.
func (s *Session) DroppedNotifications() uint64 {
	return s.status.Dropped()
}
