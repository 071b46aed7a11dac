package wlan

import (
	"strings"
	"sync"

	E "github.com/sagernet/sing-wlan/common/exceptions"

	"github.com/sirupsen/logrus"
)

type SelectionPolicy uint8

const (
	// SelectionStrict selects interfaces that are connected or in a
	// connection-capable state.
	SelectionStrict SelectionPolicy = iota
	// SelectionPermissive also selects interfaces that are not ready,
	// disconnecting or running an ad hoc network.
	SelectionPermissive
)

func (p SelectionPolicy) String() string {
	switch p {
	case SelectionPermissive:
		return "permissive"
	default:
		return "strict"
	}
}

func ParseSelectionPolicy(value string) (SelectionPolicy, error) {
	switch strings.ToLower(value) {
	case "", "strict":
		return SelectionStrict, nil
	case "permissive":
		return SelectionPermissive, nil
	default:
		return SelectionStrict, E.New("unknown selection policy: ", value)
	}
}

// Eligible reports whether an interface in state may be selected.
func (p SelectionPolicy) Eligible(state InterfaceState) bool {
	switch state {
	case StateConnected, StateDisconnected, StateAssociating, StateAuthenticating, StateDiscovering:
		return true
	case StateNotReady, StateDisconnecting, StateAdHocFormed:
		return p == SelectionPermissive
	default:
		return false
	}
}

type Resolver struct {
	native   Native
	policy   SelectionPolicy
	logger   *logrus.Entry
	access   sync.Mutex
	selected *InterfaceDescriptor
}

func NewResolver(native Native, policy SelectionPolicy, logger *logrus.Entry) *Resolver {
	return &Resolver{
		native: native,
		policy: policy,
		logger: logger,
	}
}

func (r *Resolver) Interfaces() ([]InterfaceDescriptor, error) {
	rawInterfaces, err := r.native.EnumInterfaces()
	if err != nil {
		r.logger.Error("enumerate interfaces: ", err)
		return nil, &EnumerationError{Target: "interfaces", Err: err}
	}
	descriptors := make([]InterfaceDescriptor, 0, len(rawInterfaces))
	for _, rawInterface := range rawInterfaces {
		descriptors = append(descriptors, InterfaceDescriptor{
			ID:          rawInterface.ID,
			Description: rawInterface.Description,
			State:       ConvertInterfaceState(rawInterface.State),
		})
	}
	return descriptors, nil
}

// Resolve selects the first eligible interface. An interface selected
// earlier is kept until Clear is called.
func (r *Resolver) Resolve() (InterfaceDescriptor, error) {
	r.access.Lock()
	defer r.access.Unlock()
	if r.selected != nil {
		return *r.selected, nil
	}
	descriptors, err := r.Interfaces()
	if err != nil {
		return InterfaceDescriptor{}, err
	}
	if len(descriptors) == 0 {
		r.logger.Warn("no wlan interface found")
		return InterfaceDescriptor{}, ErrNoInterface
	}
	for _, descriptor := range descriptors {
		if !r.policy.Eligible(descriptor.State) {
			r.logger.Debug("skip interface ", descriptor.Description, ": ", descriptor.State)
			continue
		}
		selected := descriptor
		r.selected = &selected
		r.logger.Info("selected interface ", descriptor.Description, " (", descriptor.State, ")")
		return selected, nil
	}
	r.logger.Warn("no eligible wlan interface among ", len(descriptors))
	return InterfaceDescriptor{}, ErrNoInterface
}

func (r *Resolver) Interface() (InterfaceDescriptor, bool) {
	r.access.Lock()
	defer r.access.Unlock()
	if r.selected == nil {
		return InterfaceDescriptor{}, false
	}
	return *r.selected, true
}

func (r *Resolver) Clear() {
	r.access.Lock()
	r.selected = nil
	r.access.Unlock()
}

func (r *Resolver) setState(state InterfaceState) {
	r.access.Lock()
	if r.selected != nil {
		r.selected.State = state
	}
	r.access.Unlock()
}
