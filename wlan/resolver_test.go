package wlan

import (
	"errors"
	"testing"

	"github.com/sagernet/sing-wlan/common/log"

	"github.com/stretchr/testify/require"
)

func TestSelectionPolicy(t *testing.T) {
	for _, state := range []InterfaceState{StateConnected, StateDisconnected, StateAssociating, StateAuthenticating, StateDiscovering} {
		require.True(t, SelectionStrict.Eligible(state), state.String())
		require.True(t, SelectionPermissive.Eligible(state), state.String())
	}
	for _, state := range []InterfaceState{StateNotReady, StateDisconnecting, StateAdHocFormed} {
		require.False(t, SelectionStrict.Eligible(state), state.String())
		require.True(t, SelectionPermissive.Eligible(state), state.String())
	}
	require.False(t, SelectionStrict.Eligible(StateUnavailable))
	require.False(t, SelectionPermissive.Eligible(StateUnavailable))
}

func TestParseSelectionPolicy(t *testing.T) {
	policy, err := ParseSelectionPolicy("")
	require.NoError(t, err)
	require.Equal(t, SelectionStrict, policy)
	policy, err = ParseSelectionPolicy("Permissive")
	require.NoError(t, err)
	require.Equal(t, SelectionPermissive, policy)
	_, err = ParseSelectionPolicy("greedy")
	require.Error(t, err)
}

func TestResolverSelectsFirstEligible(t *testing.T) {
	native := newFakeNative()
	native.interfaces = []RawInterface{
		rawInterface("not ready", rawStateNotReady),
		rawInterface("broken", 99),
		rawInterface("idle", rawStateDisconnected),
		rawInterface("online", rawStateConnected),
	}

	strict := NewResolver(native, SelectionStrict, log.NewLogger("resolver"))
	descriptor, err := strict.Resolve()
	require.NoError(t, err)
	require.Equal(t, "idle", descriptor.Description)
	require.Equal(t, StateDisconnected, descriptor.State)

	permissive := NewResolver(native, SelectionPermissive, log.NewLogger("resolver"))
	descriptor, err = permissive.Resolve()
	require.NoError(t, err)
	require.Equal(t, "not ready", descriptor.Description)
}

func TestResolverKeepsSelection(t *testing.T) {
	native := newFakeNative()
	native.interfaces = []RawInterface{rawInterface("first", rawStateConnected)}
	resolver := NewResolver(native, SelectionStrict, log.NewLogger("resolver"))
	first, err := resolver.Resolve()
	require.NoError(t, err)

	native.interfaces = []RawInterface{rawInterface("second", rawStateConnected)}
	again, err := resolver.Resolve()
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Equal(t, 1, native.count("EnumInterfaces"))

	resolver.Clear()
	_, loaded := resolver.Interface()
	require.False(t, loaded)
	second, err := resolver.Resolve()
	require.NoError(t, err)
	require.Equal(t, "second", second.Description)
}

func TestResolverNoInterface(t *testing.T) {
	native := newFakeNative()
	resolver := NewResolver(native, SelectionStrict, log.NewLogger("resolver"))
	_, err := resolver.Resolve()
	require.ErrorIs(t, err, ErrNoInterface)

	native.interfaces = []RawInterface{rawInterface("gone", 99)}
	_, err = resolver.Resolve()
	require.ErrorIs(t, err, ErrNoInterface)
	_, loaded := resolver.Interface()
	require.False(t, loaded)
}

func TestResolverEnumerationFailure(t *testing.T) {
	native := newFakeNative()
	native.enumErr = NewStatusError("WlanEnumInterfaces", StatusAccessDenied, errors.New("access denied"))
	resolver := NewResolver(native, SelectionStrict, log.NewLogger("resolver"))
	_, err := resolver.Resolve()
	var enumerationErr *EnumerationError
	require.ErrorAs(t, err, &enumerationErr)
	code, loaded := StatusCode(err)
	require.True(t, loaded)
	require.Equal(t, uint32(StatusAccessDenied), code)
	_, loaded = resolver.Interface()
	require.False(t, loaded)
}
