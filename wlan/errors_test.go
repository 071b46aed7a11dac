package wlan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorChain(t *testing.T) {
	cause := errors.New("element not found")
	err := error(&ConnectError{SSID: "Home", Err: NewStatusError("WlanConnect", StatusNotFound, cause)})
	require.ErrorIs(t, err, cause)
	code, loaded := StatusCode(err)
	require.True(t, loaded)
	require.Equal(t, uint32(StatusNotFound), code)
	require.Equal(t, "connect Home: WlanConnect: element not found", err.Error())

	_, loaded = StatusCode(ErrSessionClosed)
	require.False(t, loaded)
}

func TestStatusErrorWithoutCause(t *testing.T) {
	err := NewStatusError("WlanScan", StatusInvalidState, nil)
	require.Equal(t, "WlanScan: status 5023", err.Error())
	require.Nil(t, errors.Unwrap(err))
}

func TestProfileErrorMessage(t *testing.T) {
	err := &ProfileError{Op: "delete", Name: "Home", Err: ErrProfileNotFound}
	require.Equal(t, "delete profile Home: profile not found", err.Error())
	require.ErrorIs(t, err, ErrProfileNotFound)
}
