package wlan

import (
	"fmt"

	E "github.com/sagernet/sing-wlan/common/exceptions"
)

var (
	ErrSessionClosed       = E.New("wlan session closed")
	ErrNoInterface         = E.New("no wlan interface")
	ErrInterfaceUnresolved = E.New("wlan interface not resolved")
	ErrNotConnected        = E.New("not connected")
	ErrNetworkNotFound     = E.New("network not found")
	ErrUnsupported         = E.New("wlan is not supported on this platform")
)

// StatusError is an OS status code returned by a native call.
type StatusError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func NewStatusError(op string, code uint32, err error) *StatusError {
	return &StatusError{Op: op, Code: code, Err: err}
}

// StatusCode extracts the OS status code carried by err.
func StatusCode(err error) (uint32, bool) {
	statusErr, loaded := E.Cast[*StatusError](err)
	if !loaded {
		return 0, false
	}
	return statusErr.Code, true
}

type HandleError struct {
	Op  string
	Err error
}

func (e *HandleError) Error() string {
	return "wlan handle " + e.Op + ": " + e.Err.Error()
}

func (e *HandleError) Unwrap() error {
	return e.Err
}

type EnumerationError struct {
	Target string
	Err    error
}

func (e *EnumerationError) Error() string {
	return "enumerate " + e.Target + ": " + e.Err.Error()
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return "query current connection: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type ProfileError struct {
	Op         string
	Name       string
	ReasonCode uint32
	Reason     string
	Err        error
}

func (e *ProfileError) Error() string {
	message := e.Op + " profile"
	if e.Name != "" {
		message += " " + e.Name
	}
	message += ": " + e.Err.Error()
	if e.Reason != "" {
		message += " (" + e.Reason + ")"
	} else if e.ReasonCode != 0 {
		message += fmt.Sprintf(" (reason %d)", e.ReasonCode)
	}
	return message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

type ConnectError struct {
	SSID string
	Err  error
}

func (e *ConnectError) Error() string {
	return "connect " + e.SSID + ": " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

type DisconnectError struct {
	Err error
}

func (e *DisconnectError) Error() string {
	return "disconnect: " + e.Err.Error()
}

func (e *DisconnectError) Unwrap() error {
	return e.Err
}

type MalformedDataError struct {
	Message string
}

func (e *MalformedDataError) Error() string {
	return "malformed data: " + e.Message
}
