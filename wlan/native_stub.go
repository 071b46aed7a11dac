//go:build !windows && !linux

package wlan

func NewNative(options NativeOptions) (Native, error) {
	return nil, ErrUnsupported
}
