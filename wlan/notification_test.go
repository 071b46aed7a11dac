package wlan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyNotification(t *testing.T) {
	payload := &NotificationPayload{}
	testCases := []struct {
		name    string
		source  uint32
		code    uint32
		payload *NotificationPayload
		event   ConnectionNotification
		ok      bool
	}{
		{"acm start", NotificationSourceACM, ACMConnectionStart, payload, NotificationConnectionStart, true},
		{"acm complete", NotificationSourceACM, ACMConnectionComplete, payload, NotificationConnectionComplete, true},
		{"acm attempt fail", NotificationSourceACM, ACMConnectionAttemptFail, payload, NotificationConnectionAttemptFail, true},
		{"acm disconnected", NotificationSourceACM, ACMDisconnected, payload, NotificationDisconnected, true},
		{"acm scan complete", NotificationSourceACM, ACMScanComplete, payload, NotificationUnknown, true},
		{"acm unrecognized", NotificationSourceACM, 0xffff, payload, NotificationUnknown, true},
		{"acm nil payload", NotificationSourceACM, ACMConnectionComplete, nil, NotificationError, true},
		{"msm invalid password", NotificationSourceMSM, 4, &NotificationPayload{ReasonCode: ReasonInvalidPassword}, NotificationInvalidPassword, true},
		{"msm other reason", NotificationSourceMSM, 4, &NotificationPayload{ReasonCode: 12}, NotificationUnknown, true},
		{"msm nil payload", NotificationSourceMSM, 4, nil, NotificationError, true},
		{"other source", 0x4, ACMConnectionComplete, payload, NotificationUnknown, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			event, ok := ClassifyNotification(testCase.source, testCase.code, testCase.payload)
			require.Equal(t, testCase.ok, ok)
			require.Equal(t, testCase.event, event)
		})
	}
}

func TestClassifyRawNotificationNil(t *testing.T) {
	event, ok := ClassifyRawNotification(nil)
	require.True(t, ok)
	require.Equal(t, NotificationError, event)
}

func TestClassifyNotificationTotal(t *testing.T) {
	for _, source := range []uint32{NotificationSourceACM, NotificationSourceMSM} {
		for code := uint32(0); code < 64; code++ {
			for _, payload := range []*NotificationPayload{nil, {ReasonCode: code}} {
				event, ok := ClassifyNotification(source, code, payload)
				require.True(t, ok)
				require.LessOrEqual(t, event, NotificationError)
			}
		}
	}
}
