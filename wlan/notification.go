package wlan

type ConnectionNotification uint8

const (
	NotificationUnknown ConnectionNotification = iota
	NotificationConnectionStart
	NotificationConnectionComplete
	NotificationConnectionAttemptFail
	NotificationInvalidPassword
	NotificationDisconnected
	NotificationError
)

func (n ConnectionNotification) String() string {
	switch n {
	case NotificationConnectionStart:
		return "connection start"
	case NotificationConnectionComplete:
		return "connection complete"
	case NotificationConnectionAttemptFail:
		return "connection attempt fail"
	case NotificationInvalidPassword:
		return "invalid password"
	case NotificationDisconnected:
		return "disconnected"
	case NotificationError:
		return "error"
	default:
		return "unknown"
	}
}

// ClassifyNotification maps a raw notification to a connection event. It
// reports false for sources that produce no event.
func ClassifyNotification(source uint32, code uint32, payload *NotificationPayload) (ConnectionNotification, bool) {
	switch source {
	case NotificationSourceACM:
		if payload == nil {
			return NotificationError, true
		}
		switch code {
		case ACMConnectionStart:
			return NotificationConnectionStart, true
		case ACMConnectionComplete:
			return NotificationConnectionComplete, true
		case ACMConnectionAttemptFail:
			return NotificationConnectionAttemptFail, true
		case ACMDisconnected:
			return NotificationDisconnected, true
		default:
			return NotificationUnknown, true
		}
	case NotificationSourceMSM:
		if payload == nil {
			return NotificationError, true
		}
		if payload.ReasonCode == ReasonInvalidPassword {
			return NotificationInvalidPassword, true
		}
		return NotificationUnknown, true
	default:
		return NotificationUnknown, false
	}
}

// ClassifyRawNotification classifies a callback delivery. A nil notification
// is an Error event.
func ClassifyRawNotification(notification *RawNotification) (ConnectionNotification, bool) {
	if notification == nil {
		return NotificationError, true
	}
	return ClassifyNotification(notification.Source, notification.Code, notification.Payload)
}

type NotificationState uint8

const (
	NotificationStateUnknown NotificationState = iota
	NotificationStateEmpty
	NotificationStateDisconnected
	NotificationStateKnown
)

func (s NotificationState) String() string {
	switch s {
	case NotificationStateEmpty:
		return "empty"
	case NotificationStateDisconnected:
		return "disconnected"
	case NotificationStateKnown:
		return "state known"
	default:
		return "unknown"
	}
}

func isUnknownNotification(event ConnectionNotification) bool {
	return event == NotificationUnknown
}
