package wlan

import (
	"sync"
	"sync/atomic"

	"github.com/sagernet/sing-wlan/common/observable"

	"github.com/sirupsen/logrus"
)

// notificationBridge turns OS callbacks into status channel events. It never
// blocks and never logs.
type notificationBridge struct {
	status *observable.Channel[ConnectionNotification]
	active atomic.Bool
}

func (b *notificationBridge) deliver(notification *RawNotification) {
	defer func() {
		recover()
	}()
	if !b.active.Load() {
		return
	}
	event, produced := ClassifyRawNotification(notification)
	if !produced {
		return
	}
	b.status.TrySend(event)
}

// Poller drains the status channel one event per call and suppresses
// repeated log lines for idle polls.
type Poller struct {
	status *observable.Channel[ConnectionNotification]
	logger *logrus.Entry
	access sync.Mutex
	state  NotificationState
}

func NewPoller(status *observable.Channel[ConnectionNotification], logger *logrus.Entry) *Poller {
	return &Poller{
		status: status,
		logger: logger,
	}
}

// Poll returns at most one queued event without blocking.
func (p *Poller) Poll() (ConnectionNotification, bool) {
	if !p.access.TryLock() {
		return NotificationUnknown, false
	}
	defer p.access.Unlock()
	event, status := p.status.TryReceive()
	switch status {
	case observable.Received:
		p.state = NotificationStateKnown
		p.logger.Debug("received notification: ", event)
		return event, true
	case observable.Empty:
		if p.state != NotificationStateEmpty {
			p.logger.Trace("notification channel empty")
			p.state = NotificationStateEmpty
		}
	case observable.Disconnected:
		if p.state != NotificationStateDisconnected {
			p.logger.Error("notification channel disconnected")
			p.state = NotificationStateDisconnected
		}
	case observable.Busy:
		if p.state != NotificationStateUnknown {
			p.logger.Debug("notification channel busy")
			p.state = NotificationStateUnknown
		}
	}
	return NotificationUnknown, false
}

func (p *Poller) State() NotificationState {
	p.access.Lock()
	defer p.access.Unlock()
	return p.state
}
