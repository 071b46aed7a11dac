package observable

import (
	"sync"
	"sync/atomic"
)

type ReceiveStatus uint8

const (
	Received ReceiveStatus = iota
	Empty
	Disconnected
	Busy
)

func (s ReceiveStatus) String() string {
	switch s {
	case Received:
		return "received"
	case Empty:
		return "empty"
	case Disconnected:
		return "disconnected"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// Channel is a lock-guarded handoff queue between producers that must never
// block and a consumer that polls.
//
// Producers only ever try the lock: under contention the item is dropped.
// When the buffer is full the oldest evictable item makes room for an item
// that is not evictable; otherwise the new item is dropped. A panic inside a
// guarded section poisons the channel; the next holder clears the poison and
// carries on.
type Channel[T any] struct {
	access     sync.Mutex
	poisoned   bool
	closed     bool
	buffer     chan T
	evictable  func(item T) bool
	dropped    atomic.Uint64
	recoveries atomic.Uint64
}

func NewChannel[T any](size int) *Channel[T] {
	return NewEvictingChannel[T](size, nil)
}

// NewEvictingChannel creates a channel that, when full, discards the oldest
// queued item matching evictable to admit an item that does not match.
func NewEvictingChannel[T any](size int, evictable func(item T) bool) *Channel[T] {
	if size <= 0 {
		size = 1
	}
	return &Channel[T]{
		buffer:    make(chan T, size),
		evictable: evictable,
	}
}

func (c *Channel[T]) TrySend(item T) bool {
	if !c.access.TryLock() {
		c.dropped.Add(1)
		return false
	}
	var sent bool
	c.locked(func() {
		if c.closed {
			return
		}
		select {
		case c.buffer <- item:
			sent = true
		default:
			if c.evictable != nil && !c.evictable(item) && c.evictOne() {
				c.buffer <- item
				sent = true
			}
		}
	})
	if !sent {
		c.dropped.Add(1)
	}
	return sent
}

// evictOne removes the oldest evictable item, keeping the order of the rest.
// It must run with access held.
func (c *Channel[T]) evictOne() bool {
	queued := make([]T, 0, len(c.buffer))
	evicted := false
	for len(c.buffer) > 0 {
		item := <-c.buffer
		if !evicted && c.evictable(item) {
			evicted = true
			continue
		}
		queued = append(queued, item)
	}
	for _, item := range queued {
		c.buffer <- item
	}
	if evicted {
		c.dropped.Add(1)
	}
	return evicted
}

func (c *Channel[T]) TryReceive() (item T, status ReceiveStatus) {
	if !c.access.TryLock() {
		return item, Busy
	}
	c.locked(func() {
		select {
		case value, loaded := <-c.buffer:
			if !loaded {
				status = Disconnected
				return
			}
			item, status = value, Received
		default:
			if c.closed {
				status = Disconnected
			} else {
				status = Empty
			}
		}
	})
	return
}

// Close disconnects the channel. Items already queued can still be received.
func (c *Channel[T]) Close() error {
	c.access.Lock()
	c.locked(func() {
		if c.closed {
			return
		}
		c.closed = true
		close(c.buffer)
	})
	return nil
}

func (c *Channel[T]) Len() int {
	return len(c.buffer)
}

// Dropped reports items lost to contention, eviction, a full buffer or a
// closed channel.
func (c *Channel[T]) Dropped() uint64 {
	return c.dropped.Load()
}

// Recoveries reports how many times a poisoned channel was reclaimed.
func (c *Channel[T]) Recoveries() uint64 {
	return c.recoveries.Load()
}

// locked runs fn with access already held and always releases it.
func (c *Channel[T]) locked(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.poisoned = true
			c.access.Unlock()
			panic(r)
		}
		c.access.Unlock()
	}()
	if c.poisoned {
		c.poisoned = false
		c.recoveries.Add(1)
	}
	fn()
}
