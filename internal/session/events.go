// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "sync/atomic"

// Reason explains why a session ended.
type Reason string

const (
	// ReasonUnauthorized means the server answered 401 to an authenticated
	// request and the credential was dropped.
	ReasonUnauthorized Reason = "unauthorized"
	// ReasonLogout means the user logged out explicitly.
	ReasonLogout Reason = "logout"
)

// Event is published whenever the stored credential is invalidated.
type Event struct {
	Reason Reason
}

// Publisher is the write side of the session-event bus.
type Publisher interface {
	Publish(Event)
}

const defaultEventBuffer = 8

// Notifier is an in-process session-event bus. Publish never blocks: when the
// buffer is full the event is dropped, and the consumer still has a pending
// event telling it the session is gone.
type Notifier struct {
	events  chan Event
	dropped atomic.Int64
}

// NewNotifier returns a [Notifier] with a small buffer.
func NewNotifier() *Notifier {
	return &Notifier{events: make(chan Event, defaultEventBuffer)}
}

// Publish implements [Publisher].
func (n *Notifier) Publish(e Event) {
	select {
	case n.events <- e:
	default:
		n.dropped.Add(1)
	}
}

// Events returns the channel consumers read session events from.
func (n *Notifier) Events() <-chan Event {
	return n.events
}

// Dropped reports how many events were discarded because nobody drained the
// buffer in time.
func (n *Notifier) Dropped() int64 {
	return n.dropped.Load()
}
