// Package observe provides the change-notification contract binding page
// state containers to their controllers: an ordered listener registry and
// an embeddable mutate-then-notify state base.
//
// Everything in this package is single-threaded by contract: one logical
// thread (the dispatch loop) owns mutation and notification delivery.
// Background work re-enters through a dispatcher before touching state.
package observe

// Listener is invoked after each state mutation.
type Listener func()

type entry struct {
	id int
	fn Listener
}

// Notifier maintains an ordered set of listeners. Delivery order equals
// subscription order, and notifications are delivered synchronously on
// the emitting thread.
type Notifier struct {
	entries []entry
	nextID  int
}

// Subscription identifies one listener registration. Cancel is idempotent.
type Subscription struct {
	n  *Notifier
	id int
}

// Subscribe registers a listener and returns its subscription handle.
func (n *Notifier) Subscribe(fn Listener) Subscription {
	n.nextID++
	id := n.nextID
	n.entries = append(n.entries, entry{id: id, fn: fn})
	return Subscription{n: n, id: id}
}

// Cancel removes the listener. Safe to call more than once, and safe on
// the zero Subscription.
func (s Subscription) Cancel() {
	if s.n == nil {
		return
	}
	for i, e := range s.n.entries {
		if e.id == s.id {
			s.n.entries = append(s.n.entries[:i], s.n.entries[i+1:]...)
			return
		}
	}
}

// Notify delivers to every current listener in subscription order.
func (n *Notifier) Notify() {
	// Snapshot so a listener cancelling itself mid-delivery is safe.
	snapshot := make([]entry, len(n.entries))
	copy(snapshot, n.entries)
	for _, e := range snapshot {
		if e.fn != nil {
			e.fn()
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int { return len(n.entries) }
