package observe

// StateNotifier is the embeddable base for page state containers. Embed it
// in your state struct and route every field mutation through Mutate so the
// mutate-then-notify discipline holds:
//
//	type listState struct {
//	    observe.StateNotifier
//	    items   []Item
//	    loading bool
//	}
//
//	func (s *listState) BeginLoad() {
//	    s.Mutate(func() { s.loading = true })
//	}
//
// Mutation rights belong to the attached controller's mount window: the
// controller attaches the state on mount and detaches it on unmount, and
// Mutate is a no-op while detached. An async completion that lands after
// unmount therefore leaves the fields untouched.
type StateNotifier struct {
	Notifier
	attached bool
}

// Attach grants mutation rights. Called by the owning controller at mount.
func (s *StateNotifier) Attach() { s.attached = true }

// Detach revokes mutation rights. Called by the owning controller at
// unmount; subsequent Mutate calls are no-ops until re-attached.
func (s *StateNotifier) Detach() { s.attached = false }

// Attached reports whether a controller currently holds mutation rights.
func (s *StateNotifier) Attached() bool { return s.attached }

// Mutate runs fn and then notifies listeners. The two steps are atomic
// with respect to the dispatch loop: no render can observe a half-applied
// mutation. While detached, Mutate does nothing and reports false.
func (s *StateNotifier) Mutate(fn func()) bool {
	if !s.attached {
		return false
	}
	if fn != nil {
		fn()
	}
	s.Notify()
	return true
}
