package observe

import "testing"

func TestNotifyDeliversInSubscriptionOrder(t *testing.T) {
	var n Notifier
	var order []int

	n.Subscribe(func() { order = append(order, 1) })
	n.Subscribe(func() { order = append(order, 2) })
	n.Subscribe(func() { order = append(order, 3) })

	n.Notify()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected delivery order [1 2 3], got %v", order)
	}
}

func TestCancelRemovesListener(t *testing.T) {
	var n Notifier
	calls := 0

	sub := n.Subscribe(func() { calls++ })
	if n.ListenerCount() != 1 {
		t.Fatalf("Expected 1 listener, got %d", n.ListenerCount())
	}

	sub.Cancel()
	if n.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after cancel, got %d", n.ListenerCount())
	}

	n.Notify()
	if calls != 0 {
		t.Errorf("Cancelled listener ran %d times", calls)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	var n Notifier
	sub := n.Subscribe(func() {})
	other := n.Subscribe(func() {})

	sub.Cancel()
	sub.Cancel()

	if n.ListenerCount() != 1 {
		t.Errorf("Double cancel removed the wrong listener: %d left", n.ListenerCount())
	}
	other.Cancel()
}

func TestCancelDuringDelivery(t *testing.T) {
	var n Notifier
	var sub Subscription
	ran := false

	sub = n.Subscribe(func() {
		sub.Cancel()
	})
	n.Subscribe(func() { ran = true })

	n.Notify()

	if !ran {
		t.Error("Listener after a self-cancelling one was skipped")
	}
	if n.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener after self-cancel, got %d", n.ListenerCount())
	}
}

func TestMutateNotifiesAfterApplying(t *testing.T) {
	type counterState struct {
		StateNotifier
		count int
	}
	s := &counterState{}
	s.Attach()

	var observed int
	s.Subscribe(func() { observed = s.count })

	s.Mutate(func() { s.count = 7 })

	if observed != 7 {
		t.Errorf("Listener observed %d, want the post-mutation value 7", observed)
	}
}

func TestMutateEmissionOrderEqualsDeliveryOrder(t *testing.T) {
	type state struct {
		StateNotifier
		value int
	}
	s := &state{}
	s.Attach()

	var seen []int
	s.Subscribe(func() { seen = append(seen, s.value) })

	s.Mutate(func() { s.value = 1 })
	s.Mutate(func() { s.value = 2 })

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Expected observations [1 2], got %v", seen)
	}
}

func TestMutateSuppressedWhileDetached(t *testing.T) {
	type state struct {
		StateNotifier
		value int
	}
	s := &state{}
	s.Attach()
	s.Mutate(func() { s.value = 1 })
	s.Detach()

	notified := false
	s.Subscribe(func() { notified = true })

	if s.Mutate(func() { s.value = 99 }) {
		t.Error("Mutate reported success while detached")
	}
	if s.value != 1 {
		t.Errorf("Detached mutation changed fields: got %d, want 1", s.value)
	}
	if notified {
		t.Error("Detached mutation emitted a notification")
	}
}

func TestReattachRestoresMutation(t *testing.T) {
	type state struct {
		StateNotifier
		value int
	}
	s := &state{}
	s.Attach()
	s.Detach()
	s.Attach()

	if !s.Mutate(func() { s.value = 5 }) {
		t.Error("Mutate failed after re-attach")
	}
	if s.value != 5 {
		t.Errorf("Expected 5, got %d", s.value)
	}
}
