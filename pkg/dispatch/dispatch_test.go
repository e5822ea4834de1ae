package dispatch

import (
	"sync"
	"testing"
)

func TestLoopRunsTasksInPostOrder(t *testing.T) {
	loop := NewLoop()
	loop.Start()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 1; i <= 3; i++ {
		i := i
		loop.Dispatch(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
	loop.Stop()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected FIFO order [1 2 3], got %v", order)
	}
}

func TestDispatchAfterStopIsRejected(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	loop.Stop()

	if loop.Dispatch(func() {}) {
		t.Error("Dispatch accepted work after Stop")
	}
}

func TestStopDrainsQueuedTasks(t *testing.T) {
	loop := NewLoop()
	ran := false
	loop.Dispatch(func() { ran = true })
	loop.Start()
	loop.Stop()

	if !ran {
		t.Error("Queued task was dropped by Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	loop.Stop()
	loop.Stop()
}

func TestNilTaskRejected(t *testing.T) {
	loop := NewLoop()
	if loop.Dispatch(nil) {
		t.Error("Dispatch accepted a nil task")
	}
}

func TestFuncAdapter(t *testing.T) {
	var queued []func()
	d := Func(func(fn func()) bool {
		queued = append(queued, fn)
		return true
	})

	ran := false
	if !d.Dispatch(func() { ran = true }) {
		t.Fatal("Adapter rejected the task")
	}
	queued[0]()
	if !ran {
		t.Error("Adapter did not carry the task through")
	}
}
