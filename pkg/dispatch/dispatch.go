// Package dispatch provides the single logical thread the page layer runs
// on. All state mutation and notification delivery happens on one loop, so
// ordering follows from FIFO task execution and no locking is needed in
// the state layer. Background work (network, disk) runs on its own
// goroutine and posts its completion back through a Dispatcher.
package dispatch

import "sync"

// Dispatcher schedules a callback onto the owning thread. Dispatch reports
// whether the callback was accepted; a stopped dispatcher rejects work.
type Dispatcher interface {
	Dispatch(fn func()) bool
}

// Func adapts a function to the Dispatcher interface. Useful in tests,
// where a manual queue stands in for the loop.
type Func func(fn func()) bool

// Dispatch implements Dispatcher.
func (f Func) Dispatch(fn func()) bool { return f(fn) }

// Goroutine returns a dispatcher that runs each task on its own goroutine.
// It is the executor for blocking collaborator calls; completions must be
// posted back to the loop, never applied from the background goroutine.
func Goroutine() Dispatcher {
	return Func(func(fn func()) bool {
		if fn == nil {
			return false
		}
		go fn()
		return true
	})
}

// Loop executes posted tasks on a single goroutine in FIFO order.
type Loop struct {
	mu      sync.Mutex
	tasks   chan func()
	stopped bool
	done    chan struct{}
}

// NewLoop creates a loop with a buffered task queue. Call Start before
// dispatching and Stop when the surface shuts down.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 128),
		done:  make(chan struct{}),
	}
}

// Start begins executing tasks on a dedicated goroutine.
func (l *Loop) Start() {
	go func() {
		defer close(l.done)
		for fn := range l.tasks {
			fn()
		}
	}()
}

// Dispatch posts fn to the loop. Returns false if the loop has stopped or
// fn is nil.
func (l *Loop) Dispatch(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	l.tasks <- fn
	return true
}

// Stop rejects further work, lets already-queued tasks finish, and blocks
// until the loop goroutine exits. Idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.stopped = true
	close(l.tasks)
	l.mu.Unlock()
	<-l.done
}
