// Package pagetest provides an isolated harness for testing pages without
// a real rendering surface. It drives the same mount, first-commit, and
// re-render steps as a live host, but tasks queue on a manual dispatcher
// the test pumps explicitly, and every frame is recorded for assertions.
package pagetest

import (
	"testing"

	"github.com/hanimtuba/medication-tracking/pkg/dispatch"
	"github.com/hanimtuba/medication-tracking/pkg/page"
)

// Harness mounts one page and records its render passes.
type Harness[S page.State] struct {
	ctrl      *page.Controller[S]
	frames    []page.Frame
	tasks     []func()
	unmounted bool
}

// NewHarness mounts the page. Call Unmount when done, or use
// NewHarnessWithT instead.
func NewHarness[S page.State](p page.Page[S]) *Harness[S] {
	h := &Harness[S]{ctrl: page.NewController[S](p)}
	h.ctrl.Mount(h)
	return h
}

// NewHarnessWithT mounts the page and unmounts it via t.Cleanup. This is
// the recommended constructor for tests.
func NewHarnessWithT[S page.State](t *testing.T, p page.Page[S]) *Harness[S] {
	t.Helper()
	h := NewHarness[S](p)
	t.Cleanup(h.Unmount)
	return h
}

// RequestRender implements page.Host: each request renders synchronously
// and records the frame, so render count equals notification count.
func (h *Harness[S]) RequestRender() {
	h.frames = append(h.frames, h.ctrl.Render())
}

// FirstFrame performs the initial render pass and signals the first
// commit, firing the page's ready hook.
func (h *Harness[S]) FirstFrame() page.Frame {
	frame := h.ctrl.Render()
	h.frames = append(h.frames, frame)
	h.ctrl.FirstFrameCommitted()
	return frame
}

// Dispatcher returns a dispatcher whose tasks queue until Pump runs them.
// Hand it to the page under test in place of the live loop.
func (h *Harness[S]) Dispatcher() dispatch.Dispatcher {
	return dispatch.Func(func(fn func()) bool {
		if fn == nil {
			return false
		}
		h.tasks = append(h.tasks, fn)
		return true
	})
}

// Pump runs queued tasks in order, including tasks those tasks enqueue.
// Returns the number of tasks executed.
func (h *Harness[S]) Pump() int {
	ran := 0
	for len(h.tasks) > 0 {
		fn := h.tasks[0]
		h.tasks = h.tasks[1:]
		fn()
		ran++
	}
	return ran
}

// Frames returns every recorded frame in render order.
func (h *Harness[S]) Frames() []page.Frame { return h.frames }

// LastFrame returns the most recent frame. Zero frame if none rendered.
func (h *Harness[S]) LastFrame() page.Frame {
	if len(h.frames) == 0 {
		return page.Frame{}
	}
	return h.frames[len(h.frames)-1]
}

// RenderCount returns the number of recorded render passes.
func (h *Harness[S]) RenderCount() int { return len(h.frames) }

// Controller exposes the controller for phase assertions.
func (h *Harness[S]) Controller() *page.Controller[S] { return h.ctrl }

// Unmount tears the page down. Idempotent.
func (h *Harness[S]) Unmount() {
	if h.unmounted {
		return
	}
	h.unmounted = true
	h.ctrl.Unmount()
}
