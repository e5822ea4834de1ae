package page

import "github.com/hanimtuba/medication-tracking/pkg/observe"

type phase int

const (
	phaseMounting phase = iota
	phaseMounted
	phaseUnmounted
)

// Controller binds one page to one render host for the page's time on
// screen. It owns exactly one subscription to the provider's notifier and
// fires the ready hook exactly once per controller instance: re-renders
// and re-commits never re-fire it, only a fresh controller does.
//
// A Controller is not reusable after Unmount.
type Controller[S State] struct {
	page Page[S]
	host Host
	sub  observe.Subscription

	phase      phase
	readyFired bool

	// Chrome slots are built on the first render pass and reused, so
	// notifications that only touch the body never reconstruct them.
	chromeBuilt   bool
	appBar        RenderNode
	primaryAction RenderNode
}

// NewController creates a controller for the given page. The page's
// provider must already be constructed; the controller never builds state.
func NewController[S State](p Page[S]) *Controller[S] {
	if p == nil {
		panic("page: NewController requires a page")
	}
	return &Controller[S]{page: p}
}

// Mount attaches the provider, establishes the change-notification
// subscription, and transitions to the mounted phase. Calling Mount on an
// already-mounted or unmounted controller is a no-op.
func (c *Controller[S]) Mount(host Host) {
	if c.phase != phaseMounting || host == nil {
		return
	}
	c.host = host
	provider := c.page.Provider()
	provider.Attach()
	c.sub = provider.Subscribe(c.onNotify)
	c.phase = phaseMounted
}

func (c *Controller[S]) onNotify() {
	if c.phase != phaseMounted || c.host == nil {
		return
	}
	c.host.RequestRender()
}

// FirstFrameCommitted is called by the host once its initial render pass
// has committed. It fires the page's ready hook exactly once; the latch
// survives any number of later renders or repeated commit signals.
func (c *Controller[S]) FirstFrameCommitted() {
	if c.phase != phaseMounted || c.readyFired {
		return
	}
	c.readyFired = true
	if r, ok := c.page.(ReadyHandler); ok {
		r.PageReady()
	}
}

// Render produces one frame. The body is rebuilt on every pass; the chrome
// slots are built once and reused for the controller's lifetime. Render is
// synchronous and performs no side effects beyond reading state.
func (c *Controller[S]) Render() Frame {
	if c.phase != phaseMounted {
		return Frame{}
	}
	if !c.chromeBuilt {
		if b, ok := c.page.(AppBarBuilder); ok {
			c.appBar = b.BuildAppBar()
		}
		if b, ok := c.page.(PrimaryActionBuilder); ok {
			c.primaryAction = b.BuildPrimaryAction()
		}
		c.chromeBuilt = true
	}
	return Frame{
		Body:          c.page.BuildBody(),
		AppBar:        c.appBar,
		PrimaryAction: c.primaryAction,
	}
}

// Unmount tears the page down: the subscription is cancelled and the
// provider detached unconditionally, so no notification reaches the host
// and no in-flight completion can mutate the state afterwards. Idempotent.
func (c *Controller[S]) Unmount() {
	if c.phase == phaseUnmounted {
		return
	}
	mounted := c.phase == phaseMounted
	c.phase = phaseUnmounted
	c.sub.Cancel()
	if mounted {
		c.page.Provider().Detach()
	}
	c.host = nil
}

// Mounted reports whether the controller is in the mounted phase.
func (c *Controller[S]) Mounted() bool { return c.phase == phaseMounted }

// ReadyFired reports whether the ready hook has run.
func (c *Controller[S]) ReadyFired() bool { return c.readyFired }
