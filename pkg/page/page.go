// Package page binds one observable state container to a render host and
// drives the page lifecycle: mount, a single post-first-commit ready hook,
// re-render per change notification, unmount with guaranteed unsubscribe.
//
// Pages are capability sets, not an inheritance hierarchy: a concrete page
// implements Page plus whichever of the optional builder interfaces it
// needs, and embeds PageBase for no-op defaults.
package page

import "github.com/hanimtuba/medication-tracking/pkg/observe"

// RenderNode is one node of page content. The controller treats it as
// opaque; only the render host interprets it.
type RenderNode interface{}

// State is what the controller needs from a state container. Embedding
// observe.StateNotifier satisfies it.
type State interface {
	Subscribe(fn observe.Listener) observe.Subscription
	Attach()
	Detach()
}

// Page is the required capability set of a concrete page. Provider returns
// the borrowed state instance — the page receives it fully constructed
// (typically from the composition root) and the controller performs no
// construction or lookup of its own.
type Page[S State] interface {
	Provider() S
	BuildBody() RenderNode
}

// ReadyHandler is implemented by pages that want the post-mount ready
// hook, invoked exactly once after the first frame commits. This is where
// the initial data load belongs.
type ReadyHandler interface {
	PageReady()
}

// AppBarBuilder supplies the optional app bar chrome slot.
type AppBarBuilder interface {
	BuildAppBar() RenderNode
}

// PrimaryActionBuilder supplies the optional primary action chrome slot.
type PrimaryActionBuilder interface {
	BuildPrimaryAction() RenderNode
}

// Host is the rendering surface's side of the contract. The controller
// calls RequestRender whenever the provider emits a change notification;
// the host responds by calling Controller.Render on its own schedule.
type Host interface {
	RequestRender()
}

// Frame is the output of one render pass.
type Frame struct {
	Body          RenderNode
	AppBar        RenderNode
	PrimaryAction RenderNode
}

// PageBase provides no-op defaults for the optional hooks. Embed it in a
// page struct and define only the methods the page actually needs:
//
//	type settingsPage struct {
//	    page.PageBase
//	    state *settingsState
//	}
//
//	func (p *settingsPage) Provider() *settingsState  { return p.state }
//	func (p *settingsPage) BuildBody() page.RenderNode { ... }
type PageBase struct{}

// PageReady does nothing.
func (PageBase) PageReady() {}

// BuildAppBar returns no app bar.
func (PageBase) BuildAppBar() RenderNode { return nil }

// BuildPrimaryAction returns no primary action.
func (PageBase) BuildPrimaryAction() RenderNode { return nil }
