package medications

import (
	"context"
	"fmt"

	"github.com/hanimtuba/medication-tracking/internal/medication"
	"github.com/hanimtuba/medication-tracking/internal/view"
	"github.com/hanimtuba/medication-tracking/pkg/dispatch"
	"github.com/hanimtuba/medication-tracking/pkg/logging"
	"github.com/hanimtuba/medication-tracking/pkg/page"
	"github.com/hanimtuba/medication-tracking/pkg/theme"
)

// Deps carries the page's collaborators, all constructed at the
// composition root. The page performs no lookup of its own.
type Deps struct {
	State *ListState
	List  *medication.ListMedications

	// UI receives load completions; it must be the loop the controller
	// lives on. Async runs the blocking use-case call.
	UI    dispatch.Dispatcher
	Async dispatch.Dispatcher

	Colors theme.ColorScheme
	Sink   *logging.Sink
}

// Page is the medication-list screen.
type Page struct {
	page.PageBase
	deps Deps
}

// NewPage creates the page. Async defaults to a goroutine-per-task
// executor and Sink to the process default.
func NewPage(deps Deps) *Page {
	if deps.Async == nil {
		deps.Async = dispatch.Goroutine()
	}
	if deps.Sink == nil {
		deps.Sink = logging.Default()
	}
	return &Page{deps: deps}
}

// Provider returns the borrowed list state.
func (p *Page) Provider() *ListState { return p.deps.State }

// PageReady triggers the initial load: loading-started is emitted
// synchronously, the use case runs on the async executor, and the
// completion re-enters through the UI dispatcher. If the page was
// unmounted in the meantime the state ignores the completion.
func (p *Page) PageReady() {
	p.deps.State.BeginLoad()
	p.deps.Async.Dispatch(func() {
		r := p.deps.List.Execute(context.Background())
		p.deps.UI.Dispatch(func() {
			p.deps.State.FinishLoad(r)
		})
	})
}

// BuildBody renders one of three shapes: spinner while loading, banner on
// failure, the medication list otherwise.
func (p *Page) BuildBody() page.RenderNode {
	s := p.deps.State
	switch {
	case s.Loading():
		return view.Spinner{Label: "Loading medications"}
	case s.Failure() != nil:
		f := *s.Failure()
		return view.Banner{
			Message: f.Message(),
			Color:   p.deps.Colors.StatusColor(f.Kind()),
		}
	default:
		items := s.Items()
		if len(items) == 0 {
			return view.Text{Content: "No medications yet", Color: p.deps.Colors.OnBackground}
		}
		rows := make([]page.RenderNode, 0, len(items))
		for _, m := range items {
			rows = append(rows, view.Text{
				Content: fmt.Sprintf("%s %s (%s)", m.Name, m.Dosage, m.Schedule),
				Color:   p.deps.Colors.OnBackground,
			})
		}
		return view.ListView{Items: rows}
	}
}

// BuildAppBar supplies the title chrome.
func (p *Page) BuildAppBar() page.RenderNode {
	return view.AppBar{Title: "Medications"}
}

// BuildPrimaryAction supplies the add-medication action.
func (p *Page) BuildPrimaryAction() page.RenderNode {
	return view.ActionButton{Label: "Add medication"}
}
