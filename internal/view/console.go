package view

import (
	"fmt"
	"io"

	"github.com/hanimtuba/medication-tracking/pkg/page"
)

// ConsoleHost renders frames as indented text. It implements page.Host:
// bind it to a controller's Render and every change notification produces
// a redraw.
type ConsoleHost struct {
	out    io.Writer
	render func() page.Frame
	draws  int
}

// NewConsoleHost creates a host writing to out.
func NewConsoleHost(out io.Writer) *ConsoleHost {
	return &ConsoleHost{out: out}
}

// Bind connects the host to a controller's render step. Must be called
// before the first notification arrives.
func (h *ConsoleHost) Bind(render func() page.Frame) {
	h.render = render
}

// RequestRender implements page.Host.
func (h *ConsoleHost) RequestRender() {
	if h.render == nil {
		return
	}
	h.Draw(h.render())
}

// Draws returns the number of frames drawn.
func (h *ConsoleHost) Draws() int { return h.draws }

// Draw writes one frame.
func (h *ConsoleHost) Draw(frame page.Frame) {
	h.draws++
	fmt.Fprintf(h.out, "--- frame %d ---\n", h.draws)
	if frame.AppBar != nil {
		h.drawNode(frame.AppBar, 0)
	}
	if frame.Body != nil {
		h.drawNode(frame.Body, 1)
	}
	if frame.PrimaryAction != nil {
		h.drawNode(frame.PrimaryAction, 1)
	}
}

func (h *ConsoleHost) drawNode(node page.RenderNode, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch n := node.(type) {
	case AppBar:
		fmt.Fprintf(h.out, "%s== %s ==\n", indent, n.Title)
	case Text:
		fmt.Fprintf(h.out, "%s%s\n", indent, n.Content)
	case Banner:
		fmt.Fprintf(h.out, "%s!! %s\n", indent, n.Message)
	case Spinner:
		fmt.Fprintf(h.out, "%s... %s\n", indent, n.Label)
	case ActionButton:
		fmt.Fprintf(h.out, "%s[ %s ]\n", indent, n.Label)
	case ListView:
		for _, item := range n.Items {
			h.drawNode(item, depth)
		}
	default:
		fmt.Fprintf(h.out, "%s%v\n", indent, n)
	}
}
