// Package view defines the render-node vocabulary the app's pages emit
// and a console host that interprets it. The page layer treats these
// nodes as opaque; any other host could define its own set.
package view

import (
	"github.com/hanimtuba/medication-tracking/pkg/page"
	"github.com/hanimtuba/medication-tracking/pkg/theme"
)

// Text is a single line of content.
type Text struct {
	Content string
	Color   theme.Color
}

// Banner is a prominent message, used for failure indications.
type Banner struct {
	Message string
	Color   theme.Color
}

// Spinner indicates an operation in progress.
type Spinner struct {
	Label string
}

// ListView lays out its items vertically.
type ListView struct {
	Items []page.RenderNode
}

// AppBar is the page chrome title slot.
type AppBar struct {
	Title string
}

// ActionButton is the page's primary action slot.
type ActionButton struct {
	Label string
}
