// Package render converts a layout tree into a flat display list: the
// collaborator-facing output of the rendering pipeline (spec.md §4.6).
// It does not rasterize; that is the framebuffer collaborator's job.
package render

import (
	"github.com/ufoo68/rust-browser/layout"
)

// ItemKind distinguishes the two DisplayItem variants.
type ItemKind int

const (
	RectItem ItemKind = iota
	TextItem
)

// DisplayItem is one paintable unit: a background rectangle or a line of
// text, carrying its resolved style and position (spec.md §3).
type DisplayItem struct {
	Kind  ItemKind
	Style layout.ComputedStyle
	Point layout.Point
	Size  layout.Size // valid when Kind == RectItem
	Text  string      // valid when Kind == TextItem
}

// Paint walks the layout tree in pre-order (document order) and emits one
// Rect per layout object plus one Text for every Text-kind object. Emission
// order is paint order: the collaborator paints back-to-front as received.
func Paint(root *layout.Object) []DisplayItem {
	var items []DisplayItem
	paintNode(root, &items)
	return items
}

func paintNode(n *layout.Object, items *[]DisplayItem) {
	if n == nil {
		return
	}

	*items = append(*items, DisplayItem{
		Kind:  RectItem,
		Style: n.Style,
		Point: n.Point,
		Size:  n.Size,
	})
	if n.Kind == layout.Text {
		*items = append(*items, DisplayItem{
			Kind:  TextItem,
			Style: n.Style,
			Point: n.Point,
			Text:  n.Node.Text,
		})
	}

	paintNode(n.FirstChild, items)
	paintNode(n.NextSibling, items)
}
