package layout

import (
	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
)

// Kind is the box kind a layout object resolves to, per spec.md §4.4.
type Kind int

const (
	Block Kind = iota
	Inline
	Text
)

// Point is a top-left position in content-area pixels.
type Point struct {
	X, Y int
}

// Size is a box's content size in pixels.
type Size struct {
	Width, Height int
}

// Object is a layout-tree node paired to a DOM node. Only FirstChild and
// NextSibling link the layout tree; Parent links are not needed because the
// two traversal passes carry parent state as arguments (spec.md §3).
type Object struct {
	Node  *dom.Node
	Kind  Kind
	Style ComputedStyle
	Point Point
	Size  Size

	FirstChild  *Object
	NextSibling *Object
}

// createLayoutObject computes node's style and decides whether it
// participates in layout at all. A nil result means "display:none";
// the caller must continue with the node's next sibling.
func createLayoutObject(node *dom.Node, parentStyle *ComputedStyle, sheet *cssom.StyleSheet) *Object {
	if node == nil {
		return nil
	}

	style := defaultStyle(cascade(node, sheet), node, parentStyle)
	if style.Display == DisplayNone {
		return nil
	}

	var kind Kind
	switch {
	case node.Kind == dom.TextNode:
		kind = Text
	case style.Display == DisplayBlock:
		kind = Block
	default:
		kind = Inline
	}

	return &Object{Node: node, Kind: kind, Style: style}
}

// buildLayoutTree walks the DOM subtree rooted at node, skipping
// display:none nodes (continuing into their next sibling), and links the
// resulting layout objects as a parallel tree (spec.md §4.4).
func buildLayoutTree(node *dom.Node, parentStyle *ComputedStyle, sheet *cssom.StyleSheet) *Object {
	target := node
	obj := createLayoutObject(target, parentStyle, sheet)
	for obj == nil && target != nil {
		target = target.NextSibling
		obj = createLayoutObject(target, parentStyle, sheet)
	}
	if target == nil {
		return nil
	}

	firstChild := buildLayoutTree(target.FirstChild, &obj.Style, sheet)
	nextSibling := buildLayoutTree(target.NextSibling, parentStyle, sheet)

	obj.FirstChild = firstChild
	obj.NextSibling = nextSibling
	return obj
}
