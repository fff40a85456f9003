package layout

import (
	"golang.org/x/image/font/basicfont"

	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
)

// Constants are the collaborator-provided geometry parameters governing
// text wrapping, per spec.md §6.
type Constants struct {
	ContentAreaWidth      int
	CharWidth             int
	CharHeightWithPadding int
}

// DefaultConstants derives layout geometry from the fixed-width reference
// glyph in golang.org/x/image/font/basicfont, so CharWidth and
// CharHeightWithPadding come from actual font metrics rather than
// hand-picked numbers.
func DefaultConstants() Constants {
	face := basicfont.Face7x13
	advance, _ := face.GlyphAdvance('M')
	return Constants{
		ContentAreaWidth:      1000,
		CharWidth:             advance.Round(),
		CharHeightWithPadding: face.Metrics().Height.Round() + 2,
	}
}

// View is the layout tree for one page, built from the DOM's <body>
// subtree and a resolved stylesheet (spec.md §4.4).
type View struct {
	root *Object
	c    Constants
}

// NewView builds and lays out a view. The root is nil if the document has
// no body (spec.md Scenario A).
func NewView(document *dom.Node, sheet *cssom.StyleSheet, c Constants) *View {
	body := dom.GetElementByTagKind(document, dom.Body)
	v := &View{c: c}
	v.root = buildLayoutTree(body, nil, sheet)
	v.updateLayout()
	return v
}

// Root returns the view's root layout object, or nil if empty.
func (v *View) Root() *Object {
	return v.root
}

func (v *View) updateLayout() {
	calculateNodeSize(v.root, Size{Width: v.c.ContentAreaWidth}, v.c)
	calculateNodePosition(v.root, Point{}, Block, nil, nil)
}

// calculateNodeSize computes a Block's width before recursing into its
// children, so they see the parent's real width rather than a zero value;
// the unconditional call after recursion then finalizes every node's size
// (height, for Block, now that children are sized; width and height both,
// for Inline and Text, which depend on child sizes in the first place).
func calculateNodeSize(n *Object, parentSize Size, c Constants) {
	if n == nil {
		return
	}
	if n.Kind == Block {
		n.computeSize(parentSize, c)
	}

	calculateNodeSize(n.FirstChild, n.Size, c)
	calculateNodeSize(n.NextSibling, parentSize, c)

	n.computeSize(parentSize, c)
}

// calculateNodePosition is a pre-order pass: a node is positioned relative
// to its parent and previous sibling before its children are positioned.
func calculateNodePosition(n *Object, parentPoint Point, prevKind Kind, prevPoint *Point, prevSize *Size) {
	if n == nil {
		return
	}
	n.computePosition(parentPoint, prevKind, prevPoint, prevSize)

	calculateNodePosition(n.FirstChild, n.Point, Block, nil, nil)

	point, size := n.Point, n.Size
	calculateNodePosition(n.NextSibling, parentPoint, n.Kind, &point, &size)
}

// computeSize fills in n.Size per spec.md §4.4's size pass.
func (n *Object) computeSize(parentSize Size, c Constants) {
	switch n.Kind {
	case Block:
		n.Size.Width = parentSize.Width
		n.Size.Height = blockChildrenHeight(n)

	case Inline:
		width, height := 0, 0
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			width += child.Size.Width
			if child.Size.Height > height {
				height = child.Size.Height
			}
		}
		n.Size.Width = width
		n.Size.Height = height

	case Text:
		content := n.Node.Text
		contentWidth := len(content) * c.CharWidth
		width := contentWidth
		if width > c.ContentAreaWidth {
			width = c.ContentAreaWidth
		}
		charsPerLine := c.ContentAreaWidth / c.CharWidth
		lines := 1
		if charsPerLine > 0 {
			lines = (len(content) + charsPerLine - 1) / charsPerLine
			if lines == 0 {
				lines = 1
			}
		}
		n.Size.Width = width
		n.Size.Height = lines * c.CharHeightWithPadding
	}
}

func blockChildrenHeight(n *Object) int {
	height := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		height += child.Size.Height
	}
	return height
}

// computePosition fills in n.Point, per spec.md §4.4's position pass.
func (n *Object) computePosition(parentPoint Point, prevKind Kind, prevPoint *Point, prevSize *Size) {
	if prevPoint == nil || prevSize == nil {
		n.Point = parentPoint
		return
	}
	if prevKind == Block || n.Kind == Block {
		n.Point = Point{X: parentPoint.X, Y: prevPoint.Y + prevSize.Height}
	} else {
		n.Point = Point{X: prevPoint.X + prevSize.Width, Y: prevPoint.Y}
	}
}
