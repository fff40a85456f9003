// Package dom provides the Document Object Model tree structure built by
// the HTML tree constructor, plus the HttpResponse and URL collaborators
// that feed the rendering pipeline.
package dom

// NodeKind represents the type of a DOM node.
type NodeKind int

const (
	// DocumentNode is the root node of a window; there is exactly one per document.
	DocumentNode NodeKind = iota
	// ElementNode represents an HTML element (e.g., <div>, <p>).
	ElementNode
	// TextNode represents text content within an element.
	TextNode
)

// TagKind is a closed enumeration of the element names this core recognizes.
// Unknown tags still become elements, tagged Generic, so balancing and
// whitespace handling are unaffected by vocabulary gaps.
type TagKind int

const (
	Html TagKind = iota
	Head
	Body
	Style
	Script
	Div
	P
	H1
	H2
	A
	Ul
	Li
	Generic
)

// tagNames maps a TagKind back to its lowercase source spelling.
var tagNames = map[TagKind]string{
	Html: "html", Head: "head", Body: "body", Style: "style", Script: "script",
	Div: "div", P: "p", H1: "h1", H2: "h2", A: "a", Ul: "ul", Li: "li",
}

// String returns the tag's lowercase source spelling, or "" for Generic.
func (k TagKind) String() string {
	return tagNames[k]
}

// TagKindFromString maps a lowercased tag name to its TagKind, defaulting
// to Generic for anything this core does not recognize.
func TagKindFromString(name string) TagKind {
	for k, n := range tagNames {
		if n == name {
			return k
		}
	}
	return Generic
}

// IsBlockElement reports whether a tag kind is laid out as a block box by
// default (spec.md §4.5 display defaulting).
func (k TagKind) IsBlockElement() bool {
	switch k {
	case Html, Body, Div, P, H1, H2, Ul, Li:
		return true
	default:
		return false
	}
}

// Attribute is a single name/value pair, kept in source order.
type Attribute struct {
	Name  string
	Value string
}

// Window is the context shared by every node of one parsed document.
// It exists so a Node can carry a back-reference to "the document it lives
// in" without owning it.
type Window struct {
	document *Node
}

// NewWindow creates a window with a fresh, empty document node.
func NewWindow() *Window {
	w := &Window{}
	w.document = &Node{Kind: DocumentNode, Window: w}
	return w
}

// Document returns the window's single document node.
func (w *Window) Document() *Node {
	return w.document
}

// Node is a node in the DOM tree. Ownership flows parent → child; Parent,
// PrevSibling and Window are non-owning back-references (spec.md §9).
type Node struct {
	Kind       NodeKind
	TagKind    TagKind   // valid when Kind == ElementNode
	Attributes []Attribute // valid when Kind == ElementNode; source order preserved
	Text       string    // valid when Kind == TextNode

	Parent       *Node
	FirstChild   *Node
	LastChild    *Node
	PrevSibling  *Node
	NextSibling  *Node

	Window *Window
}

// NewElement creates a detached element node of the given tag kind.
func NewElement(kind TagKind, attrs []Attribute, window *Window) *Node {
	return &Node{Kind: ElementNode, TagKind: kind, Attributes: attrs, Window: window}
}

// NewText creates a detached text node.
func NewText(text string, window *Window) *Node {
	return &Node{Kind: TextNode, Text: text, Window: window}
}

// AppendChild links child as the new last child of n, updating all
// affected sibling/parent pointers.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.NextSibling = nil
	if n.LastChild == nil {
		n.FirstChild = child
		child.PrevSibling = nil
	} else {
		n.LastChild.NextSibling = child
		child.PrevSibling = n.LastChild
	}
	n.LastChild = child
}

// GetAttribute returns the named attribute's value and whether it was present.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element's id attribute, or "" if unset.
func (n *Node) ID() string {
	v, _ := n.GetAttribute("id")
	return v
}

// Classes returns the element's space-separated class attribute as a slice.
func (n *Node) Classes() []string {
	class, ok := n.GetAttribute("class")
	if !ok || class == "" {
		return nil
	}
	var classes []string
	start := 0
	for i := 0; i <= len(class); i++ {
		if i == len(class) || class[i] == ' ' {
			if i > start {
				classes = append(classes, class[start:i])
			}
			start = i + 1
		}
	}
	return classes
}

// GetElementByTagKind returns the first node in pre-order with the given
// tag kind, or nil. Ported from original_source's get_target_element_node.
func GetElementByTagKind(root *Node, kind TagKind) *Node {
	if root == nil {
		return nil
	}
	if root.Kind == ElementNode && root.TagKind == kind {
		return root
	}
	if found := GetElementByTagKind(root.FirstChild, kind); found != nil {
		return found
	}
	return GetElementByTagKind(root.NextSibling, kind)
}
