// Package page glues the pipeline stages together behind the single entry
// point a collaborator drives: feed it a response, then query its DOM dump
// or its display list (spec.md §6).
package page

import (
	"fmt"
	"strings"

	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
	"github.com/ufoo68/rust-browser/html"
	"github.com/ufoo68/rust-browser/layout"
	"github.com/ufoo68/rust-browser/log"
	"github.com/ufoo68/rust-browser/render"
)

// Page holds the DOM built from the most recently received response.
type Page struct {
	window *dom.Window
}

// New creates an empty page.
func New() *Page {
	return &Page{}
}

// ReceiveResponse builds the DOM from resp's body and returns a textual
// dump of the tree, for logging (spec.md §6).
func (p *Page) ReceiveResponse(resp dom.HTTPResponse) string {
	p.window = html.Parse(resp.Body)
	log.Debugf("page received response, status=%d", resp.StatusCode)
	return p.DumpDOM()
}

// DumpDOM renders the current DOM as an indented pre-order text dump, one
// node per line.
func (p *Page) DumpDOM() string {
	if p.window == nil {
		return ""
	}
	var b strings.Builder
	dumpNode(&b, p.window.Document(), 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *dom.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), describeNode(n))
	dumpNode(b, n.FirstChild, depth+1)
	dumpNode(b, n.NextSibling, depth)
}

func describeNode(n *dom.Node) string {
	switch n.Kind {
	case dom.DocumentNode:
		return "Document"
	case dom.ElementNode:
		return n.TagKind.String()
	case dom.TextNode:
		return fmt.Sprintf("Text(%q)", n.Text)
	default:
		return ""
	}
}

// Paint builds the layout tree from the current DOM and sheet, using the
// given layout constants, and returns its display list.
func (p *Page) Paint(sheet cssom.StyleSheet, c layout.Constants) []render.DisplayItem {
	if p.window == nil {
		return nil
	}
	view := layout.NewView(p.window.Document(), &sheet, c)
	return render.Paint(view.Root())
}

// StyleContent returns the text content of the first <style> element in
// document order, the collaborator's raw material for building a
// StyleSheet via cssom.Parse. Any later <style> elements are not read.
func (p *Page) StyleContent() string {
	if p.window == nil {
		return ""
	}
	style := dom.GetElementByTagKind(p.window.Document(), dom.Style)
	if style == nil || style.FirstChild == nil {
		return ""
	}
	return style.FirstChild.Text
}
