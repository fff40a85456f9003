package html

import (
	"github.com/ufoo68/rust-browser/dom"
	"github.com/ufoo68/rust-browser/log"
)

// InsertionMode is a tree-constructor state, per spec.md §4.2.
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	AfterHead
	InBody
	Text
	AfterBody
	AfterAfterBody
)

// TreeConstructor builds a DOM tree from a token stream, driven by an
// insertion-mode state machine plus an explicit open-element stack
// (spec.md §4.2, §9).
type TreeConstructor struct {
	tok    *Tokenizer
	mode   InsertionMode
	window *dom.Window
	stack  []*dom.Node
}

// NewTreeConstructor creates a constructor reading from tok.
func NewTreeConstructor(tok *Tokenizer) *TreeConstructor {
	return &TreeConstructor{tok: tok, mode: Initial, window: dom.NewWindow()}
}

// Construct runs the token loop to completion and returns the resulting window.
func (c *TreeConstructor) Construct() *dom.Window {
	for {
		tok := c.tok.Next()
		if c.dispatch(tok) {
			break
		}
	}
	return c.window
}

// dispatch processes one token under the current insertion mode and
// returns true once construction is complete.
func (c *TreeConstructor) dispatch(tok Token) bool {
	switch c.mode {
	case Initial:
		c.mode = BeforeHTML
		return c.dispatch(tok)

	case BeforeHTML:
		if tok.Type == Eof {
			return true
		}
		if tok.Type == StartTag && dom.TagKindFromString(tok.Tag) == dom.Html {
			c.insertElement(tok)
			c.mode = BeforeHead
			return false
		}
		c.insertHTML()
		c.mode = BeforeHead
		return c.dispatch(tok)

	case BeforeHead:
		return c.handleBeforeHead(tok)

	case InHead:
		return c.handleInHead(tok)

	case AfterHead:
		return c.handleAfterHead(tok)

	case InBody:
		return c.handleInBody(tok)

	case Text:
		return c.handleText(tok)

	case AfterBody, AfterAfterBody:
		return tok.Type == Eof
	}
	return true
}

func (c *TreeConstructor) current() *dom.Node {
	if len(c.stack) == 0 {
		return c.window.Document()
	}
	return c.stack[len(c.stack)-1]
}

func (c *TreeConstructor) push(n *dom.Node) {
	c.stack = append(c.stack, n)
}

// popUntilMatch removes elements up through (and including) the nearest
// open element with the given tag kind. An end tag with no matching open
// element is ignored, per spec.md §4.2.
func (c *TreeConstructor) popUntilMatch(kind dom.TagKind) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].TagKind == kind {
			c.stack = c.stack[:i]
			return
		}
	}
	log.Debugf("end tag %q has no matching open element, ignored", kind.String())
}

func (c *TreeConstructor) insertHTML() {
	el := dom.NewElement(dom.Html, nil, c.window)
	c.current().AppendChild(el)
	c.push(el)
}

func (c *TreeConstructor) createElement(tok Token) *dom.Node {
	attrs := make([]dom.Attribute, len(tok.Attributes))
	copy(attrs, tok.Attributes)
	return dom.NewElement(dom.TagKindFromString(tok.Tag), attrs, c.window)
}

// insertElement appends a new element as a child of the current node and,
// unless the start tag was self-closing, pushes it onto the open-element
// stack (spec.md §4.2 "Self-closing start tags ... do not push").
func (c *TreeConstructor) insertElement(tok Token) *dom.Node {
	el := c.createElement(tok)
	c.current().AppendChild(el)
	if !tok.SelfClosing {
		c.push(el)
	}
	return el
}

// appendOrExtendText appends a character, merging consecutive Char tokens
// into a single Text node adjacent to the current open element.
func (c *TreeConstructor) appendOrExtendText(ch rune) {
	cur := c.current()
	if cur.LastChild != nil && cur.LastChild.Kind == dom.TextNode {
		cur.LastChild.Text += string(ch)
		return
	}
	cur.AppendChild(dom.NewText(string(ch), c.window))
}

func (c *TreeConstructor) handleBeforeHead(tok Token) bool {
	if tok.Type == Eof {
		return true
	}
	if tok.Type == StartTag && dom.TagKindFromString(tok.Tag) == dom.Head {
		c.insertElement(tok)
		c.mode = InHead
		return false
	}
	head := dom.NewElement(dom.Head, nil, c.window)
	c.current().AppendChild(head)
	c.push(head)
	c.mode = InHead
	return c.dispatch(tok)
}

func (c *TreeConstructor) handleInHead(tok Token) bool {
	switch tok.Type {
	case StartTag:
		kind := dom.TagKindFromString(tok.Tag)
		if kind == dom.Style {
			c.insertElement(tok)
			c.mode = Text
			return false
		}
		if kind == dom.Script {
			c.insertElement(tok)
			c.tok.SwitchToScriptData()
			return false
		}
		// Any other start tag ends the head: reprocess it in AfterHead.
		c.popUntilMatch(dom.Head)
		c.mode = AfterHead
		return c.dispatch(tok)

	case EndTag:
		if dom.TagKindFromString(tok.Tag) == dom.Head {
			c.popUntilMatch(dom.Head)
			c.mode = AfterHead
			return false
		}
		return false

	case Char:
		// Character data in the head, whitespace or not, is discarded.
		return false

	case Eof:
		return true
	}
	return false
}

func (c *TreeConstructor) handleAfterHead(tok Token) bool {
	switch tok.Type {
	case Eof:
		return true
	case StartTag:
		if dom.TagKindFromString(tok.Tag) == dom.Body {
			c.insertElement(tok)
			c.mode = InBody
			return false
		}
	}
	// Any other token implies an (unwritten) <body>.
	body := dom.NewElement(dom.Body, nil, c.window)
	c.current().AppendChild(body)
	c.push(body)
	c.mode = InBody
	return c.dispatch(tok)
}

func (c *TreeConstructor) handleInBody(tok Token) bool {
	switch tok.Type {
	case StartTag:
		kind := dom.TagKindFromString(tok.Tag)
		c.insertElement(tok)
		if kind == dom.Script {
			c.tok.SwitchToScriptData()
		}
		return false

	case EndTag:
		c.popUntilMatch(dom.TagKindFromString(tok.Tag))
		return false

	case Char:
		if c.current().Kind == dom.ElementNode && c.current().TagKind == dom.Script {
			// Script bodies are discarded: no execution, no DOM text (spec.md §4.2).
			return false
		}
		c.appendOrExtendText(tok.Char)
		return false

	case Eof:
		c.mode = AfterAfterBody
		return true
	}
	return false
}

// handleText collects raw character data (used for <style> bodies) until
// the matching end tag, merging consecutive characters into one Text node.
func (c *TreeConstructor) handleText(tok Token) bool {
	switch tok.Type {
	case Char:
		c.appendOrExtendText(tok.Char)
		return false
	case EndTag:
		c.popUntilMatch(dom.TagKindFromString(tok.Tag))
		c.mode = InHead
		return false
	case Eof:
		return true
	}
	return false
}

// Parse is a convenience entry point: tokenize and construct in one call.
func Parse(html string) *dom.Window {
	return NewTreeConstructor(NewTokenizer(html)).Construct()
}
