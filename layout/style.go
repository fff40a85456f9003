// Package layout resolves computed style via cascade + inheritance, builds
// the layout tree from the DOM, and computes block/inline geometry in a
// single pass (spec.md §4.4, §4.5).
package layout

import (
	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
	"github.com/ufoo68/rust-browser/errs"
)

// Color is a named or hex-coded color. Only the fixed vocabulary the
// original renderer recognized is supported; anything else is an error.
type Color struct {
	Name string
	Code string // "#RRGGBB"
}

// White and Black are the two colors the core vocabulary recognizes.
var (
	White = Color{Name: "white", Code: "#FFFFFF"}
	Black = Color{Name: "black", Code: "#000000"}
)

// ColorFromName resolves a CSS color keyword.
func ColorFromName(name string) (Color, error) {
	switch name {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Color{}, errs.NewUnexpectedInputError("unexpected color name: %s", name)
	}
}

// ColorFromCode resolves a "#RRGGBB" color code.
func ColorFromCode(code string) (Color, error) {
	if len(code) != 7 || code[0] != '#' {
		return Color{}, errs.NewUnexpectedInputError("unexpected color code: %s", code)
	}
	switch code {
	case "#000000":
		return Black, nil
	case "#FFFFFF":
		return White, nil
	default:
		return Color{}, errs.NewUnexpectedInputError("unexpected color code: %s", code)
	}
}

// CodeU32 returns the color's RRGGBB code as a packed 24-bit integer.
func (c Color) CodeU32() uint32 {
	var v uint32
	for i := 1; i < len(c.Code); i++ {
		v <<= 4
		v |= uint32(hexDigit(c.Code[i]))
	}
	return v
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// DisplayType is the CSS display keyword a layout object resolves to.
type DisplayType int

const (
	DisplayBlock DisplayType = iota
	DisplayInline
	DisplayNone
)

// DisplayTypeFromString resolves a CSS display value token.
func DisplayTypeFromString(s string) (DisplayType, error) {
	switch s {
	case "block":
		return DisplayBlock, nil
	case "inline":
		return DisplayInline, nil
	case "none":
		return DisplayNone, nil
	default:
		return 0, errs.NewUnexpectedInputError("unexpected display type: %s", s)
	}
}

func defaultDisplay(node *dom.Node) DisplayType {
	switch node.Kind {
	case dom.DocumentNode:
		return DisplayBlock
	case dom.TextNode:
		return DisplayInline
	case dom.ElementNode:
		if node.TagKind.IsBlockElement() {
			return DisplayBlock
		}
		return DisplayInline
	}
	return DisplayInline
}

// FontSize is the resolved font-size keyword.
type FontSize int

const (
	Medium FontSize = iota
	XLarge
	XXLarge
)

func defaultFontSize(node *dom.Node) FontSize {
	if node.Kind != dom.ElementNode {
		return Medium
	}
	switch node.TagKind {
	case dom.H1:
		return XXLarge
	case dom.H2:
		return XLarge
	default:
		return Medium
	}
}

// TextDecoration is the resolved text-decoration keyword.
type TextDecoration int

const (
	DecorationNone TextDecoration = iota
	Underline
)

func defaultTextDecoration(node *dom.Node) TextDecoration {
	if node.Kind == dom.ElementNode && node.TagKind == dom.A {
		return Underline
	}
	return DecorationNone
}

// ComputedStyle holds the per-layout-object style, fully resolved: every
// field is either set by cascade/inheritance or defaulted (spec.md §4.5).
type ComputedStyle struct {
	BackgroundColor Color
	Color           Color
	Display         DisplayType
	FontSize        FontSize
	TextDecoration  TextDecoration
	Width           int
	Height          int

	backgroundColorSet bool
	colorSet           bool
	displaySet         bool
}

// cascade walks the stylesheet in order and applies every rule whose
// selector matches node, last rule wins per property (spec.md §4.4).
func cascade(node *dom.Node, sheet *cssom.StyleSheet) ComputedStyle {
	var style ComputedStyle
	if sheet == nil {
		return style
	}
	for _, rule := range sheet.Rules {
		if !selectorMatches(rule.Selector, node) {
			continue
		}
		for _, decl := range rule.Declarations {
			applyDeclaration(&style, decl)
		}
	}
	return style
}

func selectorMatches(sel cssom.Selector, node *dom.Node) bool {
	if node.Kind != dom.ElementNode {
		return false
	}
	switch sel.Kind {
	case cssom.TypeSelector:
		return node.TagKind.String() == sel.Name
	case cssom.ClassSelector:
		for _, c := range node.Classes() {
			if c == sel.Name {
				return true
			}
		}
		return false
	case cssom.IdSelector:
		return node.ID() == sel.Name
	default:
		return false
	}
}

func applyDeclaration(style *ComputedStyle, decl cssom.Declaration) {
	switch decl.Property {
	case "background-color":
		if c, ok := colorFromToken(decl.Value); ok {
			style.BackgroundColor = c
			style.backgroundColorSet = true
		}
	case "color":
		if c, ok := colorFromToken(decl.Value); ok {
			style.Color = c
			style.colorSet = true
		}
	case "display":
		if decl.Value.Type == cssom.Ident {
			if d, err := DisplayTypeFromString(decl.Value.Ident); err == nil {
				style.Display = d
				style.displaySet = true
			}
		}
	}
}

func colorFromToken(tok cssom.Token) (Color, bool) {
	switch tok.Type {
	case cssom.Ident:
		if c, err := ColorFromName(tok.Ident); err == nil {
			return c, true
		}
	case cssom.Hash:
		if c, err := ColorFromCode("#" + tok.Ident); err == nil {
			return c, true
		}
	}
	return Color{}, false
}

// defaultStyle fills in every unset field of style, first from the parent's
// computed style (when set) and otherwise from the root defaults, per
// spec.md §4.5.
func defaultStyle(style ComputedStyle, node *dom.Node, parent *ComputedStyle) ComputedStyle {
	if !style.backgroundColorSet {
		if parent != nil && parent.backgroundColorSet {
			style.BackgroundColor = parent.BackgroundColor
		} else {
			style.BackgroundColor = White
		}
	}
	if !style.colorSet {
		if parent != nil && parent.colorSet {
			style.Color = parent.Color
		} else {
			style.Color = Black
		}
	}
	if !style.displaySet {
		style.Display = defaultDisplay(node)
	}
	style.FontSize = defaultFontSize(node)
	style.TextDecoration = defaultTextDecoration(node)
	return style
}
