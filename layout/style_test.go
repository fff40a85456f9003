package layout

import (
	"testing"

	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
)

func TestColorFromName(t *testing.T) {
	c, err := ColorFromName("black")
	if err != nil || c != Black {
		t.Errorf("ColorFromName(black) = %+v, %v, want Black, nil", c, err)
	}
	if _, err := ColorFromName("chartreuse"); err == nil {
		t.Error("expected an error for an unrecognized color name")
	}
}

func TestColorCodeU32(t *testing.T) {
	if got := White.CodeU32(); got != 0xFFFFFF {
		t.Errorf("White.CodeU32() = %x, want ffffff", got)
	}
	if got := Black.CodeU32(); got != 0x000000 {
		t.Errorf("Black.CodeU32() = %x, want 000000", got)
	}
}

func TestDefaultFontSizeByTag(t *testing.T) {
	w := dom.NewWindow()
	h1 := dom.NewElement(dom.H1, nil, w)
	h2 := dom.NewElement(dom.H2, nil, w)
	p := dom.NewElement(dom.P, nil, w)

	if got := defaultFontSize(h1); got != XXLarge {
		t.Errorf("defaultFontSize(h1) = %v, want XXLarge", got)
	}
	if got := defaultFontSize(h2); got != XLarge {
		t.Errorf("defaultFontSize(h2) = %v, want XLarge", got)
	}
	if got := defaultFontSize(p); got != Medium {
		t.Errorf("defaultFontSize(p) = %v, want Medium", got)
	}
}

func TestDefaultTextDecoration(t *testing.T) {
	w := dom.NewWindow()
	a := dom.NewElement(dom.A, nil, w)
	div := dom.NewElement(dom.Div, nil, w)

	if got := defaultTextDecoration(a); got != Underline {
		t.Errorf("defaultTextDecoration(a) = %v, want Underline", got)
	}
	if got := defaultTextDecoration(div); got != DecorationNone {
		t.Errorf("defaultTextDecoration(div) = %v, want None", got)
	}
}

// TestCascadeH1Color reproduces spec.md Scenario E: an h1 selector setting
// color should apply to an <h1> element, with font-size defaulted by tag.
func TestCascadeH1Color(t *testing.T) {
	sheet := cssom.Parse("h1{color:black;}")
	w := dom.NewWindow()
	h1 := dom.NewElement(dom.H1, nil, w)

	style := defaultStyle(cascade(h1, &sheet), h1, nil)

	if style.Color != Black {
		t.Errorf("Color = %+v, want Black", style.Color)
	}
	if style.FontSize != XXLarge {
		t.Errorf("FontSize = %v, want XXLarge", style.FontSize)
	}
}

func TestCascadeLastRuleWins(t *testing.T) {
	sheet := cssom.Parse("p{color:black;} p{color:white;}")
	w := dom.NewWindow()
	p := dom.NewElement(dom.P, nil, w)

	style := defaultStyle(cascade(p, &sheet), p, nil)
	if style.Color != White {
		t.Errorf("Color = %+v, want White (last rule wins)", style.Color)
	}
}

func TestCascadeClassAndIdSelectors(t *testing.T) {
	sheet := cssom.Parse(".warn{color:black;} #main{background-color:black;}")
	w := dom.NewWindow()
	n := dom.NewElement(dom.Div, []dom.Attribute{{Name: "class", Value: "warn"}, {Name: "id", Value: "main"}}, w)

	style := defaultStyle(cascade(n, &sheet), n, nil)
	if style.Color != Black {
		t.Errorf("Color = %+v, want Black", style.Color)
	}
	if style.BackgroundColor != Black {
		t.Errorf("BackgroundColor = %+v, want Black", style.BackgroundColor)
	}
}

func TestDefaultStyleUnsetFieldsFallBackToRoot(t *testing.T) {
	w := dom.NewWindow()
	div := dom.NewElement(dom.Div, nil, w)
	style := defaultStyle(ComputedStyle{}, div, nil)

	if style.BackgroundColor != White {
		t.Errorf("BackgroundColor = %+v, want White", style.BackgroundColor)
	}
	if style.Color != Black {
		t.Errorf("Color = %+v, want Black", style.Color)
	}
	if style.Display != DisplayBlock {
		t.Errorf("Display = %v, want Block (div is a block element)", style.Display)
	}
}
