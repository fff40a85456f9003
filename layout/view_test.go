package layout

import (
	"testing"

	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/html"
)

func testConstants() Constants {
	return Constants{ContentAreaWidth: 100, CharWidth: 10, CharHeightWithPadding: 20}
}

func TestViewEmptyDocumentHasNoRoot(t *testing.T) {
	window := html.Parse("")
	sheet := cssom.Parse("")
	view := NewView(window.Document(), &sheet, testConstants())
	if view.Root() != nil {
		t.Fatalf("got %v, want nil root for an empty document", view.Root())
	}
}

func TestViewSimpleParagraph(t *testing.T) {
	window := html.Parse("<html><head></head><body><p>Hi</p></body></html>")
	sheet := cssom.Parse("")
	view := NewView(window.Document(), &sheet, testConstants())

	body := view.Root()
	if body == nil {
		t.Fatal("expected a non-nil root for <body>")
	}
	if body.Kind != Block {
		t.Errorf("body.Kind = %v, want Block", body.Kind)
	}
	if body.Point.X != 0 || body.Point.Y != 0 {
		t.Errorf("body.Point = %+v, want (0,0)", body.Point)
	}
	if body.Size.Width != 100 {
		t.Errorf("body.Size.Width = %d, want 100 (ContentAreaWidth)", body.Size.Width)
	}

	p := body.FirstChild
	if p == nil || p.Kind != Block {
		t.Fatalf("expected <p> as body's first child, got %v", p)
	}
	if p.Size.Width != 100 {
		t.Errorf("p.Size.Width = %d, want 100 (inherited from parent, not the zero-value bug)", p.Size.Width)
	}

	text := p.FirstChild
	if text == nil || text.Kind != Text {
		t.Fatalf("expected a Text layout object under <p>, got %v", text)
	}
	if text.Node.Text != "Hi" {
		t.Errorf("text.Node.Text = %q, want Hi", text.Node.Text)
	}
}

// TestComputeSizeWidthPropagatesThroughNesting guards against a regression
// where a Block's width was only ever set on the root, leaving every
// deeper Block at its zero-value width (since children were sized against
// their parent's not-yet-computed Size).
func TestComputeSizeWidthPropagatesThroughNesting(t *testing.T) {
	window := html.Parse("<body><div><p>Hi</p></div></body>")
	sheet := cssom.Parse("")
	c := testConstants()
	view := NewView(window.Document(), &sheet, c)

	body := view.Root()
	div := body.FirstChild
	p := div.FirstChild
	for name, obj := range map[string]*Object{"body": body, "div": div, "p": p} {
		if obj == nil || obj.Size.Width != c.ContentAreaWidth {
			t.Errorf("%s.Size.Width = %v, want %d", name, obj, c.ContentAreaWidth)
		}
	}
}

func TestViewDisplayNoneSkipsSubtree(t *testing.T) {
	window := html.Parse("<body><div>one</div><p>two</p></body>")
	sheet := cssom.Parse("div{display:none;}")
	view := NewView(window.Document(), &sheet, testConstants())

	body := view.Root()
	if body == nil {
		t.Fatal("expected a non-nil root")
	}
	if body.FirstChild == nil || body.FirstChild.Kind != Block {
		t.Fatalf("expected display:none div to be skipped in favor of <p>, got %v", body.FirstChild)
	}
}

func TestComputeSizeTextWrapsAtContentAreaWidth(t *testing.T) {
	window := html.Parse("<body><p>0123456789ABCDE</p></body>")
	sheet := cssom.Parse("")
	c := testConstants() // ContentAreaWidth=100, CharWidth=10 -> 10 chars per line
	view := NewView(window.Document(), &sheet, c)

	text := view.Root().FirstChild.FirstChild
	if text.Size.Width != 100 {
		t.Errorf("Width = %d, want 100 (clamped to ContentAreaWidth)", text.Size.Width)
	}
	if text.Size.Height != 2*c.CharHeightWithPadding {
		t.Errorf("Height = %d, want %d (2 lines)", text.Size.Height, 2*c.CharHeightWithPadding)
	}
}

func TestComputePositionStacksBlocksVertically(t *testing.T) {
	window := html.Parse("<body><p>a</p><p>b</p></body>")
	sheet := cssom.Parse("")
	view := NewView(window.Document(), &sheet, testConstants())

	first := view.Root().FirstChild
	second := first.NextSibling
	if second.Point.Y <= first.Point.Y {
		t.Errorf("second paragraph's y = %d, want greater than first's y = %d", second.Point.Y, first.Point.Y)
	}
	if second.Point.X != first.Point.X {
		t.Errorf("second paragraph's x = %d, want equal to first's x = %d", second.Point.X, first.Point.X)
	}
}
