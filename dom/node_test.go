package dom

import "testing"

func TestTagKindFromString(t *testing.T) {
	tests := []struct {
		name string
		want TagKind
	}{
		{"html", Html},
		{"body", Body},
		{"h1", H1},
		{"bogus", Generic},
	}
	for _, tt := range tests {
		if got := TagKindFromString(tt.name); got != tt.want {
			t.Errorf("TagKindFromString(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAppendChildLinksSiblings(t *testing.T) {
	w := NewWindow()
	parent := NewElement(Div, nil, w)
	a := NewElement(P, nil, w)
	b := NewElement(P, nil, w)

	parent.AppendChild(a)
	parent.AppendChild(b)

	if parent.FirstChild != a || parent.LastChild != b {
		t.Fatalf("expected first=a last=b, got first=%v last=%v", parent.FirstChild, parent.LastChild)
	}
	if a.NextSibling != b || b.PrevSibling != a {
		t.Fatalf("sibling links not set correctly")
	}
	if a.Parent != parent || b.Parent != parent {
		t.Fatalf("parent links not set correctly")
	}
}

func TestClasses(t *testing.T) {
	w := NewWindow()
	n := NewElement(Div, []Attribute{{Name: "class", Value: "foo  bar"}}, w)
	classes := n.Classes()
	if len(classes) != 2 || classes[0] != "foo" || classes[1] != "bar" {
		t.Errorf("Classes() = %v, want [foo bar]", classes)
	}
}

func TestGetElementByTagKind(t *testing.T) {
	w := NewWindow()
	html := NewElement(Html, nil, w)
	body := NewElement(Body, nil, w)
	p := NewElement(P, nil, w)
	html.AppendChild(body)
	body.AppendChild(p)
	w.Document().AppendChild(html)

	if got := GetElementByTagKind(w.Document(), Body); got != body {
		t.Errorf("GetElementByTagKind(Body) = %v, want %v", got, body)
	}
	if got := GetElementByTagKind(w.Document(), Ul); got != nil {
		t.Errorf("GetElementByTagKind(Ul) = %v, want nil", got)
	}
}
