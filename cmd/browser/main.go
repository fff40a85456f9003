// Command browser drives the rendering pipeline over a single file: an
// HTTP response (or bare HTML body) in, a DOM dump and display list out.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ufoo68/rust-browser/cssom"
	"github.com/ufoo68/rust-browser/dom"
	"github.com/ufoo68/rust-browser/layout"
	"github.com/ufoo68/rust-browser/page"
	"github.com/ufoo68/rust-browser/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: browser <file>")
		os.Exit(1)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	resp, err := toResponse(string(content))
	if err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	p := page.New()

	fmt.Println("=== DOM Tree ===")
	fmt.Print(p.ReceiveResponse(resp))

	sheet := cssom.Parse(p.StyleContent())
	fmt.Printf("\n=== CSS ===\nFound %d rule(s).\n", len(sheet.Rules))

	fmt.Println("\n=== Display List ===")
	items := p.Paint(sheet, layout.DefaultConstants())
	for _, item := range items {
		printDisplayItem(item)
	}
}

// toResponse treats content starting with "HTTP/" as a raw response to
// parse, and anything else as a bare HTML body wrapped in a synthetic 200.
func toResponse(content string) (dom.HTTPResponse, error) {
	if strings.HasPrefix(content, "HTTP/") {
		return dom.ParseHTTPResponse(content)
	}
	return dom.HTTPResponse{Version: "HTTP/1.1", StatusCode: 200, Reason: "OK", Body: content}, nil
}

func printDisplayItem(item render.DisplayItem) {
	switch item.Kind {
	case render.RectItem:
		fmt.Printf("Rect  (%d,%d) %dx%d color=%s\n",
			item.Point.X, item.Point.Y, item.Size.Width, item.Size.Height, item.Style.Color.Name)
	case render.TextItem:
		fmt.Printf("Text  (%d,%d) %q\n", item.Point.X, item.Point.Y, item.Text)
	}
}
