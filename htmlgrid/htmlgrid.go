// Package htmlgrid extracts table cell grids from HTML documents.
package htmlgrid

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/transcripta/model"
)

// ExtractFile parses an HTML file and returns one grid per <table>
// element, in document order.
func ExtractFile(path string) ([]model.RawGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return Extract(f)
}

// Extract parses HTML from a reader and returns one grid per <table>
// element, in document order. Tables without any rows are omitted.
func Extract(r io.Reader) ([]model.RawGrid, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var grids []model.RawGrid
	collectTables(doc, func(table *html.Node) {
		if grid := parseTable(table); len(grid) > 0 {
			grids = append(grids, grid)
		}
	})
	return grids, nil
}

// collectTables walks the DOM and calls fn for every table element.
// Nested tables are reported by their outermost element only; their
// cells already contribute to the outer grid's text.
func collectTables(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode && n.Data == "table" {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTables(c, fn)
	}
}

// pendingSpan is a rowspan cell still occupying its column.
type pendingSpan struct {
	text      string
	remaining int
}

// parseTable flattens a table element into a grid. Colspan cells
// repeat their text across the spanned columns and rowspan cells
// carry it down the spanned rows, so the grid stays rectangular the
// way a rendered table looks.
func parseTable(tableNode *html.Node) model.RawGrid {
	var grid model.RawGrid
	pending := map[int]*pendingSpan{}

	forEachRow(tableNode, func(tr *html.Node) {
		var row []model.RawCell
		col := 0

		place := func(text string) {
			for pending[col] != nil {
				row = append(row, pending[col].text)
				pending[col].remaining--
				if pending[col].remaining == 0 {
					delete(pending, col)
				}
				col++
			}
			row = append(row, text)
			col++
		}

		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
				continue
			}
			text := nodeText(c)
			rowSpan, colSpan := cellSpans(c)
			start := col
			for i := 0; i < colSpan; i++ {
				place(text)
			}
			if rowSpan > 1 {
				for i := 0; i < colSpan; i++ {
					pending[start+i] = &pendingSpan{text: text, remaining: rowSpan - 1}
				}
			}
		}

		// Trailing rowspan columns with no cell after them.
		for pending[col] != nil {
			row = append(row, pending[col].text)
			pending[col].remaining--
			if pending[col].remaining == 0 {
				delete(pending, col)
			}
			col++
		}

		if len(row) > 0 {
			grid = append(grid, row)
		}
	})
	return grid
}

// forEachRow visits the tr elements of a table in rendered order,
// looking inside thead, tbody and tfoot sections.
func forEachRow(tableNode *html.Node, fn func(*html.Node)) {
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					fn(tr)
				}
			}
		case "tr":
			fn(c)
		}
	}
}

// cellSpans reads the rowspan/colspan attributes, defaulting to 1.
func cellSpans(cell *html.Node) (rowSpan, colSpan int) {
	rowSpan, colSpan = 1, 1
	for _, attr := range cell.Attr {
		switch attr.Key {
		case "rowspan":
			fmt.Sscanf(attr.Val, "%d", &rowSpan)
		case "colspan":
			fmt.Sscanf(attr.Val, "%d", &colSpan)
		}
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	return rowSpan, colSpan
}

// nodeText extracts the visible text of a node and its descendants.
func nodeText(n *html.Node) string {
	var b strings.Builder
	textRecursive(n, &b)
	return strings.TrimSpace(b.String())
}

func textRecursive(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template", "svg", "iframe":
			return
		case "br":
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textRecursive(c, b)
	}
}
