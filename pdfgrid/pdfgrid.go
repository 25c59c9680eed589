package pdfgrid

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	pdf "github.com/ledongthuc/pdf"

	"github.com/tsawler/transcripta/model"
)

// Config controls how positioned text fragments are clustered into a
// cell grid. All distances are in PDF points.
type Config struct {
	// YTolerance is the vertical distance within which two fragments
	// belong to the same row.
	YTolerance float64

	// CellGap is the horizontal whitespace that separates two cells.
	// Smaller gaps merge fragments into one cell.
	CellGap float64

	// WordGap is the horizontal whitespace that separates two words
	// inside a cell; a space is inserted between them.
	WordGap float64

	// MinRows is the minimum number of clustered rows for a page to
	// yield a grid at all.
	MinRows int
}

// DefaultConfig returns clustering thresholds suited to cleanly
// ruled transcript layouts.
func DefaultConfig() Config {
	return Config{
		YTolerance: 2.0,
		CellGap:    12.0,
		WordGap:    1.5,
		MinRows:    2,
	}
}

// AggressiveConfig returns looser thresholds for scanned or
// irregularly spaced layouts. Rows merge across larger vertical
// drift and cells split on smaller gaps, at the cost of occasional
// over-splitting; callers typically retry with it when DefaultConfig
// yields nothing usable.
func AggressiveConfig() Config {
	return Config{
		YTolerance: 5.0,
		CellGap:    8.0,
		WordGap:    1.5,
		MinRows:    1,
	}
}

// Extractor turns the positioned text of a PDF into one raw cell grid
// per page.
type Extractor struct {
	config Config
}

// New creates an Extractor with DefaultConfig.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Extractor with explicit thresholds.
func NewWithConfig(config Config) *Extractor {
	if config.MinRows < 1 {
		config.MinRows = 1
	}
	return &Extractor{config: config}
}

// ExtractFile extracts grids from a PDF on disk.
func (e *Extractor) ExtractFile(path string) ([]model.RawGrid, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()
	return e.extract(r)
}

// ExtractBytes extracts grids from an in-memory PDF.
func (e *Extractor) ExtractBytes(content []byte) ([]model.RawGrid, error) {
	return e.Extract(bytes.NewReader(content), int64(len(content)))
}

// Extract extracts grids from a random-access PDF stream.
func (e *Extractor) Extract(ra io.ReaderAt, size int64) ([]model.RawGrid, error) {
	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	return e.extract(r)
}

func (e *Extractor) extract(r *pdf.Reader) ([]model.RawGrid, error) {
	var grids []model.RawGrid
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		grid := e.gridFromTexts(pageTexts(p))
		if len(grid) >= e.config.MinRows {
			grids = append(grids, grid)
		}
	}
	return grids, nil
}

// pageTexts reads a page's positioned fragments, swallowing the
// panics the content-stream reader raises on malformed pages.
func pageTexts(p pdf.Page) (texts []pdf.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()
	return p.Content().Text
}

// span is a run of fragments merged into one cell candidate.
type span struct {
	text  string
	start float64
	end   float64
}

// gridFromTexts clusters fragments into rows by Y, merges each row's
// fragments into cell spans by X gap, then aligns spans across the
// whole page into columns so every row has a consistent shape.
func (e *Extractor) gridFromTexts(texts []pdf.Text) model.RawGrid {
	if len(texts) == 0 {
		return nil
	}

	rows := e.clusterRows(texts)

	spanRows := make([][]span, 0, len(rows))
	for _, row := range rows {
		if spans := e.mergeSpans(row); len(spans) > 0 {
			spanRows = append(spanRows, spans)
		}
	}
	if len(spanRows) == 0 {
		return nil
	}

	edges := e.columnEdges(spanRows)

	grid := make(model.RawGrid, 0, len(spanRows))
	for _, spans := range spanRows {
		cells := make([]model.RawCell, len(edges))
		for i := range cells {
			cells[i] = ""
		}
		for _, s := range spans {
			col := columnFor(edges, s.start)
			if prev := cells[col].(string); prev != "" {
				cells[col] = prev + " " + s.text
			} else {
				cells[col] = s.text
			}
		}
		grid = append(grid, cells)
	}
	return grid
}

// clusterRows groups fragments whose Y coordinates sit within
// YTolerance of each other, ordered top of page first. PDF Y grows
// upward, so descending Y is reading order.
func (e *Extractor) clusterRows(texts []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	var rowY float64
	for _, t := range sorted {
		if current == nil || rowY-t.Y > e.config.YTolerance {
			if current != nil {
				rows = append(rows, current)
			}
			current = []pdf.Text{t}
			rowY = t.Y
			continue
		}
		current = append(current, t)
	}
	if current != nil {
		rows = append(rows, current)
	}
	return rows
}

// mergeSpans joins a row's fragments left to right: gaps under
// WordGap concatenate directly, gaps up to CellGap join with a space,
// and wider gaps start a new cell.
func (e *Extractor) mergeSpans(row []pdf.Text) []span {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var spans []span
	var cur *span
	for _, t := range row {
		if t.S == "" {
			continue
		}
		if cur == nil || t.X-cur.end > e.config.CellGap {
			if cur != nil {
				spans = append(spans, *cur)
			}
			cur = &span{text: t.S, start: t.X, end: t.X + t.W}
			continue
		}
		if t.X-cur.end > e.config.WordGap {
			cur.text += " " + t.S
		} else {
			cur.text += t.S
		}
		if end := t.X + t.W; end > cur.end {
			cur.end = end
		}
	}
	if cur != nil {
		spans = append(spans, *cur)
	}
	return spans
}

// columnEdges clusters span start positions across the page into
// column boundaries. Starts within CellGap of an existing edge reuse
// it; the result is ascending.
func (e *Extractor) columnEdges(spanRows [][]span) []float64 {
	var starts []float64
	for _, spans := range spanRows {
		for _, s := range spans {
			starts = append(starts, s.start)
		}
	}
	sort.Float64s(starts)

	var edges []float64
	for _, x := range starts {
		if len(edges) == 0 || x-edges[len(edges)-1] > e.config.CellGap {
			edges = append(edges, x)
		}
	}
	return edges
}

// columnFor finds the rightmost edge at or left of x (within
// tolerance of the clustering that built the edges).
func columnFor(edges []float64, x float64) int {
	col := 0
	for i, edge := range edges {
		if x >= edge {
			col = i
		}
	}
	return col
}
