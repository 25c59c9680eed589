package transcripta

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tsawler/transcripta/classify"
	"github.com/tsawler/transcripta/format"
	"github.com/tsawler/transcripta/grades"
	"github.com/tsawler/transcripta/htmlgrid"
	"github.com/tsawler/transcripta/interpret"
	"github.com/tsawler/transcripta/model"
	"github.com/tsawler/transcripta/ocr"
	"github.com/tsawler/transcripta/pdfgrid"
	"github.com/tsawler/transcripta/xlsxgrid"
)

// Extractor provides a fluent interface for interpreting transcripts
// from PDF, XLSX, HTML and scanned-image files. Each configuration
// method returns a new Extractor instance, making it safe for
// concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename string
	data     []byte
	grids    []model.RawGrid

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		grids:    e.grids,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Keywords replaces the column keyword lists used for classification.
// This allows transcripts from other languages or institutions without
// code changes.
//
// Example:
//
//	kw := classify.DefaultKeywords()
//	kw.Subject = append(kw.Subject, "module title")
//	result, _, err := transcripta.Open("transcript.pdf").Keywords(kw).Aggregate()
func (e *Extractor) Keywords(kw classify.Keywords) *Extractor {
	newExt := e.clone()
	newExt.options.keywords = &kw
	return newExt
}

// Scale replaces the grade scale used to decide failing grades and
// grade points.
//
// Example:
//
//	result, _, err := transcripta.Open("transcript.pdf").Scale(myScale).Aggregate()
func (e *Extractor) Scale(scale *grades.Scale) *Extractor {
	newExt := e.clone()
	newExt.options.scale = scale
	return newExt
}

// SampleRows sets how many leading body rows the classifier samples
// when scoring columns by content. Larger samples cost more but
// stabilize classification of noisy tables.
func (e *Extractor) SampleRows(n int) *Extractor {
	newExt := e.clone()
	newExt.options.sampleRows = n
	return newExt
}

// Parallel processes tables concurrently during aggregation. Output
// ordering and totals are identical to sequential processing.
func (e *Extractor) Parallel() *Extractor {
	newExt := e.clone()
	newExt.options.parallel = true
	return newExt
}

// PDFConfig replaces the geometry clustering thresholds for PDF
// input. The aggressive retry still applies when this configuration
// finds nothing.
func (e *Extractor) PDFConfig(cfg pdfgrid.Config) *Extractor {
	newExt := e.clone()
	newExt.options.pdfConfig = cfg
	return newExt
}

// WithOCR enables reading scanned-image input (PNG, JPEG, TIFF)
// through Tesseract. Requires the ocr build tag and an installed
// Tesseract; without them, image input fails with ocr.ErrOCRNotEnabled.
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.useOCR = true
	return newExt
}

// OCRLanguage sets the Tesseract language string for image input and
// implies WithOCR. Multiple languages join with "+", e.g. "chi_tra+eng".
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.useOCR = true
	newExt.options.ocrLanguage = lang
	return newExt
}

// ============================================================================
// Terminal Operations (execute interpretation and return results)
// ============================================================================

// Aggregate interprets every table in the source and returns the
// aggregate result: counted courses with their credit total, failed
// courses, and a rejection entry per table that did not look like a
// transcript.
//
// Returns the result, any warnings encountered during processing, and
// an error if the source could not be read at all. Warnings indicate
// non-fatal issues (a rejected table, a skipped row) where
// interpretation succeeded but results may be incomplete.
//
// Example:
//
//	result, warnings, err := transcripta.Open("transcript.pdf").Aggregate()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", transcripta.FormatWarnings(warnings))
//	}
//	fmt.Println("total credits:", result.TotalCredits)
func (e *Extractor) Aggregate() (*model.AggregateResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	grids, warnings, err := e.loadGrids()
	if err != nil {
		return nil, warnings, err
	}

	agg := interpret.NewAggregatorWith(e.classifier(), e.options.scale)
	agg.Parallel = e.options.parallel

	result, incidents := agg.AggregateGrids(grids)

	for _, r := range result.Rejections {
		warnings = append(warnings, Warning{
			Type:    WarningTableRejected,
			Message: fmt.Sprintf("table %d: not recognized as a transcript (unresolved: %s)", r.TableIndex+1, formatRoles(r.MissingRoles)),
		})
	}
	for _, inc := range incidents {
		warnings = append(warnings, Warning{
			Type:    WarningRowSkipped,
			Message: fmt.Sprintf("table %d row %d: %v", inc.TableIndex+1, inc.RowIndex+1, inc.Err),
		})
	}

	return result, warnings, nil
}

// Tables extracts and classifies the source's tables without
// aggregating them. Useful for inspecting what the engine sees before
// trusting the totals.
//
// Example:
//
//	tables, _, err := transcripta.Open("transcript.pdf").Tables()
//	for _, t := range tables {
//	    fmt.Println(t.Header)
//	}
func (e *Extractor) Tables() ([]*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	grids, warnings, err := e.loadGrids()
	if err != nil {
		return nil, warnings, err
	}

	c := e.classifier()
	tables := make([]*model.Table, 0, len(grids))
	for i, grid := range grids {
		if t := c.BuildTable(grid, i); t != nil {
			tables = append(tables, t)
		}
	}
	return tables, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// classifier builds the column classifier from the configured
// keywords and sampling.
func (e *Extractor) classifier() *classify.Classifier {
	kw := classify.DefaultKeywords()
	if e.options.keywords != nil {
		kw = *e.options.keywords
	}
	cfg := classify.DefaultConfig()
	if e.options.sampleRows > 0 {
		cfg.SampleRows = e.options.sampleRows
	}
	return classify.NewClassifierWith(kw, cfg, grades.NewParser())
}

// loadGrids resolves the source into raw cell grids, sniffing the
// format from content where possible.
func (e *Extractor) loadGrids() ([]model.RawGrid, []Warning, error) {
	if e.grids != nil {
		return e.grids, nil, nil
	}

	data := e.data
	if data == nil {
		if e.filename == "" {
			return nil, nil, fmt.Errorf("no input specified")
		}
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", e.filename, err)
		}
	}

	f, err := format.DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("detecting format: %w", err)
	}
	if f == format.Unknown && e.filename != "" {
		f = format.Detect(e.filename)
	}

	switch {
	case f == format.PDF:
		return e.pdfGrids(data)
	case f == format.XLSX:
		grids, err := xlsxgrid.Extract(bytes.NewReader(data))
		return grids, nil, err
	case f == format.HTML:
		grids, err := htmlgrid.Extract(bytes.NewReader(data))
		return grids, nil, err
	case f.IsImage():
		return e.imageGrids(data)
	default:
		return nil, nil, fmt.Errorf("unsupported input format: %s", f)
	}
}

// pdfGrids runs the geometry pass, escalating to aggressive
// clustering when the configured thresholds find nothing.
func (e *Extractor) pdfGrids(data []byte) ([]model.RawGrid, []Warning, error) {
	var warnings []Warning

	grids, err := pdfgrid.NewWithConfig(e.options.pdfConfig).ExtractBytes(data)
	if err != nil {
		return nil, nil, err
	}
	if len(grids) == 0 {
		warnings = append(warnings, Warning{
			Type:    WarningAggressiveRetry,
			Message: "no tables found with default clustering; retrying with aggressive thresholds",
		})
		grids, err = pdfgrid.NewWithConfig(pdfgrid.AggressiveConfig()).ExtractBytes(data)
		if err != nil {
			return nil, warnings, err
		}
	}
	if len(grids) == 0 {
		warnings = append(warnings, Warning{
			Type:    WarningNoTextGeometry,
			Message: "PDF carries no positioned text; pages are likely scanned images",
		})
	}
	return grids, warnings, nil
}

// imageGrids reads a scanned page through OCR.
func (e *Extractor) imageGrids(data []byte) ([]model.RawGrid, []Warning, error) {
	if !e.options.useOCR {
		return nil, nil, fmt.Errorf("image input requires OCR; enable it with WithOCR()")
	}

	client, err := ocr.New()
	if err != nil {
		return nil, nil, err
	}
	defer client.Close()

	if e.options.ocrLanguage != "" && e.options.ocrLanguage != ocr.DefaultLanguage {
		if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
			return nil, nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}

	grid, err := client.RecognizeGrid(data)
	if err != nil {
		return nil, nil, err
	}
	if grid == nil {
		return nil, nil, nil
	}
	return []model.RawGrid{grid}, nil, nil
}

// formatRoles renders a missing-role list for diagnostics.
func formatRoles(roles []model.ColumnRole) string {
	if len(roles) == 0 {
		return "none"
	}
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += ", "
		}
		out += r.String()
	}
	return out
}
