// Package transcripta provides a fluent API for interpreting academic
// transcript tables from PDF, XLSX, HTML and scanned-image files,
// producing course records and credit totals.
//
// Basic usage:
//
//	result, warnings, err := transcripta.Open("transcript.pdf").Aggregate()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", transcripta.FormatWarnings(warnings))
//	}
//	fmt.Println("total credits:", result.TotalCredits)
//
// With options:
//
//	result, _, err := transcripta.Open("transcript.pdf").
//	    Parallel().
//	    SampleRows(50).
//	    Aggregate()
//
// For advanced use cases, the lower-level classify, interpret and
// grades packages are also available.
package transcripta

import (
	"github.com/tsawler/transcripta/model"
)

// Open prepares a transcript file for interpretation and returns an
// Extractor for fluent configuration. The format is sniffed from the
// file content, falling back to the filename extension.
//
// Example:
//
//	result, warnings, err := transcripta.Open("transcript.pdf").Aggregate()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultExtractOptions(),
	}
}

// FromBytes prepares an in-memory transcript document for
// interpretation. The format is sniffed from the content.
//
// Example:
//
//	result, warnings, err := transcripta.FromBytes(data).Aggregate()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: defaultExtractOptions(),
	}
}

// FromGrids prepares already-extracted cell grids for interpretation,
// bypassing format detection entirely. This is useful when tables come
// from a source the engine does not read itself.
//
// Example:
//
//	grids := []model.RawGrid{model.GridFromStrings(rows)}
//	result, warnings, err := transcripta.FromGrids(grids).Aggregate()
func FromGrids(grids []model.RawGrid) *Extractor {
	if grids == nil {
		grids = []model.RawGrid{}
	}
	return &Extractor{
		grids:   grids,
		options: defaultExtractOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustAggregate is a helper that wraps a call to Aggregate() or
// Tables() and panics if the error is non-nil. It discards warnings
// and returns just the value. It is intended for use in scripts or
// tests where error handling would be cumbersome.
//
// Example:
//
//	result := transcripta.MustAggregate(transcripta.Open("transcript.pdf").Aggregate())
func MustAggregate[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
