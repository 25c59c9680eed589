package transcripta

import (
	"github.com/tsawler/transcripta/classify"
	"github.com/tsawler/transcripta/grades"
	"github.com/tsawler/transcripta/ocr"
	"github.com/tsawler/transcripta/pdfgrid"
)

// extractOptions holds configuration for transcript interpretation.
type extractOptions struct {
	// Column classification
	keywords   *classify.Keywords
	sampleRows int

	// Grade interpretation
	scale *grades.Scale

	// Aggregation
	parallel bool

	// PDF geometry clustering; aggressive retry is applied on top when
	// the first pass yields nothing.
	pdfConfig pdfgrid.Config

	// OCR for image inputs
	useOCR      bool
	ocrLanguage string
}

// defaultExtractOptions returns the default interpretation options.
func defaultExtractOptions() extractOptions {
	return extractOptions{
		keywords:    nil, // nil means classify.DefaultKeywords
		sampleRows:  0,   // 0 means classify.DefaultConfig
		scale:       nil, // nil means grades.DefaultScale
		parallel:    false,
		pdfConfig:   pdfgrid.DefaultConfig(),
		useOCR:      false,
		ocrLanguage: ocr.DefaultLanguage,
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o
	if o.keywords != nil {
		kw := *o.keywords
		newOpts.keywords = &kw
	}
	return newOpts
}
