package transcripta

import "strings"

// WarningType identifies the kind of non-fatal issue encountered
// while interpreting a transcript.
type WarningType string

const (
	// WarningAggressiveRetry indicates the PDF geometry pass found no
	// usable tables with default thresholds and was retried with
	// looser clustering.
	WarningAggressiveRetry WarningType = "aggressive-retry"

	// WarningNoTextGeometry indicates a PDF carried no positioned text
	// at all, which usually means the pages are scanned images.
	WarningNoTextGeometry WarningType = "no-text-geometry"

	// WarningTableRejected indicates a table was not recognized as a
	// transcript and contributed nothing to the totals.
	WarningTableRejected WarningType = "table-rejected"

	// WarningRowSkipped indicates a row failed while being read and
	// was skipped; the rest of its table was processed normally.
	WarningRowSkipped WarningType = "row-skipped"
)

// Warning describes a non-fatal issue encountered during processing.
// Warnings mean interpretation succeeded but results may be
// incomplete; callers wanting totals they can fully trust should
// surface them.
type Warning struct {
	// Type categorizes the warning.
	Type WarningType

	// Message is a human-readable description.
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

// FormatWarnings formats a list of warnings as a single string,
// suitable for logging or display.
//
// Example:
//
//	result, warnings, err := transcripta.Open("transcript.pdf").Aggregate()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", transcripta.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
