// Package export serializes aggregated course records for use outside
// the engine.
//
// Two formats are supported: CSV with a UTF-8 byte order mark, which
// spreadsheet applications open with Chinese text intact, and Excel
// workbooks with counted, failed and summary sheets. Both use the
// same fixed column order: academic year, semester, course code,
// subject, credit, GPA label and 1-based source table index.
package export
