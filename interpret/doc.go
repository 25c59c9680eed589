// Package interpret turns accepted transcript tables into course
// records and credit totals.
//
// # Row Interpretation
//
// [Interpreter.InterpretTable] walks the body rows of a table whose
// columns have been classified. Each row is either skipped (repeated
// header echoes from page breaks, blank rows, administrative noise) or
// read into a [model.CourseRecord]: academic year and term, course
// code, subject name, credit value and grade label, each read from its
// assigned column with positional fallbacks for detectors that shift
// or merge cells. A row whose grade fails the scale is recorded with
// [model.StatusFailed]; a row yielding no usable field at all produces
// nothing.
//
// # Aggregation
//
// [Aggregator.Aggregate] runs acceptance, classification and row
// interpretation over a batch of tables and reduces the per-table
// results into a single [model.AggregateResult]: counted courses and
// their credit total, credit-weighted grade points, failed courses,
// and rejections for tables that never looked like transcripts.
// Setting [Aggregator.Parallel] processes tables concurrently; results
// are merged in table order, so output is identical either way.
//
// Failures never abort a batch. A row that cannot be read becomes an
// [Incident] and the rest of its table proceeds; a table that fails
// wholesale becomes an Incident with RowIndex -1.
package interpret
