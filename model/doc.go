// Package model provides the data structures shared across the
// transcripta pipeline.
//
// # Grids and Tables
//
// A [RawGrid] is the unprocessed output of an upstream table detector:
// rows of duck-typed [RawCell] values with no shape guarantees. A
// [Table] is the normalized form the interpretation engine works on: a
// deduplicated header row and a rectangular body of plain strings.
// Tables are built by classify.BuildTable, never assembled by hand.
//
// # Roles
//
// A [ColumnRole] names what a column means on a transcript (year,
// semester, course code, subject, credit, GPA). A [RoleAssignment]
// binds columns to roles for one table and enforces exclusivity: one
// role per column, one column per role.
//
// # Results
//
// Each interpreted data row becomes a [CourseRecord] with a terminal
// [Status]. A batch of tables folds into an [AggregateResult]: credit
// totals plus ordered counted/failed course lists and per-table
// [Rejection] diagnostics.
package model
