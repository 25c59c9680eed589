// Package classify infers what transcript columns mean and whether a
// table is a transcript at all.
//
// # Role Classification
//
// [Classifier.Classify] scores every column of a normalized table
// against the semantic roles (year, semester, course code, subject,
// credit, gpa) in two phases:
//
//  1. Header-keyword phase: column names matched case- and
//     whitespace-insensitively against curated keyword lists. A match
//     contributes a fixed weight (2.0 by default).
//  2. Content phase: a bounded sample of leading rows scores each
//     column 0-1 per role by the proportion of cells matching the
//     role's pattern.
//
// All (score, column, role) triples are then assigned greedily in a
// deterministic total order (score descending, column ascending), so
// a role never spans two columns and a column never holds two roles.
// Credit and gpa are scored jointly: a composite "A 3" cell is
// evidence for either, so the combined role may claim two columns and
// is split by header preference, then first-claim-to-credit.
//
// # Acceptance
//
// [Classifier.IsGradesTable] applies a two-tier test: a header naming
// all essential roles is accepted outright, while headerless or noisy
// tables must earn acceptance from content-match ratios per role.
// Rejections report which roles could not be resolved.
//
// # Configuration
//
// [Keywords] and [Config] are immutable configuration injected at
// construction, so alternate languages and institutions need no code
// changes:
//
//	c := classify.NewClassifierWith(myKeywords, classify.DefaultConfig(), nil)
package classify
