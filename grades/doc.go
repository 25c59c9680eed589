// Package grades parses composite credit/grade cells and classifies
// grade values.
//
// Transcript cells frequently encode two logical fields in one string:
// "A 2" (grade then credit), "3 B-" (credit then grade), or a bare
// pass/exempt phrase. [Parser.Parse] tolerates both orders and partial
// presence, returning an explicit tri-state [CreditGrade] so callers
// can tell a genuine zero-credit exempt course from a parse miss.
//
// [Scale] holds the failing-grade set and the letter-to-grade-point
// table, injected into the row interpreter so alternate grading
// systems need no code changes.
package grades
