// Package cells canonicalizes raw table cells and header labels.
//
// [Normalize] is the single entry point through which every raw cell
// value (nil, rich-text wrapper, or plain string) becomes a trimmed,
// whitespace-collapsed string; all downstream packages operate only on
// its output. [UniqueNames] turns a candidate header row into a
// duplicate-free naming scheme, generating Column_N placeholders for
// blank or too-short labels.
package cells
