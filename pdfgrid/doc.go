// Package pdfgrid recovers cell grids from the positioned text of PDF
// pages.
//
// Most transcript PDFs carry no table structure, only text fragments
// with coordinates. [Extractor] rebuilds the table geometrically:
// fragments are clustered into rows by vertical position, merged into
// cells by horizontal gap, and aligned into page-wide columns so that
// every row of the resulting [model.RawGrid] shares one column layout.
//
// Thresholds live in [Config]. [DefaultConfig] suits cleanly ruled
// layouts; [AggressiveConfig] trades precision for recall on scanned
// or loosely spaced pages and is the usual retry when the defaults
// find nothing.
package pdfgrid
