// Package source provides source-location types shared by the lowered
// design tree and the diagnostic machinery.
package source

import "fmt"

// Span identifies a location in a source file.
// The zero value is an invalid (absent) span.
type Span struct {
	File string // source file name
	Line uint32 // 1-based line number
	Col  uint32 // 1-based column number (byte offset in line)
}

// NoSpan is the zero span, used for diagnostics without source attribution.
var NoSpan Span

// NewSpan creates a new Span with the given file, line, and column.
// Line and column numbers are 1-based.
func NewSpan(file string, line, col uint32) Span {
	return Span{File: file, Line: line, Col: col}
}

// IsValid reports whether the span points at an actual source location.
// A span is valid if line > 0.
func (s Span) IsValid() bool {
	return s.Line > 0
}

// String returns the span in the format "file:line:col", or "line:col"
// if the file name is empty.
func (s Span) String() string {
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}
