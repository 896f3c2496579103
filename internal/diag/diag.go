// Package diag defines the diagnostic records emitted during type
// checking, their severities, and a collector for accumulating them.
package diag

import (
	"fmt"

	"github.com/phsilva/moore/internal/source"
)

// Severity classifies a diagnostic. Higher values are more severe.
type Severity int

const (
	// Note is an informational remark attached to another diagnostic.
	Note Severity = iota
	// Warning flags suspicious but legal input.
	Warning
	// Error flags invalid input. Any Error or worse fails the session.
	Error
	// Bug flags a deficiency in the compiler itself, such as a
	// construct whose checking is not implemented yet.
	Bug
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Bug:
		return "bug"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// A Diagnostic is a single message produced during checking.
type Diagnostic struct {
	Severity Severity
	Span     source.Span // invalid if the message has no source attribution
	Msg      string
}

// String formats the diagnostic as "severity: span: msg", omitting the
// span when it is invalid.
func (d Diagnostic) String() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Span, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Msg)
}

// A Handler consumes diagnostics as they are produced.
type Handler func(Diagnostic)

// Notef constructs a Note diagnostic.
func Notef(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Note, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Warningf constructs a Warning diagnostic.
func Warningf(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Errorf constructs an Error diagnostic.
func Errorf(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Bugf constructs a Bug diagnostic.
func Bugf(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Bug, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// A Collector is a Handler that records every diagnostic it receives.
// The zero value is ready to use.
type Collector struct {
	diags []Diagnostic
}

// Handle records the diagnostic. It has the Handler signature.
func (c *Collector) Handle(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// All returns the recorded diagnostics in emission order.
func (c *Collector) All() []Diagnostic {
	return c.diags
}

// ErrorCount returns the number of diagnostics of severity Error or worse.
func (c *Collector) ErrorCount() int {
	n := 0
	for _, d := range c.diags {
		if d.Severity >= Error {
			n++
		}
	}
	return n
}
