package diag

import (
	"testing"

	"github.com/phsilva/moore/internal/source"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			"with span",
			Errorf(source.NewSpan("a.vhd", 3, 7), "bad %s", "thing"),
			"error: a.vhd:3:7: bad thing",
		},
		{
			"without span",
			Bugf(source.NoSpan, "broken"),
			"bug: broken",
		},
		{
			"note",
			Notef(source.NoSpan, "aside"),
			"note: aside",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityOrder(t *testing.T) {
	if !(Note < Warning && Warning < Error && Error < Bug) {
		t.Error("severities are not ordered Note < Warning < Error < Bug")
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	c.Handle(Notef(source.NoSpan, "n"))
	c.Handle(Warningf(source.NoSpan, "w"))
	c.Handle(Errorf(source.NoSpan, "e"))
	c.Handle(Bugf(source.NoSpan, "b"))
	if len(c.All()) != 4 {
		t.Fatalf("len(All()) = %d, want 4", len(c.All()))
	}
	// Bugs count as failures too.
	if got := c.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
}
