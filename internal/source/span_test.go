package source

import "testing"

func TestSpanString(t *testing.T) {
	tests := []struct {
		name string
		s    Span
		want string
	}{
		{"with file", NewSpan("top.vhd", 12, 4), "top.vhd:12:4"},
		{"without file", NewSpan("", 3, 1), "3:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanIsValid(t *testing.T) {
	if NoSpan.IsValid() {
		t.Error("NoSpan.IsValid() = true, want false")
	}
	if !NewSpan("a.vhd", 1, 1).IsValid() {
		t.Error("IsValid() = false for a real span")
	}
}
