package types

import (
	"testing"

	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/source"
)

func sp(line uint32) source.Span { return source.NewSpan("test.vhd", line, 1) }

func TestIdentical(t *testing.T) {
	base := NewInteger(hir.DirTo, bi(0), bi(255))
	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{
			"independently built integers",
			NewInteger(hir.DirTo, bi(0), bi(255)),
			NewInteger(hir.DirTo, bi(0), bi(255)),
			true,
		},
		{
			"integers with different bounds",
			NewInteger(hir.DirTo, bi(0), bi(255)),
			NewInteger(hir.DirTo, bi(0), bi(127)),
			false,
		},
		{
			"integers with different direction",
			NewInteger(hir.DirTo, bi(0), bi(255)),
			NewInteger(hir.DirDownto, bi(0), bi(255)),
			false,
		},
		{
			"integer subtypes over identical bases",
			NewIntegerSubtype(NewInteger(hir.DirTo, bi(0), bi(255)), hir.DirTo, bi(10), bi(20)),
			NewIntegerSubtype(NewInteger(hir.DirTo, bi(0), bi(255)), hir.DirTo, bi(10), bi(20)),
			true,
		},
		{
			"integer subtype vs base",
			NewIntegerSubtype(base, hir.DirTo, bi(0), bi(255)),
			base,
			false,
		},
		{
			"same enum declaration",
			NewEnum(7, []string{"a"}),
			NewEnum(7, []string{"a"}),
			true,
		},
		{
			"different enum declarations",
			NewEnum(7, []string{"a"}),
			NewEnum(8, []string{"a"}),
			false,
		},
		{
			"access to identical types",
			NewAccess(NewInteger(hir.DirTo, bi(0), bi(9))),
			NewAccess(NewInteger(hir.DirTo, bi(0), bi(9))),
			true,
		},
		{
			"arrays with matching shape",
			NewArray([]ArrayIndex{ConstrainedIndex(base)}, base),
			NewArray([]ArrayIndex{ConstrainedIndex(NewInteger(hir.DirTo, bi(0), bi(255)))}, NewInteger(hir.DirTo, bi(0), bi(255))),
			true,
		},
		{
			"arrays differing in constrainedness",
			NewArray([]ArrayIndex{ConstrainedIndex(base)}, base),
			NewArray([]ArrayIndex{UnboundedIndex(base)}, base),
			false,
		},
		{
			"named with same declaration",
			NewNamed(sp(1), hir.TypeDeclID(3)),
			NewNamed(sp(9), hir.TypeDeclID(3)),
			true,
		},
		{
			"named with different declarations",
			NewNamed(sp(1), hir.TypeDeclID(3)),
			NewNamed(sp(1), hir.TypeDeclID(4)),
			false,
		},
		{"null singleton", NullType, NullType, true},
		{"universal integer vs null", UniversalIntegerType, NullType, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical() = %v, want %v", got, tt.want)
			}
			if got := Identical(tt.y, tt.x); got != tt.want {
				t.Errorf("Identical() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindDesc(t *testing.T) {
	base := NewInteger(hir.DirTo, bi(0), bi(255))
	tests := []struct {
		typ  Type
		want string
	}{
		{base, "integer type"},
		{NewIntegerSubtype(base, hir.DirTo, bi(0), bi(9)), "integer type"},
		{NewFloating(hir.DirTo, 0, 1), "floating-point type"},
		{NewEnum(1, nil), "enumeration type"},
		{NewAccess(base), "access type"},
		{NewArray(nil, base), "array type"},
		{NullType, "null type"},
		{UniversalIntegerType, "universal integer type"},
	}
	for _, tt := range tests {
		if got := KindDesc(tt.typ); got != tt.want {
			t.Errorf("KindDesc(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
