package types

import (
	"math/big"
	"testing"

	"github.com/phsilva/moore/internal/hir"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func TestIntegerIsNull(t *testing.T) {
	tests := []struct {
		name string
		dir  hir.Dir
		l, r int64
		null bool
	}{
		{"ascending", hir.DirTo, 0, 255, false},
		{"ascending single", hir.DirTo, 5, 5, false},
		{"ascending null", hir.DirTo, 20, 10, true},
		{"descending", hir.DirDownto, 255, 0, false},
		{"descending single", hir.DirDownto, 5, 5, false},
		{"descending null", hir.DirDownto, 10, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty := NewInteger(tt.dir, bi(tt.l), bi(tt.r))
			if got := ty.IsNull(); got != tt.null {
				t.Errorf("IsNull() = %v, want %v", got, tt.null)
			}
			sub := NewIntegerSubtype(ty, tt.dir, bi(tt.l), bi(tt.r))
			if got := sub.IsNull(); got != tt.null {
				t.Errorf("subtype IsNull() = %v, want %v", got, tt.null)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	byteTy := NewInteger(hir.DirTo, bi(0), bi(255))
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"integer", byteTy, "0 to 255"},
		{"integer downto", NewInteger(hir.DirDownto, bi(7), bi(0)), "7 downto 0"},
		{"integer subtype", NewIntegerSubtype(byteTy, hir.DirTo, bi(10), bi(20)), "10 to 20"},
		{"floating", NewFloating(hir.DirTo, -1, 1), "-1 to 1"},
		{"enum", NewEnum(1, []string{"idle", "run"}), "(idle, run)"},
		{"access", NewAccess(byteTy), "access 0 to 255"},
		{
			"array",
			NewArray([]ArrayIndex{UnboundedIndex(byteTy), ConstrainedIndex(byteTy)}, byteTy),
			"array (0 to 255 range <>, 0 to 255) of 0 to 255",
		},
		{"null", NullType, "null"},
		{"universal integer", UniversalIntegerType, "{integer}"},
		{"universal real", UniversalRealType, "{real}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhysicalPrimary(t *testing.T) {
	units := []Unit{
		{Name: "fs", Scale: bi(1)},
		{Name: "ps", Scale: bi(1000)},
	}
	ty := NewPhysical(1, hir.DirTo, bi(0), bi(1000000), units, 0)
	if got := ty.Primary().Name; got != "fs" {
		t.Errorf("Primary().Name = %q, want %q", got, "fs")
	}
	if len(ty.Units()) != 2 {
		t.Errorf("len(Units()) = %d, want 2", len(ty.Units()))
	}
}
