package types

import (
	"testing"

	"github.com/phsilva/moore/internal/hir"
)

func TestArenaAlloc(t *testing.T) {
	a := NewArena()
	ty := NewInteger(hir.DirTo, bi(0), bi(255))
	got := a.Alloc(ty)
	if got != Type(ty) {
		t.Errorf("Alloc returned a different value")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
	a.Alloc(NewIntegerSubtype(ty, hir.DirTo, bi(1), bi(2)))
	a.Alloc(NewNamed(sp(1), hir.TypeDeclID(1)))
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
}

func TestArenaSingletons(t *testing.T) {
	a := NewArena()
	tests := []struct {
		name string
		typ  Type
		want Type
	}{
		{"null", &Null{}, NullType},
		{"universal integer", &UniversalInteger{}, UniversalIntegerType},
		{"universal real", &UniversalReal{}, UniversalRealType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Alloc(tt.typ); got != tt.want {
				t.Errorf("Alloc did not return the singleton")
			}
		})
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after singleton allocs, want 0", a.Len())
	}
}
