package types

import (
	"fmt"

	"github.com/phsilva/moore/internal/hir"
)

// A Floating is a floating-point base type declared by a range.
type Floating struct {
	typ
	dir   hir.Dir
	left  float64
	right float64
}

// NewFloating creates a floating-point base type from a directed range.
func NewFloating(dir hir.Dir, left, right float64) *Floating {
	return &Floating{dir: dir, left: left, right: right}
}

// Dir returns the direction of the declaring range.
func (t *Floating) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the declaring range.
func (t *Floating) Left() float64 { return t.left }

// Right returns the right bound of the declaring range.
func (t *Floating) Right() float64 { return t.right }

func (t *Floating) String() string {
	return fmt.Sprintf("%g %s %g", t.left, t.dir, t.right)
}

// A FloatingSubtype narrows a floating-point base type to a subrange.
type FloatingSubtype struct {
	typ
	base  *Floating
	dir   hir.Dir
	left  float64
	right float64
}

// NewFloatingSubtype creates a subtype of base constrained to the
// given range.
func NewFloatingSubtype(base *Floating, dir hir.Dir, left, right float64) *FloatingSubtype {
	return &FloatingSubtype{base: base, dir: dir, left: left, right: right}
}

// Base returns the floating-point base type being constrained.
func (t *FloatingSubtype) Base() *Floating { return t.base }

// Dir returns the direction of the constraining range.
func (t *FloatingSubtype) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the constraining range.
func (t *FloatingSubtype) Left() float64 { return t.left }

// Right returns the right bound of the constraining range.
func (t *FloatingSubtype) Right() float64 { return t.right }

func (t *FloatingSubtype) String() string {
	return fmt.Sprintf("%g %s %g", t.left, t.dir, t.right)
}
