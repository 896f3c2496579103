package types

import (
	"fmt"
	"math/big"

	"github.com/phsilva/moore/internal/hir"
)

// A Unit is one unit of a physical type. Scale is the number of
// primary units in this unit.
type Unit struct {
	Name  string
	Scale *big.Int
}

// A Physical is a physical base type: an integer range together with a
// list of units. Its identity is the declaring type declaration.
type Physical struct {
	typ
	decl    hir.TypeDeclID
	dir     hir.Dir
	left    *big.Int
	right   *big.Int
	units   []Unit
	primary int
}

// NewPhysical creates a physical base type. primary indexes the
// primary unit within units. The bounds and units are not copied.
func NewPhysical(decl hir.TypeDeclID, dir hir.Dir, left, right *big.Int, units []Unit, primary int) *Physical {
	return &Physical{decl: decl, dir: dir, left: left, right: right, units: units, primary: primary}
}

// Decl returns the declaring type declaration.
func (t *Physical) Decl() hir.TypeDeclID { return t.decl }

// Dir returns the direction of the declaring range.
func (t *Physical) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the declaring range.
func (t *Physical) Left() *big.Int { return t.left }

// Right returns the right bound of the declaring range.
func (t *Physical) Right() *big.Int { return t.right }

// Units returns the units of the type in declaration order.
func (t *Physical) Units() []Unit { return t.units }

// Primary returns the primary unit.
func (t *Physical) Primary() Unit { return t.units[t.primary] }

func (t *Physical) String() string {
	return fmt.Sprintf("%s %s %s units %s", t.left, t.dir, t.right, t.Primary().Name)
}

// A PhysicalSubtype narrows a physical base type to a subrange.
type PhysicalSubtype struct {
	typ
	base  *Physical
	dir   hir.Dir
	left  *big.Int
	right *big.Int
}

// NewPhysicalSubtype creates a subtype of base constrained to the
// given range. The bounds are not copied.
func NewPhysicalSubtype(base *Physical, dir hir.Dir, left, right *big.Int) *PhysicalSubtype {
	return &PhysicalSubtype{base: base, dir: dir, left: left, right: right}
}

// Base returns the physical base type being constrained.
func (t *PhysicalSubtype) Base() *Physical { return t.base }

// Dir returns the direction of the constraining range.
func (t *PhysicalSubtype) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the constraining range.
func (t *PhysicalSubtype) Left() *big.Int { return t.left }

// Right returns the right bound of the constraining range.
func (t *PhysicalSubtype) Right() *big.Int { return t.right }

func (t *PhysicalSubtype) String() string {
	return fmt.Sprintf("%s %s %s units %s", t.left, t.dir, t.right, t.base.Primary().Name)
}
