package types

import (
	"fmt"
	"math/big"

	"github.com/phsilva/moore/internal/hir"
)

// An Integer is an integer base type declared by a range. Bounds are
// arbitrary precision. A range whose bounds are reversed with respect
// to its direction denotes the null range; such a type is valid and
// has no values.
type Integer struct {
	typ
	dir   hir.Dir
	left  *big.Int
	right *big.Int
}

// NewInteger creates an integer base type from a directed range. The
// bounds are not copied.
func NewInteger(dir hir.Dir, left, right *big.Int) *Integer {
	return &Integer{dir: dir, left: left, right: right}
}

// Dir returns the direction of the declaring range.
func (t *Integer) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the declaring range.
func (t *Integer) Left() *big.Int { return t.left }

// Right returns the right bound of the declaring range.
func (t *Integer) Right() *big.Int { return t.right }

// IsNull reports whether the declaring range is a null range.
func (t *Integer) IsNull() bool { return rangeIsNull(t.dir, t.left, t.right) }

func (t *Integer) String() string {
	return fmt.Sprintf("%s %s %s", t.left, t.dir, t.right)
}

// An IntegerSubtype narrows an integer base type to a subrange. The
// subrange lies within the base's range and shares its direction, or
// is null.
type IntegerSubtype struct {
	typ
	base  *Integer
	dir   hir.Dir
	left  *big.Int
	right *big.Int
}

// NewIntegerSubtype creates a subtype of base constrained to the given
// range. The bounds are not copied.
func NewIntegerSubtype(base *Integer, dir hir.Dir, left, right *big.Int) *IntegerSubtype {
	return &IntegerSubtype{base: base, dir: dir, left: left, right: right}
}

// Base returns the integer base type being constrained.
func (t *IntegerSubtype) Base() *Integer { return t.base }

// Dir returns the direction of the constraining range.
func (t *IntegerSubtype) Dir() hir.Dir { return t.dir }

// Left returns the left bound of the constraining range.
func (t *IntegerSubtype) Left() *big.Int { return t.left }

// Right returns the right bound of the constraining range.
func (t *IntegerSubtype) Right() *big.Int { return t.right }

// IsNull reports whether the constraining range is a null range.
func (t *IntegerSubtype) IsNull() bool { return rangeIsNull(t.dir, t.left, t.right) }

func (t *IntegerSubtype) String() string {
	return fmt.Sprintf("%s %s %s", t.left, t.dir, t.right)
}

// rangeIsNull implements the null range rule: an ascending range is
// null if left > right, a descending range if left < right.
func rangeIsNull(dir hir.Dir, left, right *big.Int) bool {
	if dir == hir.DirDownto {
		return left.Cmp(right) < 0
	}
	return left.Cmp(right) > 0
}
