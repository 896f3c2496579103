// Package konst defines the constant values the type checker consumes:
// integer and floating-point scalars with arbitrary precision, and
// integer ranges produced by range attributes.
package konst

import (
	"fmt"
	"math/big"

	"github.com/phsilva/moore/internal/hir"
)

// A Value is a constant value.
type Value interface {
	// KindDesc returns a short description of the value's kind, such
	// as "integer", for use in diagnostics.
	KindDesc() string
	String() string
	aValue()
}

// An Int is an arbitrary-precision integer constant.
type Int struct {
	Value *big.Int
}

// NewInt creates an integer constant from v. The value is not copied.
func NewInt(v *big.Int) *Int {
	return &Int{Value: v}
}

// NewInt64 creates an integer constant from v.
func NewInt64(v int64) *Int {
	return &Int{Value: big.NewInt(v)}
}

func (c *Int) KindDesc() string { return "integer" }
func (c *Int) String() string   { return c.Value.String() }
func (*Int) aValue()            {}

// A Float is a floating-point constant.
type Float struct {
	Value float64
}

// NewFloat creates a floating-point constant from v.
func NewFloat(v float64) *Float {
	return &Float{Value: v}
}

func (c *Float) KindDesc() string { return "floating-point number" }
func (c *Float) String() string   { return fmt.Sprintf("%g", c.Value) }
func (*Float) aValue()            {}

// An IntRange is an integer range constant with a direction and two
// arbitrary-precision bounds, as produced by a range attribute.
type IntRange struct {
	Dir   hir.Dir
	Left  *big.Int
	Right *big.Int
}

// NewIntRange creates an integer range constant. The bounds are not
// copied.
func NewIntRange(dir hir.Dir, left, right *big.Int) *IntRange {
	return &IntRange{Dir: dir, Left: left, Right: right}
}

func (c *IntRange) KindDesc() string { return "integer range" }

func (c *IntRange) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Dir, c.Right)
}

func (*IntRange) aValue() {}
