package types

import (
	"fmt"
	"strings"
)

// An ArrayIndex is one index dimension of an array type. An
// unconstrained index admits any range of its index type; a
// constrained index is fixed to the range carried by its type.
type ArrayIndex struct {
	constrained bool
	typ         Type
}

// UnboundedIndex creates an index dimension over typ with no
// constraint ("range <>").
func UnboundedIndex(typ Type) ArrayIndex {
	return ArrayIndex{constrained: false, typ: typ}
}

// ConstrainedIndex creates an index dimension fixed to the range of
// typ.
func ConstrainedIndex(typ Type) ArrayIndex {
	return ArrayIndex{constrained: true, typ: typ}
}

// Constrained reports whether the index dimension is constrained.
func (x ArrayIndex) Constrained() bool { return x.constrained }

// Type returns the index type of the dimension.
func (x ArrayIndex) Type() Type { return x.typ }

func (x ArrayIndex) String() string {
	if x.constrained {
		return x.typ.String()
	}
	return fmt.Sprintf("%s range <>", x.typ)
}

// An Array is an array type with one index per dimension and an
// element type.
type Array struct {
	typ
	indices []ArrayIndex
	elem    Type
}

// NewArray creates an array type. The index slice is not copied.
func NewArray(indices []ArrayIndex, elem Type) *Array {
	return &Array{indices: indices, elem: elem}
}

// Indices returns the index dimensions in declaration order.
func (t *Array) Indices() []ArrayIndex { return t.indices }

// Elem returns the element type.
func (t *Array) Elem() Type { return t.elem }

func (t *Array) String() string {
	var b strings.Builder
	b.WriteString("array (")
	for i, x := range t.indices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	fmt.Fprintf(&b, ") of %s", t.elem)
	return b.String()
}
