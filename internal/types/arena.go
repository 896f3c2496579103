package types

import "fmt"

// An Arena owns the type values constructed during a checking session.
// Every constructed type is registered with the arena that issued it,
// which keeps the values reachable for as long as references to them
// circulate and gives the session a single place to account for them.
// Field-less types are not allocated at all; the arena hands out the
// package-level singletons instead.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	integers     []*Integer
	intSubs      []*IntegerSubtype
	floatings    []*Floating
	floatSubs    []*FloatingSubtype
	enums        []*Enum
	enumSubs     []*EnumSubtype
	physicals    []*Physical
	physicalSubs []*PhysicalSubtype
	accesses     []*Access
	arrays       []*Array
	nameds       []*Named
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc registers t with the arena and returns it. Singleton types are
// returned unchanged without being registered. Alloc panics on a type
// not constructed by this package.
func (a *Arena) Alloc(t Type) Type {
	switch t := t.(type) {
	case *Integer:
		a.integers = append(a.integers, t)
	case *IntegerSubtype:
		a.intSubs = append(a.intSubs, t)
	case *Floating:
		a.floatings = append(a.floatings, t)
	case *FloatingSubtype:
		a.floatSubs = append(a.floatSubs, t)
	case *Enum:
		a.enums = append(a.enums, t)
	case *EnumSubtype:
		a.enumSubs = append(a.enumSubs, t)
	case *Physical:
		a.physicals = append(a.physicals, t)
	case *PhysicalSubtype:
		a.physicalSubs = append(a.physicalSubs, t)
	case *Access:
		a.accesses = append(a.accesses, t)
	case *Array:
		a.arrays = append(a.arrays, t)
	case *Named:
		a.nameds = append(a.nameds, t)
	case *Null:
		return NullType
	case *UniversalInteger:
		return UniversalIntegerType
	case *UniversalReal:
		return UniversalRealType
	default:
		panic(fmt.Sprintf("types: cannot allocate %T", t))
	}
	return t
}

// Len returns the number of types registered with the arena.
// Singletons are never counted.
func (a *Arena) Len() int {
	return len(a.integers) + len(a.intSubs) +
		len(a.floatings) + len(a.floatSubs) +
		len(a.enums) + len(a.enumSubs) +
		len(a.physicals) + len(a.physicalSubs) +
		len(a.accesses) + len(a.arrays) + len(a.nameds)
}
