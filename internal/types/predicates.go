package types

// Identical reports whether x and y are structurally identical.
// Equality never depends on where a value was allocated: two types
// built independently from the same data are identical. Enumeration
// and physical types carry their declaration as identity, so two
// declarations always yield distinct types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	switch x := x.(type) {
	case *Null:
		_, ok := y.(*Null)
		return ok
	case *UniversalInteger:
		_, ok := y.(*UniversalInteger)
		return ok
	case *UniversalReal:
		_, ok := y.(*UniversalReal)
		return ok
	case *Integer:
		y, ok := y.(*Integer)
		return ok && x.dir == y.dir &&
			x.left.Cmp(y.left) == 0 && x.right.Cmp(y.right) == 0
	case *IntegerSubtype:
		y, ok := y.(*IntegerSubtype)
		return ok && Identical(x.base, y.base) && x.dir == y.dir &&
			x.left.Cmp(y.left) == 0 && x.right.Cmp(y.right) == 0
	case *Floating:
		y, ok := y.(*Floating)
		return ok && x.dir == y.dir && x.left == y.left && x.right == y.right
	case *FloatingSubtype:
		y, ok := y.(*FloatingSubtype)
		return ok && Identical(x.base, y.base) && x.dir == y.dir &&
			x.left == y.left && x.right == y.right
	case *Enum:
		y, ok := y.(*Enum)
		return ok && x.decl == y.decl
	case *EnumSubtype:
		y, ok := y.(*EnumSubtype)
		return ok && Identical(x.base, y.base)
	case *Physical:
		y, ok := y.(*Physical)
		return ok && x.decl == y.decl
	case *PhysicalSubtype:
		y, ok := y.(*PhysicalSubtype)
		return ok && Identical(x.base, y.base) && x.dir == y.dir &&
			x.left.Cmp(y.left) == 0 && x.right.Cmp(y.right) == 0
	case *Access:
		y, ok := y.(*Access)
		return ok && Identical(x.designated, y.designated)
	case *Array:
		y, ok := y.(*Array)
		if !ok || len(x.indices) != len(y.indices) {
			return false
		}
		for i, xi := range x.indices {
			yi := y.indices[i]
			if xi.constrained != yi.constrained || !Identical(xi.typ, yi.typ) {
				return false
			}
		}
		return Identical(x.elem, y.elem)
	case *Named:
		// Named types are identical if they name the same
		// declaration. Marks at different locations naming the same
		// declaration denote the same type.
		y, ok := y.(*Named)
		return ok && x.ref == y.ref
	}
	return false
}

// KindDesc returns a short description of the type's kind for use in
// diagnostics, such as "integer type".
func KindDesc(t Type) string {
	switch t.(type) {
	case *Null:
		return "null type"
	case *UniversalInteger:
		return "universal integer type"
	case *UniversalReal:
		return "universal real type"
	case *Integer, *IntegerSubtype:
		return "integer type"
	case *Floating, *FloatingSubtype:
		return "floating-point type"
	case *Enum, *EnumSubtype:
		return "enumeration type"
	case *Physical, *PhysicalSubtype:
		return "physical type"
	case *Access:
		return "access type"
	case *Array:
		return "array type"
	case *Named:
		return "named type"
	}
	return "type"
}

// IsInteger reports whether t is an integer base type or subtype.
func IsInteger(t Type) bool {
	switch t.(type) {
	case *Integer, *IntegerSubtype:
		return true
	}
	return false
}
