// Package types defines the VHDL type data model: base types and
// subtypes for the scalar classes, access and array types, the named
// indirection, and the universal types of literals. Type values are
// immutable once constructed and are owned by an Arena.
package types

// A Type represents a VHDL type.
type Type interface {
	// String returns a human-readable rendering of the type for
	// diagnostics.
	String() string

	// aType ensures that only types declared in this package can be
	// assigned to a Type.
	aType()
}

// typ is embedded by every concrete type to implement the marker
// method.
type typ struct{}

func (typ) aType() {}
