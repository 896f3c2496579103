// Package hir defines the lowered design tree the type checker operates
// on: typed node identifiers, per-kind node payloads, and the Table that
// maps identifiers to payloads.
//
// Nodes are addressed by opaque typed IDs. An ID carries no payload
// itself; the payload is obtained from the Table. Heterogeneous
// positions in the tree (a declaration slot, a statement slot, a type
// mark) are modeled as small closed interfaces implemented only by the
// ID types that may legally appear there.
package hir

import "fmt"

// NodeID is the untyped identity underlying every typed node ID.
// IDs are allocated by a Table; the zero NodeID is never allocated and
// serves as "absent".
type NodeID uint32

// Valid reports whether the ID refers to an allocated node.
func (id NodeID) Valid() bool { return id != 0 }

// Dir is the direction of a range: ascending ("to") or descending
// ("downto").
type Dir int

const (
	DirTo Dir = iota
	DirDownto
)

// String returns the VHDL keyword for the direction.
func (d Dir) String() string {
	if d == DirDownto {
		return "downto"
	}
	return "to"
}

// ForceMode distinguishes the "in" and "out" flavors of force and
// release assignments.
type ForceMode int

const (
	ForceIn ForceMode = iota
	ForceOut
)

func (m ForceMode) String() string {
	if m == ForceOut {
		return "out"
	}
	return "in"
}

func idString(kind string, id NodeID) string {
	return fmt.Sprintf("%s #%d", kind, uint32(id))
}
