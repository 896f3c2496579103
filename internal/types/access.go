package types

import "fmt"

// An Access is an access type designating values of an inner type.
type Access struct {
	typ
	designated Type
}

// NewAccess creates an access type to the designated type.
func NewAccess(designated Type) *Access {
	return &Access{designated: designated}
}

// Designated returns the type the access type designates.
func (t *Access) Designated() Type { return t.designated }

func (t *Access) String() string {
	return fmt.Sprintf("access %s", t.designated)
}
