package types

import (
	"strings"

	"github.com/phsilva/moore/internal/hir"
)

// An Enum is an enumeration base type. Its identity is the declaring
// type declaration; two enumerations declared separately are distinct
// even if their literals coincide.
type Enum struct {
	typ
	decl     hir.TypeDeclID
	literals []string
}

// NewEnum creates an enumeration type for the given declaration. The
// literal names are retained for rendering only.
func NewEnum(decl hir.TypeDeclID, literals []string) *Enum {
	return &Enum{decl: decl, literals: literals}
}

// Decl returns the declaring type declaration.
func (t *Enum) Decl() hir.TypeDeclID { return t.decl }

// Literals returns the names of the enumeration literals in
// declaration order.
func (t *Enum) Literals() []string { return t.literals }

func (t *Enum) String() string {
	if len(t.literals) == 0 {
		return "enumeration"
	}
	return "(" + strings.Join(t.literals, ", ") + ")"
}

// An EnumSubtype narrows an enumeration base type.
type EnumSubtype struct {
	typ
	base *Enum
}

// NewEnumSubtype creates a subtype of base.
func NewEnumSubtype(base *Enum) *EnumSubtype {
	return &EnumSubtype{base: base}
}

// Base returns the enumeration base type being constrained.
func (t *EnumSubtype) Base() *Enum { return t.base }

func (t *EnumSubtype) String() string { return t.base.String() }
