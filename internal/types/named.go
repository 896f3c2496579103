package types

import (
	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/source"
)

// A Named is an indirection through a type mark. It stands for the
// type of the declaration the mark names without resolving it; callers
// that need the underlying structure resolve the mark on demand.
type Named struct {
	typ
	span source.Span
	ref  hir.TypeMarkRef
}

// NewNamed creates a named type for the mark at span.
func NewNamed(span source.Span, ref hir.TypeMarkRef) *Named {
	return &Named{span: span, ref: ref}
}

// Span returns the source location of the type mark.
func (t *Named) Span() source.Span { return t.span }

// Ref returns the declaration the mark names.
func (t *Named) Ref() hir.TypeMarkRef { return t.ref }

func (t *Named) String() string { return t.ref.String() }
