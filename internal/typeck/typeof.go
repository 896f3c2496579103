package typeck

import (
	"math/big"

	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/konst"
	"github.com/phsilva/moore/internal/source"
	"github.com/phsilva/moore/internal/types"
)

// TypeOf computes the type of a typed node, memoizing the result.
// On failure a diagnostic has been emitted and ErrReported is
// returned.
func (c *Context) TypeOf(ref hir.TypedNodeRef) (types.Type, error) {
	switch ref := ref.(type) {
	case hir.SubtypeIndID:
		return c.TypeOfSubtypeInd(ref)
	case hir.TypeDeclID:
		return c.TypeOfTypeDecl(ref)
	case hir.SubtypeDeclID:
		return c.TypeOfSubtypeDecl(ref)
	case hir.SignalDeclID:
		return c.TypeOfSignalDecl(ref)
	case hir.IntfSignalID:
		return c.TypeOfIntfSignal(ref)
	case hir.ExprID:
		return c.TypeOfExpr(ref)
	}
	c.bugf(source.NoSpan, "type of %s not implemented", ref)
	return nil, ErrReported
}

// TypeOfTypeMark computes the type named by a type mark.
func (c *Context) TypeOfTypeMark(ref hir.TypeMarkRef) (types.Type, error) {
	switch ref := ref.(type) {
	case hir.TypeDeclID:
		return c.TypeOfTypeDecl(ref)
	case hir.SubtypeDeclID:
		return c.TypeOfSubtypeDecl(ref)
	}
	c.bugf(source.NoSpan, "type of %s not implemented", ref)
	return nil, ErrReported
}

// TypeOfSignal computes the type of a signal reference.
func (c *Context) TypeOfSignal(ref hir.SignalRef) (types.Type, error) {
	switch ref := ref.(type) {
	case hir.SignalDeclID:
		return c.TypeOfSignalDecl(ref)
	case hir.IntfSignalID:
		return c.TypeOfIntfSignal(ref)
	}
	c.bugf(source.NoSpan, "type of %s not implemented", ref)
	return nil, ErrReported
}

// TypeOfSubtypeDecl computes the type declared by a subtype
// declaration: the type of its subtype indication.
func (c *Context) TypeOfSubtypeDecl(id hir.SubtypeDeclID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.SubtypeDecl(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		return c.TypeOfSubtypeInd(n.Subtype)
	})
}

// TypeOfSignalDecl computes the type of a declared signal.
func (c *Context) TypeOfSignalDecl(id hir.SignalDeclID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.SignalDecl(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		return c.TypeOfSubtypeInd(n.Subtype)
	})
}

// TypeOfIntfSignal computes the type of an interface signal.
func (c *Context) TypeOfIntfSignal(id hir.IntfSignalID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.IntfSignal(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		return c.TypeOfSubtypeInd(n.Subtype)
	})
}

// TypeOfSubtypeInd computes the type denoted by a subtype indication.
// Without a constraint the result is a Named type for the mark, left
// unresolved. With a range constraint the mark is resolved, must
// dereference to an integer type, and is narrowed to the constraining
// range.
func (c *Context) TypeOfSubtypeInd(id hir.SubtypeIndID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.SubtypeInd(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		if n.Constraint == nil {
			return c.arena.Alloc(types.NewNamed(n.MarkSpan, n.Mark)), nil
		}
		switch con := n.Constraint.(type) {
		case *hir.RangeExprConstraint:
			return c.constrainByRangeExpr(n.Mark, con)
		case *hir.RangeConstraint:
			return c.constrainByRange(n.Mark, con)
		case *hir.ArrayConstraint:
			c.errorf(con.Span, "array constraints on subtypes not yet supported")
			return nil, ErrReported
		case *hir.RecordConstraint:
			c.errorf(con.Span, "record constraints on subtypes not yet supported")
			return nil, ErrReported
		}
		c.bugf(n.Span, "type checking of %s not implemented", id)
		return nil, ErrReported
	})
}

// constrainByRangeExpr narrows the marked type by a range given as a
// single expression, such as a range attribute. The expression must
// evaluate to an integer range constant.
func (c *Context) constrainByRangeExpr(mark hir.TypeMarkRef, con *hir.RangeExprConstraint) (types.Type, error) {
	ty, err := c.TypeOfTypeMark(mark)
	if err != nil {
		return nil, err
	}
	inner, err := c.derefNamed(ty)
	if err != nil {
		return nil, err
	}
	if !types.IsInteger(inner) {
		c.errorf(con.Span, "%s cannot be constrained by range", types.KindDesc(inner))
		return nil, ErrReported
	}
	v, err := c.constValue(con.Expr)
	if err != nil {
		return nil, err
	}
	r, ok := v.(*konst.IntRange)
	if !ok {
		c.errorf(con.Span, "%s used to constrain integer type", v.KindDesc())
		return nil, ErrReported
	}
	return c.intSubtype(inner, r.Dir, r.Left, r.Right, con.Span)
}

// constrainByRange narrows the marked type by an explicit range with a
// direction and two bound expressions.
func (c *Context) constrainByRange(mark hir.TypeMarkRef, con *hir.RangeConstraint) (types.Type, error) {
	lv, err := c.constValue(con.Left)
	if err != nil {
		return nil, err
	}
	rv, err := c.constValue(con.Right)
	if err != nil {
		return nil, err
	}
	ty, err := c.TypeOfTypeMark(mark)
	if err != nil {
		return nil, err
	}
	inner, err := c.derefNamed(ty)
	if err != nil {
		return nil, err
	}
	if !types.IsInteger(inner) {
		c.errorf(con.Span, "%s cannot be constrained by range", types.KindDesc(inner))
		return nil, ErrReported
	}
	li, lok := lv.(*konst.Int)
	ri, rok := rv.(*konst.Int)
	switch {
	case lok && rok:
		return c.intSubtype(inner, con.Dir, li.Value, ri.Value, con.Span)
	case lv.KindDesc() != rv.KindDesc():
		c.errorf(con.Span, "bounds of range are not of the same type")
	default:
		c.errorf(con.Span, "%s used to constrain integer type", lv.KindDesc())
	}
	return nil, ErrReported
}

// intSubtype narrows an integer type to the given range, enforcing the
// subrange rule: the new range shares the inner range's direction and,
// unless it is a null range, lies within it.
func (c *Context) intSubtype(inner types.Type, dir hir.Dir, left, right *big.Int, span source.Span) (types.Type, error) {
	var base *types.Integer
	var idir hir.Dir
	var ileft, iright *big.Int
	switch t := inner.(type) {
	case *types.Integer:
		base, idir, ileft, iright = t, t.Dir(), t.Left(), t.Right()
	case *types.IntegerSubtype:
		base, idir, ileft, iright = t.Base(), t.Dir(), t.Left(), t.Right()
	default:
		c.bugf(span, "%s used as integer type", types.KindDesc(inner))
		return nil, ErrReported
	}
	sub := types.NewIntegerSubtype(base, dir, left, right)
	if dir != idir || (!sub.IsNull() && !rangeWithin(dir, left, right, ileft, iright)) {
		c.errorf(span, "`%s %s %s` is not a subrange of `%s`", left, dir, right, inner)
		return nil, ErrReported
	}
	return c.arena.Alloc(sub), nil
}

// rangeWithin reports whether the non-null range left..right lies
// within ileft..iright. Both ranges have direction dir.
func rangeWithin(dir hir.Dir, left, right, ileft, iright *big.Int) bool {
	lo, hi := left, right
	ilo, ihi := ileft, iright
	if dir == hir.DirDownto {
		lo, hi = right, left
		ilo, ihi = iright, ileft
	}
	return lo.Cmp(ilo) >= 0 && hi.Cmp(ihi) <= 0
}

// TypeOfTypeDecl computes the type declared by a type declaration.
func (c *Context) TypeOfTypeDecl(id hir.TypeDeclID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.TypeDecl(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		if n.Data == nil {
			c.errorf(n.NameSpan, "declaration of type `%s` is incomplete", n.Name)
			return nil, ErrReported
		}
		switch d := n.Data.(type) {
		case *hir.RangeTypeData:
			return c.makeRangeType(d.Dir, d.Left, d.Right, n.DataSpan)
		case *hir.EnumTypeData:
			return c.arena.Alloc(types.NewEnum(id, d.Literals)), nil
		case *hir.PhysicalTypeData:
			return c.makePhysicalType(id, d, n.DataSpan)
		case *hir.AccessTypeData:
			inner, err := c.TypeOfSubtypeInd(d.Designated)
			if err != nil {
				return nil, err
			}
			return c.arena.Alloc(types.NewAccess(inner)), nil
		case *hir.ArrayTypeData:
			return c.makeArrayType(d)
		}
		c.bugf(n.NameSpan, "type checking of %s not implemented", id)
		return nil, ErrReported
	})
}

// makeRangeType builds the base type declared by a range. Integer
// bounds yield an integer type; the bounds must agree in kind.
func (c *Context) makeRangeType(dir hir.Dir, left, right hir.ExprID, span source.Span) (types.Type, error) {
	lv, err := c.constValue(left)
	if err != nil {
		return nil, err
	}
	rv, err := c.constValue(right)
	if err != nil {
		return nil, err
	}
	switch l := lv.(type) {
	case *konst.Int:
		if r, ok := rv.(*konst.Int); ok {
			return c.arena.Alloc(types.NewInteger(dir, l.Value, r.Value)), nil
		}
	case *konst.Float:
		if _, ok := rv.(*konst.Float); ok {
			c.errorf(span, "floating-point range bounds not yet supported")
			return nil, ErrReported
		}
	}
	c.errorf(span, "bounds of range are not of the same type")
	return nil, ErrReported
}

// makePhysicalType builds a physical base type. The bounds must be
// integer constants.
func (c *Context) makePhysicalType(id hir.TypeDeclID, d *hir.PhysicalTypeData, span source.Span) (types.Type, error) {
	lv, err := c.constValue(d.Left)
	if err != nil {
		return nil, err
	}
	rv, err := c.constValue(d.Right)
	if err != nil {
		return nil, err
	}
	li, lok := lv.(*konst.Int)
	ri, rok := rv.(*konst.Int)
	if !lok || !rok {
		c.errorf(span, "bounds of physical type range must be integers")
		return nil, ErrReported
	}
	units := make([]types.Unit, len(d.Units))
	for i, u := range d.Units {
		units[i] = types.Unit{Name: u.Name, Scale: u.Scale}
	}
	return c.arena.Alloc(types.NewPhysical(id, d.Dir, li.Value, ri.Value, units, d.Primary)), nil
}

// makeArrayType builds an array type. Each index is resolved
// independently so that one bad index does not hide errors in the
// others; any failure still fails the whole declaration.
func (c *Context) makeArrayType(d *hir.ArrayTypeData) (types.Type, error) {
	var indices []types.ArrayIndex
	hadFails := false
	for _, xid := range d.Indices {
		x, err := c.table.ArrayTypeIndex(xid)
		if err != nil {
			c.depFailed(err)
			hadFails = true
			continue
		}
		switch {
		case x.Unbounded != nil:
			t, err := c.TypeOfTypeMark(x.Unbounded)
			if err != nil {
				hadFails = true
				continue
			}
			indices = append(indices, types.UnboundedIndex(t))
		case x.Subtype.Node().Valid():
			t, err := c.TypeOfSubtypeInd(x.Subtype)
			if err != nil {
				hadFails = true
				continue
			}
			indices = append(indices, types.ConstrainedIndex(t))
		case x.Range != nil:
			t, err := c.makeRangeType(x.Range.Dir, x.Range.Left, x.Range.Right, x.Span)
			if err != nil {
				hadFails = true
				continue
			}
			indices = append(indices, types.ConstrainedIndex(t))
		default:
			c.bugf(x.Span, "type checking of %s not implemented", xid)
			hadFails = true
		}
	}
	if hadFails {
		return nil, ErrReported
	}
	elem, err := c.TypeOfSubtypeInd(d.Element)
	if err != nil {
		return nil, err
	}
	return c.arena.Alloc(types.NewArray(indices, elem)), nil
}

// TypeOfExpr computes the type of an expression. Integer literals take
// an explicitly attached type if they carry one; otherwise they adopt
// the surrounding type context if it dereferences to an integer type.
func (c *Context) TypeOfExpr(id hir.ExprID) (types.Type, error) {
	return c.memoized(id.Node(), func() (types.Type, error) {
		n, err := c.table.Expr(id)
		if err != nil {
			return nil, c.depFailed(err)
		}
		switch d := n.Data.(type) {
		case *hir.IntLitExpr:
			if d.Mark != nil {
				return c.TypeOfTypeMark(d.Mark)
			}
			if c.tyctx != nil {
				if ctx, ok := c.tyctx.TypeContext(id); ok {
					ty, err := c.TypeOf(ctx)
					if err != nil {
						return nil, err
					}
					inner, err := c.derefNamed(ty)
					if err != nil {
						return nil, err
					}
					if types.IsInteger(inner) {
						return ty, nil
					}
				}
			}
			text := n.Text
			if text == "" && d.Value != nil {
				text = d.Value.String()
			}
			c.errorf(n.Span, "cannot infer type of `%s` from context", text)
			return nil, ErrReported
		}
		c.bugf(n.Span, "type checking of %s not implemented", id)
		return nil, ErrReported
	})
}

// derefNamed resolves Named indirections until a structural type is
// reached. A cyclic chain of type marks is reported and fails.
func (c *Context) derefNamed(t types.Type) (types.Type, error) {
	seen := make(map[types.Type]bool)
	for {
		n, ok := t.(*types.Named)
		if !ok {
			return t, nil
		}
		if seen[t] {
			c.bugf(n.Span(), "cyclic type reference")
			return nil, ErrReported
		}
		seen[t] = true
		u, err := c.TypeOfTypeMark(n.Ref())
		if err != nil {
			return nil, err
		}
		t = u
	}
}
