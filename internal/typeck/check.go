package typeck

import (
	"github.com/phsilva/moore/internal/diag"
	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/source"
	"github.com/phsilva/moore/internal/types"
)

// unimplemented records that a node kind has no checking rule yet.
// The severity is Bug: the input may be fine, the checker is not.
func (c *Context) unimplemented(ref hir.Ref) {
	c.emit(diag.Bugf(source.NoSpan, "type checking of %s not implemented", ref))
}

// CheckLibrary checks every design unit in the library. Units are
// independent; a failing unit does not stop the others.
func (c *Context) CheckLibrary(id hir.LibraryID) {
	n, err := c.table.Library(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	for _, pkg := range n.PkgDecls {
		c.CheckPackage(pkg)
	}
	for _, inst := range n.PkgInsts {
		c.unimplemented(inst)
	}
	for _, body := range n.PkgBodies {
		c.unimplemented(body)
	}
	for _, ctx := range n.Ctxs {
		c.unimplemented(ctx)
	}
	for _, ent := range n.Entities {
		c.CheckEntity(ent)
	}
	for _, arch := range n.Archs {
		c.CheckArch(arch)
	}
	for _, cfg := range n.Cfgs {
		c.unimplemented(cfg)
	}
}

// CheckPackage checks the generics and declarations of a package
// declaration.
func (c *Context) CheckPackage(id hir.PkgDeclID) {
	n, err := c.table.Package(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	for _, g := range n.Generics {
		c.checkGeneric(g)
	}
	for _, d := range n.Decls {
		c.checkDeclInPkg(d)
	}
}

// CheckEntity checks the generics and ports of an entity declaration.
func (c *Context) CheckEntity(id hir.EntityID) {
	n, err := c.table.Entity(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	for _, g := range n.Generics {
		c.checkGeneric(g)
	}
	for _, port := range n.Ports {
		c.checkTypedNode(port)
	}
}

// CheckArch checks an architecture body: its entity, then its
// declarations and concurrent statements.
func (c *Context) CheckArch(id hir.ArchID) {
	n, err := c.table.Arch(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	c.CheckEntity(n.Entity)
	for _, d := range n.Decls {
		c.checkDeclInBlock(d)
	}
	for _, s := range n.Stmts {
		c.checkConcStmt(s)
	}
}

// CheckProcess checks the declarations and sequential statements of a
// process.
func (c *Context) CheckProcess(id hir.ProcessID) {
	n, err := c.table.Process(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	for _, d := range n.Decls {
		c.checkDeclInProc(d)
	}
	for _, s := range n.Stmts {
		c.checkSeqStmt(s)
	}
}

// checkTypedNode checks a node by computing its type. The failure, if
// any, has already been reported by the computation.
func (c *Context) checkTypedNode(ref hir.TypedNodeRef) {
	_, _ = c.TypeOf(ref)
}

func (c *Context) checkGeneric(ref hir.GenericRef) {
	// No generic kind has a checking rule yet.
	c.unimplemented(ref)
}

func (c *Context) checkDeclInPkg(ref hir.DeclInPkgRef) {
	switch ref := ref.(type) {
	case hir.PkgDeclID:
		c.CheckPackage(ref)
	case hir.TypeDeclID:
		c.checkTypedNode(ref)
	case hir.SubtypeDeclID:
		c.checkTypedNode(ref)
	default:
		c.unimplemented(ref)
	}
}

func (c *Context) checkDeclInBlock(ref hir.DeclInBlockRef) {
	switch ref := ref.(type) {
	case hir.PkgDeclID:
		c.CheckPackage(ref)
	case hir.TypeDeclID:
		c.checkTypedNode(ref)
	case hir.SubtypeDeclID:
		c.checkTypedNode(ref)
	case hir.SignalDeclID:
		c.checkTypedNode(ref)
	default:
		c.unimplemented(ref)
	}
}

func (c *Context) checkDeclInProc(ref hir.DeclInProcRef) {
	switch ref := ref.(type) {
	case hir.PkgDeclID:
		c.CheckPackage(ref)
	case hir.TypeDeclID:
		c.checkTypedNode(ref)
	case hir.SubtypeDeclID:
		c.checkTypedNode(ref)
	default:
		c.unimplemented(ref)
	}
}

func (c *Context) checkConcStmt(ref hir.ConcStmtRef) {
	switch ref := ref.(type) {
	case hir.ProcessID:
		c.CheckProcess(ref)
	default:
		c.unimplemented(ref)
	}
}

func (c *Context) checkSeqStmt(ref hir.SeqStmtRef) {
	switch ref := ref.(type) {
	case hir.SigAssignID:
		c.CheckSigAssign(ref)
	case hir.NullStmtID:
		// Nothing to check.
	default:
		c.unimplemented(ref)
	}
}

// CheckSigAssign checks a signal assignment statement: the target must
// be a named signal, and every driven value must have the target's
// type.
func (c *Context) CheckSigAssign(id hir.SigAssignID) {
	n, err := c.table.SigAssign(id)
	if err != nil {
		c.depFailed(err)
		return
	}
	var lhs types.Type
	switch target := n.Target.(type) {
	case *hir.TargetName:
		lhs, err = c.TypeOfSignal(target.Signal)
		if err != nil {
			return
		}
	case *hir.TargetAggregate:
		c.bugf(n.TargetSpan, "assignment to aggregate signal not implemented")
		return
	default:
		c.bugf(n.TargetSpan, "type checking of %s not implemented", id)
		return
	}
	switch kind := n.Kind.(type) {
	case *hir.SimpleWave:
		c.checkDelayMechanism(kind.Delay)
		c.checkWaveform(kind.Wave, lhs)
	case *hir.SimpleForce:
		c.checkExprType(kind.Expr, lhs)
	case *hir.SimpleRelease:
		// Nothing to check.
	case *hir.CondWave:
		c.checkDelayMechanism(kind.Delay)
		for _, alt := range kind.Waves {
			// TODO: check alt.Cond against the predefined boolean
			// type once the standard package is wired in.
			c.checkWaveform(alt.Wave, lhs)
		}
	case *hir.CondForce:
		for _, alt := range kind.Exprs {
			c.checkExprType(alt.Expr, lhs)
		}
	case *hir.SelWave:
		c.checkDelayMechanism(kind.Delay)
		for _, wave := range kind.Waves {
			c.checkWaveform(wave, lhs)
		}
	case *hir.SelForce:
		for _, e := range kind.Exprs {
			c.checkExprType(e, lhs)
		}
	default:
		c.bugf(n.Span, "type checking of %s not implemented", id)
	}
}

// checkWaveform checks every element of a waveform against the
// target's type.
func (c *Context) checkWaveform(w hir.Waveform, want types.Type) {
	for _, el := range w {
		if el.Value.Node().Valid() {
			c.checkExprType(el.Value, want)
		}
		// TODO: check el.After against the predefined time type once
		// the standard package is wired in.
	}
}

func (c *Context) checkDelayMechanism(dm *hir.DelayMechanism) {
	// The pulse rejection limit will be checked against the
	// predefined time type once the standard package is wired in.
	_ = dm
}

// checkExprType computes the type of an expression and verifies that
// it is identical to the expected type.
func (c *Context) checkExprType(id hir.ExprID, want types.Type) {
	got, err := c.TypeOfExpr(id)
	if err != nil {
		return
	}
	if types.Identical(got, want) {
		return
	}
	span := source.NoSpan
	if n, err := c.table.Expr(id); err == nil {
		span = n.Span
	}
	c.errorf(span, "expected type `%s`, found `%s`", want, got)
}
