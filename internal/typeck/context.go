// Package typeck implements type computation and type checking over
// the lowered design tree.
//
// A Context computes the type of individual nodes on demand through
// TypeOf, memoizing results, and walks design units through the Check
// methods, accumulating diagnostics as it goes. Sibling constructs are
// checked independently: a failure in one does not stop the others.
// Hard dependencies propagate instead; when a construct cannot be
// checked because something it depends on failed, the failure is
// reported once and the dependent computation aborts.
package typeck

import (
	"errors"

	"github.com/phsilva/moore/internal/diag"
	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/konst"
	"github.com/phsilva/moore/internal/source"
	"github.com/phsilva/moore/internal/types"
)

// ErrReported signals that a computation failed and that a diagnostic
// describing the failure has already been emitted. Callers receiving
// it abort without reporting again.
var ErrReported = errors.New("type checking failed")

// A ConstEvaluator supplies the constant value of expressions, such as
// range bounds, that must be known at analysis time.
type ConstEvaluator interface {
	ConstValue(id hir.ExprID) (konst.Value, error)
}

// A TypeContexter supplies the type context of an expression: the node
// whose type the surrounding construct expects at the expression's
// position, if there is one.
type TypeContexter interface {
	TypeContext(id hir.ExprID) (hir.TypedNodeRef, bool)
}

// Config configures a checking session. The zero value is valid;
// missing services make the dependent rules fail with a diagnostic
// rather than panic.
type Config struct {
	// Consts evaluates constant expressions. Required for range
	// bounds and range constraints.
	Consts ConstEvaluator

	// TypeContext supplies expression type contexts, used to infer
	// the type of bare literals. May be nil.
	TypeContext TypeContexter

	// Diag receives diagnostics as they are emitted. May be nil.
	Diag diag.Handler
}

// Check type-checks the given libraries of the design in table and
// reports whether they passed: true exactly when no diagnostic of
// severity Error or worse was emitted.
func Check(table *hir.Table, libs []hir.LibraryID, conf *Config) bool {
	c := NewContext(table, types.NewArena(), conf)
	for _, lib := range libs {
		c.CheckLibrary(lib)
	}
	return c.Finish()
}

type memoResult struct {
	typ types.Type
	err error
}

// A Context is a single type-checking session over one design tree.
// It owns the memoization tables and the pass/fail state; all type
// values it produces live in its arena.
//
// A Context is not safe for concurrent use.
type Context struct {
	table  *hir.Table
	arena  *types.Arena
	consts ConstEvaluator
	tyctx  TypeContexter
	diag   diag.Handler

	memo   map[hir.NodeID]memoResult
	active map[hir.NodeID]bool
	failed bool
}

// NewContext creates a checking session over table, allocating types
// in arena. conf may be nil.
func NewContext(table *hir.Table, arena *types.Arena, conf *Config) *Context {
	if conf == nil {
		conf = &Config{}
	}
	return &Context{
		table:  table,
		arena:  arena,
		consts: conf.Consts,
		tyctx:  conf.TypeContext,
		diag:   conf.Diag,
		memo:   make(map[hir.NodeID]memoResult),
		active: make(map[hir.NodeID]bool),
	}
}

// Arena returns the arena the session allocates types in.
func (c *Context) Arena() *types.Arena { return c.arena }

// Finish reports whether the session passed: true exactly when no
// diagnostic of severity Error or worse was emitted. No other state
// feeds the verdict.
func (c *Context) Finish() bool { return !c.failed }

// emit hands a diagnostic to the handler and records failure for
// severities Error and worse.
func (c *Context) emit(d diag.Diagnostic) {
	if d.Severity >= diag.Error {
		c.failed = true
	}
	if c.diag != nil {
		c.diag(d)
	}
}

func (c *Context) errorf(span source.Span, format string, args ...any) {
	c.emit(diag.Errorf(span, format, args...))
}

func (c *Context) bugf(span source.Span, format string, args ...any) {
	c.emit(diag.Bugf(span, format, args...))
}

// depFailed reports a failed dependency, such as a node or constant
// the table could not supply, and returns ErrReported.
func (c *Context) depFailed(err error) error {
	c.errorf(source.NoSpan, "%v", err)
	return ErrReported
}

// memoized runs compute for the node at most once, caching both
// success and failure. Re-entering a node while its computation is in
// progress is a cyclic dependency and fails with a diagnostic.
func (c *Context) memoized(id hir.NodeID, compute func() (types.Type, error)) (types.Type, error) {
	if r, ok := c.memo[id]; ok {
		return r.typ, r.err
	}
	if c.active[id] {
		c.bugf(source.NoSpan, "cyclic type reference")
		return nil, ErrReported
	}
	c.active[id] = true
	t, err := compute()
	delete(c.active, id)
	c.memo[id] = memoResult{typ: t, err: err}
	return t, err
}

// constValue evaluates the constant value of an expression through the
// configured evaluator.
func (c *Context) constValue(id hir.ExprID) (konst.Value, error) {
	if c.consts == nil {
		c.errorf(source.NoSpan, "no constant value for %s", id)
		return nil, ErrReported
	}
	v, err := c.consts.ConstValue(id)
	if err != nil {
		return nil, c.depFailed(err)
	}
	return v, nil
}
