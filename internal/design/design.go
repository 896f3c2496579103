// Package design loads serialized design dumps into the lowered tree
// the type checker consumes.
//
// A design dump is a YAML document listing libraries with their
// packages, entities, and architectures. The loader resolves the names
// appearing in it, builds the hir table, pre-evaluates literal
// constants, and records the type context of expressions whose
// surrounding construct dictates one.
package design

import (
	"fmt"
	"os"

	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/konst"
)

// A NamedDecl pairs a declared type or subtype name with its
// declaration, in declaration order.
type NamedDecl struct {
	Name string
	Mark hir.TypeMarkRef
}

// A Design is a loaded design dump. It implements the constant
// evaluation and type context services of the checker.
type Design struct {
	file   string
	table  *hir.Table
	consts map[hir.ExprID]konst.Value
	tyctx  map[hir.ExprID]hir.TypedNodeRef
	libs   []hir.LibraryID
	decls  []NamedDecl
}

// Load reads and builds the design dump at path.
func Load(path string) (*Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Table returns the lowered design tree.
func (d *Design) Table() *hir.Table { return d.table }

// Libraries returns the loaded libraries in document order.
func (d *Design) Libraries() []hir.LibraryID { return d.libs }

// Decls returns the named type and subtype declarations in document
// order.
func (d *Design) Decls() []NamedDecl { return d.decls }

// ConstValue returns the pre-evaluated constant value of an
// expression.
func (d *Design) ConstValue(id hir.ExprID) (konst.Value, error) {
	if v, ok := d.consts[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no constant value for %s", id)
}

// TypeContext returns the node whose type is expected at the
// expression's position, if the dump recorded one.
func (d *Design) TypeContext(id hir.ExprID) (hir.TypedNodeRef, bool) {
	ref, ok := d.tyctx[id]
	return ref, ok
}

// errf wraps a loader error with the file name.
func (d *Design) errf(line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", d.file, line, fmt.Sprintf(format, args...))
}
