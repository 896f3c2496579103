package hir

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every lookup error returned by a Table.
var ErrNotFound = errors.New("node not found")

// A Table owns the lowered design tree. It allocates node IDs and maps
// them to payloads. IDs drawn from one Table must not be used with
// another.
type Table struct {
	next NodeID

	libs         map[LibraryID]*Library
	entities     map[EntityID]*Entity
	archs        map[ArchID]*Arch
	pkgs         map[PkgDeclID]*Package
	processes    map[ProcessID]*Process
	intfSignals  map[IntfSignalID]*IntfSignal
	typeDecls    map[TypeDeclID]*TypeDecl
	subtypeDecls map[SubtypeDeclID]*SubtypeDecl
	subtypeInds  map[SubtypeIndID]*SubtypeInd
	signalDecls  map[SignalDeclID]*SignalDecl
	arrayIndices map[ArrayTypeIndexID]*ArrayTypeIndex
	exprs        map[ExprID]*Expr
	sigAssigns   map[SigAssignID]*SigAssign
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		libs:         make(map[LibraryID]*Library),
		entities:     make(map[EntityID]*Entity),
		archs:        make(map[ArchID]*Arch),
		pkgs:         make(map[PkgDeclID]*Package),
		processes:    make(map[ProcessID]*Process),
		intfSignals:  make(map[IntfSignalID]*IntfSignal),
		typeDecls:    make(map[TypeDeclID]*TypeDecl),
		subtypeDecls: make(map[SubtypeDeclID]*SubtypeDecl),
		subtypeInds:  make(map[SubtypeIndID]*SubtypeInd),
		signalDecls:  make(map[SignalDeclID]*SignalDecl),
		arrayIndices: make(map[ArrayTypeIndexID]*ArrayTypeIndex),
		exprs:        make(map[ExprID]*Expr),
		sigAssigns:   make(map[SigAssignID]*SigAssign),
	}
}

// FreshID allocates a new node identity without attaching a payload.
// It is used for node kinds that the checker only ever names in
// diagnostics.
func (t *Table) FreshID() NodeID {
	t.next++
	return t.next
}

func (t *Table) AddLibrary(n *Library) LibraryID {
	id := LibraryID(t.FreshID())
	t.libs[id] = n
	return id
}

func (t *Table) AddEntity(n *Entity) EntityID {
	id := EntityID(t.FreshID())
	t.entities[id] = n
	return id
}

func (t *Table) AddArch(n *Arch) ArchID {
	id := ArchID(t.FreshID())
	t.archs[id] = n
	return id
}

func (t *Table) AddPackage(n *Package) PkgDeclID {
	id := PkgDeclID(t.FreshID())
	t.pkgs[id] = n
	return id
}

func (t *Table) AddProcess(n *Process) ProcessID {
	id := ProcessID(t.FreshID())
	t.processes[id] = n
	return id
}

func (t *Table) AddIntfSignal(n *IntfSignal) IntfSignalID {
	id := IntfSignalID(t.FreshID())
	t.intfSignals[id] = n
	return id
}

func (t *Table) AddTypeDecl(n *TypeDecl) TypeDeclID {
	id := TypeDeclID(t.FreshID())
	t.typeDecls[id] = n
	return id
}

func (t *Table) AddSubtypeDecl(n *SubtypeDecl) SubtypeDeclID {
	id := SubtypeDeclID(t.FreshID())
	t.subtypeDecls[id] = n
	return id
}

func (t *Table) AddSubtypeInd(n *SubtypeInd) SubtypeIndID {
	id := SubtypeIndID(t.FreshID())
	t.subtypeInds[id] = n
	return id
}

func (t *Table) AddSignalDecl(n *SignalDecl) SignalDeclID {
	id := SignalDeclID(t.FreshID())
	t.signalDecls[id] = n
	return id
}

func (t *Table) AddArrayTypeIndex(n *ArrayTypeIndex) ArrayTypeIndexID {
	id := ArrayTypeIndexID(t.FreshID())
	t.arrayIndices[id] = n
	return id
}

func (t *Table) AddExpr(n *Expr) ExprID {
	id := ExprID(t.FreshID())
	t.exprs[id] = n
	return id
}

func (t *Table) AddSigAssign(n *SigAssign) SigAssignID {
	id := SigAssignID(t.FreshID())
	t.sigAssigns[id] = n
	return id
}

func lookupErr(id Ref) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (t *Table) Library(id LibraryID) (*Library, error) {
	if n, ok := t.libs[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) Entity(id EntityID) (*Entity, error) {
	if n, ok := t.entities[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) Arch(id ArchID) (*Arch, error) {
	if n, ok := t.archs[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) Package(id PkgDeclID) (*Package, error) {
	if n, ok := t.pkgs[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) Process(id ProcessID) (*Process, error) {
	if n, ok := t.processes[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) IntfSignal(id IntfSignalID) (*IntfSignal, error) {
	if n, ok := t.intfSignals[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) TypeDecl(id TypeDeclID) (*TypeDecl, error) {
	if n, ok := t.typeDecls[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) SubtypeDecl(id SubtypeDeclID) (*SubtypeDecl, error) {
	if n, ok := t.subtypeDecls[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) SubtypeInd(id SubtypeIndID) (*SubtypeInd, error) {
	if n, ok := t.subtypeInds[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) SignalDecl(id SignalDeclID) (*SignalDecl, error) {
	if n, ok := t.signalDecls[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) ArrayTypeIndex(id ArrayTypeIndexID) (*ArrayTypeIndex, error) {
	if n, ok := t.arrayIndices[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) Expr(id ExprID) (*Expr, error) {
	if n, ok := t.exprs[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}

func (t *Table) SigAssign(id SigAssignID) (*SigAssign, error) {
	if n, ok := t.sigAssigns[id]; ok {
		return n, nil
	}
	return nil, lookupErr(id)
}
