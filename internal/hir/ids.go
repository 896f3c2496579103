package hir

// Ref is implemented by every typed node ID.
type Ref interface {
	// Node returns the untyped identity of the node.
	Node() NodeID
	String() string
}

// Typed node IDs. One defined type per node kind; the Table allocates
// them and hands back payloads for the kinds that carry one. Kinds
// without a payload exist so that the checker can name them in
// "not implemented" diagnostics.
type (
	LibraryID        NodeID
	EntityID         NodeID
	ArchID           NodeID
	PkgDeclID        NodeID
	PkgBodyID        NodeID
	PkgInstID        NodeID
	CtxID            NodeID
	CfgID            NodeID
	ProcessID        NodeID
	IntfSignalID     NodeID
	IntfTypeID       NodeID
	IntfSubprogID    NodeID
	IntfPkgID        NodeID
	IntfConstID      NodeID
	TypeDeclID       NodeID
	SubtypeDeclID    NodeID
	SubtypeIndID     NodeID
	SignalDeclID     NodeID
	ConstDeclID      NodeID
	VarDeclID        NodeID
	SharedVarDeclID  NodeID
	FileDeclID       NodeID
	ArrayTypeIndexID NodeID
	ExprID           NodeID
	SigAssignID      NodeID
	BlockStmtID      NodeID
	ConcProcCallID   NodeID
	ConcAssertID     NodeID
	ConcSigAssignID  NodeID
	CompInstID       NodeID
	ForGenID         NodeID
	IfGenID          NodeID
	CaseGenID        NodeID
	WaitStmtID       NodeID
	AssertStmtID     NodeID
	ReportStmtID     NodeID
	VarAssignID      NodeID
	ProcCallID       NodeID
	IfStmtID         NodeID
	CaseStmtID       NodeID
	LoopStmtID       NodeID
	NextStmtID       NodeID
	ExitStmtID       NodeID
	ReturnStmtID     NodeID
	NullStmtID       NodeID
)

func (id LibraryID) Node() NodeID        { return NodeID(id) }
func (id EntityID) Node() NodeID         { return NodeID(id) }
func (id ArchID) Node() NodeID           { return NodeID(id) }
func (id PkgDeclID) Node() NodeID        { return NodeID(id) }
func (id PkgBodyID) Node() NodeID        { return NodeID(id) }
func (id PkgInstID) Node() NodeID        { return NodeID(id) }
func (id CtxID) Node() NodeID            { return NodeID(id) }
func (id CfgID) Node() NodeID            { return NodeID(id) }
func (id ProcessID) Node() NodeID        { return NodeID(id) }
func (id IntfSignalID) Node() NodeID     { return NodeID(id) }
func (id IntfTypeID) Node() NodeID       { return NodeID(id) }
func (id IntfSubprogID) Node() NodeID    { return NodeID(id) }
func (id IntfPkgID) Node() NodeID        { return NodeID(id) }
func (id IntfConstID) Node() NodeID      { return NodeID(id) }
func (id TypeDeclID) Node() NodeID       { return NodeID(id) }
func (id SubtypeDeclID) Node() NodeID    { return NodeID(id) }
func (id SubtypeIndID) Node() NodeID     { return NodeID(id) }
func (id SignalDeclID) Node() NodeID     { return NodeID(id) }
func (id ConstDeclID) Node() NodeID      { return NodeID(id) }
func (id VarDeclID) Node() NodeID        { return NodeID(id) }
func (id SharedVarDeclID) Node() NodeID  { return NodeID(id) }
func (id FileDeclID) Node() NodeID       { return NodeID(id) }
func (id ArrayTypeIndexID) Node() NodeID { return NodeID(id) }
func (id ExprID) Node() NodeID           { return NodeID(id) }
func (id SigAssignID) Node() NodeID      { return NodeID(id) }
func (id BlockStmtID) Node() NodeID      { return NodeID(id) }
func (id ConcProcCallID) Node() NodeID   { return NodeID(id) }
func (id ConcAssertID) Node() NodeID     { return NodeID(id) }
func (id ConcSigAssignID) Node() NodeID  { return NodeID(id) }
func (id CompInstID) Node() NodeID       { return NodeID(id) }
func (id ForGenID) Node() NodeID         { return NodeID(id) }
func (id IfGenID) Node() NodeID          { return NodeID(id) }
func (id CaseGenID) Node() NodeID        { return NodeID(id) }
func (id WaitStmtID) Node() NodeID       { return NodeID(id) }
func (id AssertStmtID) Node() NodeID     { return NodeID(id) }
func (id ReportStmtID) Node() NodeID     { return NodeID(id) }
func (id VarAssignID) Node() NodeID      { return NodeID(id) }
func (id ProcCallID) Node() NodeID       { return NodeID(id) }
func (id IfStmtID) Node() NodeID         { return NodeID(id) }
func (id CaseStmtID) Node() NodeID       { return NodeID(id) }
func (id LoopStmtID) Node() NodeID       { return NodeID(id) }
func (id NextStmtID) Node() NodeID       { return NodeID(id) }
func (id ExitStmtID) Node() NodeID       { return NodeID(id) }
func (id ReturnStmtID) Node() NodeID     { return NodeID(id) }
func (id NullStmtID) Node() NodeID       { return NodeID(id) }

func (id LibraryID) String() string        { return idString("library", NodeID(id)) }
func (id EntityID) String() string         { return idString("entity", NodeID(id)) }
func (id ArchID) String() string           { return idString("architecture", NodeID(id)) }
func (id PkgDeclID) String() string        { return idString("package", NodeID(id)) }
func (id PkgBodyID) String() string        { return idString("package body", NodeID(id)) }
func (id PkgInstID) String() string        { return idString("package instance", NodeID(id)) }
func (id CtxID) String() string            { return idString("context", NodeID(id)) }
func (id CfgID) String() string            { return idString("configuration", NodeID(id)) }
func (id ProcessID) String() string        { return idString("process", NodeID(id)) }
func (id IntfSignalID) String() string     { return idString("interface signal", NodeID(id)) }
func (id IntfTypeID) String() string       { return idString("interface type", NodeID(id)) }
func (id IntfSubprogID) String() string    { return idString("interface subprogram", NodeID(id)) }
func (id IntfPkgID) String() string        { return idString("interface package", NodeID(id)) }
func (id IntfConstID) String() string      { return idString("interface constant", NodeID(id)) }
func (id TypeDeclID) String() string       { return idString("type declaration", NodeID(id)) }
func (id SubtypeDeclID) String() string    { return idString("subtype declaration", NodeID(id)) }
func (id SubtypeIndID) String() string     { return idString("subtype indication", NodeID(id)) }
func (id SignalDeclID) String() string     { return idString("signal declaration", NodeID(id)) }
func (id ConstDeclID) String() string      { return idString("constant declaration", NodeID(id)) }
func (id VarDeclID) String() string        { return idString("variable declaration", NodeID(id)) }
func (id SharedVarDeclID) String() string  { return idString("shared variable", NodeID(id)) }
func (id FileDeclID) String() string       { return idString("file declaration", NodeID(id)) }
func (id ArrayTypeIndexID) String() string { return idString("array type index", NodeID(id)) }
func (id ExprID) String() string           { return idString("expression", NodeID(id)) }
func (id SigAssignID) String() string      { return idString("signal assignment", NodeID(id)) }
func (id BlockStmtID) String() string      { return idString("block statement", NodeID(id)) }
func (id ConcProcCallID) String() string   { return idString("concurrent procedure call", NodeID(id)) }
func (id ConcAssertID) String() string     { return idString("concurrent assertion", NodeID(id)) }
func (id ConcSigAssignID) String() string  { return idString("concurrent signal assignment", NodeID(id)) }
func (id CompInstID) String() string       { return idString("component instance", NodeID(id)) }
func (id ForGenID) String() string         { return idString("for-generate statement", NodeID(id)) }
func (id IfGenID) String() string          { return idString("if-generate statement", NodeID(id)) }
func (id CaseGenID) String() string        { return idString("case-generate statement", NodeID(id)) }
func (id WaitStmtID) String() string       { return idString("wait statement", NodeID(id)) }
func (id AssertStmtID) String() string     { return idString("assertion statement", NodeID(id)) }
func (id ReportStmtID) String() string     { return idString("report statement", NodeID(id)) }
func (id VarAssignID) String() string      { return idString("variable assignment", NodeID(id)) }
func (id ProcCallID) String() string       { return idString("procedure call", NodeID(id)) }
func (id IfStmtID) String() string         { return idString("if statement", NodeID(id)) }
func (id CaseStmtID) String() string       { return idString("case statement", NodeID(id)) }
func (id LoopStmtID) String() string       { return idString("loop statement", NodeID(id)) }
func (id NextStmtID) String() string       { return idString("next statement", NodeID(id)) }
func (id ExitStmtID) String() string       { return idString("exit statement", NodeID(id)) }
func (id ReturnStmtID) String() string     { return idString("return statement", NodeID(id)) }
func (id NullStmtID) String() string       { return idString("null statement", NodeID(id)) }

// TypeMarkRef is a reference to the declaration named by a type mark:
// either a full type declaration or a subtype declaration.
type TypeMarkRef interface {
	Ref
	aTypeMark()
}

func (TypeDeclID) aTypeMark()    {}
func (SubtypeDeclID) aTypeMark() {}

// GenericRef is a reference appearing in a generic clause.
type GenericRef interface {
	Ref
	aGeneric()
}

func (IntfTypeID) aGeneric()    {}
func (IntfSubprogID) aGeneric() {}
func (IntfPkgID) aGeneric()     {}
func (IntfConstID) aGeneric()   {}

// DeclInPkgRef is a declaration appearing in a package declarative part.
type DeclInPkgRef interface {
	Ref
	aDeclInPkg()
}

func (PkgDeclID) aDeclInPkg()     {}
func (PkgInstID) aDeclInPkg()     {}
func (TypeDeclID) aDeclInPkg()    {}
func (SubtypeDeclID) aDeclInPkg() {}

// DeclInBlockRef is a declaration appearing in a block declarative part,
// such as the declarative part of an architecture.
type DeclInBlockRef interface {
	Ref
	aDeclInBlock()
}

func (PkgDeclID) aDeclInBlock()       {}
func (PkgInstID) aDeclInBlock()       {}
func (TypeDeclID) aDeclInBlock()      {}
func (SubtypeDeclID) aDeclInBlock()   {}
func (ConstDeclID) aDeclInBlock()     {}
func (SignalDeclID) aDeclInBlock()    {}
func (SharedVarDeclID) aDeclInBlock() {}
func (FileDeclID) aDeclInBlock()      {}

// DeclInProcRef is a declaration appearing in a process declarative part.
type DeclInProcRef interface {
	Ref
	aDeclInProc()
}

func (PkgDeclID) aDeclInProc()     {}
func (PkgBodyID) aDeclInProc()     {}
func (PkgInstID) aDeclInProc()     {}
func (TypeDeclID) aDeclInProc()    {}
func (SubtypeDeclID) aDeclInProc() {}
func (ConstDeclID) aDeclInProc()   {}
func (VarDeclID) aDeclInProc()     {}
func (FileDeclID) aDeclInProc()    {}

// ConcStmtRef is a concurrent statement.
type ConcStmtRef interface {
	Ref
	aConcStmt()
}

func (BlockStmtID) aConcStmt()     {}
func (ProcessID) aConcStmt()       {}
func (ConcProcCallID) aConcStmt()  {}
func (ConcAssertID) aConcStmt()    {}
func (ConcSigAssignID) aConcStmt() {}
func (CompInstID) aConcStmt()      {}
func (ForGenID) aConcStmt()        {}
func (IfGenID) aConcStmt()         {}
func (CaseGenID) aConcStmt()       {}

// SeqStmtRef is a sequential statement.
type SeqStmtRef interface {
	Ref
	aSeqStmt()
}

func (WaitStmtID) aSeqStmt()   {}
func (AssertStmtID) aSeqStmt() {}
func (ReportStmtID) aSeqStmt() {}
func (SigAssignID) aSeqStmt()  {}
func (VarAssignID) aSeqStmt()  {}
func (ProcCallID) aSeqStmt()   {}
func (IfStmtID) aSeqStmt()     {}
func (CaseStmtID) aSeqStmt()   {}
func (LoopStmtID) aSeqStmt()   {}
func (NextStmtID) aSeqStmt()   {}
func (ExitStmtID) aSeqStmt()   {}
func (ReturnStmtID) aSeqStmt() {}
func (NullStmtID) aSeqStmt()   {}

// SignalRef names a signal: either a port (interface signal) or a
// signal declared in a declarative part.
type SignalRef interface {
	Ref
	aSignal()
}

func (IntfSignalID) aSignal() {}
func (SignalDeclID) aSignal() {}

// TypedNodeRef is a node that has a computable type.
type TypedNodeRef interface {
	Ref
	aTypedNode()
}

func (SubtypeIndID) aTypedNode()  {}
func (TypeDeclID) aTypedNode()    {}
func (SubtypeDeclID) aTypedNode() {}
func (SignalDeclID) aTypedNode()  {}
func (IntfSignalID) aTypedNode()  {}
func (ExprID) aTypedNode()        {}
