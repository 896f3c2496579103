package hir

import (
	"math/big"

	"github.com/phsilva/moore/internal/source"
)

// A Library groups the design units analyzed into one library.
type Library struct {
	Name      string
	PkgDecls  []PkgDeclID
	PkgInsts  []PkgInstID
	PkgBodies []PkgBodyID
	Ctxs      []CtxID
	Entities  []EntityID
	Archs     []ArchID
	Cfgs      []CfgID
}

// An Entity is an entity declaration.
type Entity struct {
	Name     string
	Span     source.Span
	Generics []GenericRef
	Ports    []IntfSignalID
}

// An Arch is an architecture body.
type Arch struct {
	Name   string
	Span   source.Span
	Entity EntityID
	Decls  []DeclInBlockRef
	Stmts  []ConcStmtRef
}

// A Package is a package declaration.
type Package struct {
	Name     string
	Span     source.Span
	Generics []GenericRef
	Decls    []DeclInPkgRef
}

// A Process is a process statement.
type Process struct {
	Label string
	Span  source.Span
	Decls []DeclInProcRef
	Stmts []SeqStmtRef
}

// An IntfSignal is a signal declared in an interface list, such as a
// port of an entity.
type IntfSignal struct {
	Name    string
	Span    source.Span
	Subtype SubtypeIndID
}

// A TypeDecl is a type declaration. Data is nil for an incomplete
// declaration (one without a type definition).
type TypeDecl struct {
	Name     string
	NameSpan source.Span
	Data     TypeData
	DataSpan source.Span // span of the type definition, if any
}

// TypeData is the definition attached to a full type declaration.
// It is one of RangeTypeData, EnumTypeData, PhysicalTypeData,
// AccessTypeData, or ArrayTypeData.
type TypeData interface {
	aTypeData()
}

// RangeTypeData defines an integer or floating-point type from a range.
// The bound expressions decide which of the two it is.
type RangeTypeData struct {
	Dir   Dir
	Left  ExprID
	Right ExprID
}

// EnumTypeData defines an enumeration type. Only the literal names are
// retained; the declaration's identity distinguishes the type.
type EnumTypeData struct {
	Literals []string
}

// PhysicalTypeData defines a physical type: an integer range together
// with a list of units. Primary indexes the primary unit within Units.
type PhysicalTypeData struct {
	Dir     Dir
	Left    ExprID
	Right   ExprID
	Units   []PhysicalUnit
	Primary int
}

// A PhysicalUnit is one unit of a physical type definition. Scale is
// the number of primary units in this unit.
type PhysicalUnit struct {
	Name  string
	Scale *big.Int
}

// AccessTypeData defines an access type to the designated subtype.
type AccessTypeData struct {
	Designated SubtypeIndID
}

// ArrayTypeData defines an array type with one or more index
// definitions and an element subtype.
type ArrayTypeData struct {
	Indices []ArrayTypeIndexID
	Element SubtypeIndID
}

func (*RangeTypeData) aTypeData()    {}
func (*EnumTypeData) aTypeData()     {}
func (*PhysicalTypeData) aTypeData() {}
func (*AccessTypeData) aTypeData()   {}
func (*ArrayTypeData) aTypeData()    {}

// An ArrayTypeIndex is one index definition of an array type. It is one
// of three forms: an unbounded index over a type mark ("range <>"), an
// index constrained by a subtype indication, or an index constrained by
// an explicit range.
type ArrayTypeIndex struct {
	Span source.Span

	// Exactly one of the following is set.
	Unbounded TypeMarkRef
	Subtype   SubtypeIndID
	Range     *RangeTypeData
}

// A SubtypeDecl is a subtype declaration.
type SubtypeDecl struct {
	Name    string
	Span    source.Span
	Subtype SubtypeIndID
}

// A SubtypeInd is a subtype indication: a type mark with an optional
// constraint.
type SubtypeInd struct {
	Span       source.Span
	Mark       TypeMarkRef
	MarkSpan   source.Span
	Constraint Constraint // nil if unconstrained
}

// Constraint is the constraint of a subtype indication. It is one of
// RangeExprConstraint, RangeConstraint, ArrayConstraint, or
// RecordConstraint.
type Constraint interface {
	aConstraint()
	ConstraintSpan() source.Span
}

// RangeExprConstraint constrains by a range given as a single
// expression, such as an attribute name. The expression must evaluate
// to an integer range constant.
type RangeExprConstraint struct {
	Span source.Span
	Expr ExprID
}

// RangeConstraint constrains by an explicit range with a direction and
// two bound expressions.
type RangeConstraint struct {
	Span  source.Span
	Dir   Dir
	Left  ExprID
	Right ExprID
}

// ArrayConstraint is an index or element constraint on an array type.
type ArrayConstraint struct {
	Span source.Span
}

// RecordConstraint is an element constraint on a record type.
type RecordConstraint struct {
	Span source.Span
}

func (*RangeExprConstraint) aConstraint() {}
func (*RangeConstraint) aConstraint()     {}
func (*ArrayConstraint) aConstraint()     {}
func (*RecordConstraint) aConstraint()    {}

func (c *RangeExprConstraint) ConstraintSpan() source.Span { return c.Span }
func (c *RangeConstraint) ConstraintSpan() source.Span     { return c.Span }
func (c *ArrayConstraint) ConstraintSpan() source.Span     { return c.Span }
func (c *RecordConstraint) ConstraintSpan() source.Span    { return c.Span }

// A SignalDecl is a signal declaration in a declarative part.
type SignalDecl struct {
	Name    string
	Span    source.Span
	Subtype SubtypeIndID
}

// An Expr is an expression. Text holds the source text of the
// expression for use in diagnostics.
type Expr struct {
	Span source.Span
	Text string
	Data ExprData
}

// ExprData is the variant payload of an expression. Variants without a
// checking rule are represented by OtherExpr.
type ExprData interface {
	aExprData()
}

// IntLitExpr is an integer literal. Mark is non-nil if the literal
// carries an explicit type, as in a qualified expression.
type IntLitExpr struct {
	Value *big.Int
	Mark  TypeMarkRef
}

// FloatLitExpr is a floating-point literal.
type FloatLitExpr struct {
	Value float64
}

// OtherExpr is any expression form the checker has no rule for yet.
// Op names the form for diagnostics.
type OtherExpr struct {
	Op string
}

func (*IntLitExpr) aExprData()   {}
func (*FloatLitExpr) aExprData() {}
func (*OtherExpr) aExprData()    {}

// A SigAssign is a sequential signal assignment statement.
type SigAssign struct {
	Span       source.Span
	Target     SigAssignTarget
	TargetSpan source.Span
	Kind       SigAssignKind
}

// SigAssignTarget is the target of a signal assignment: either a named
// signal or an aggregate.
type SigAssignTarget interface {
	aSigAssignTarget()
}

// TargetName assigns to a named signal.
type TargetName struct {
	Signal SignalRef
}

// TargetAggregate assigns to an aggregate of signals.
type TargetAggregate struct{}

func (*TargetName) aSigAssignTarget()      {}
func (*TargetAggregate) aSigAssignTarget() {}

// SigAssignKind is the right-hand side of a signal assignment. It is
// one of SimpleWave, SimpleForce, SimpleRelease, CondWave, CondForce,
// SelWave, or SelForce.
type SigAssignKind interface {
	aSigAssignKind()
}

// SimpleWave drives a waveform, optionally with a delay mechanism.
type SimpleWave struct {
	Delay *DelayMechanism
	Wave  Waveform
}

// SimpleForce forces the signal to the value of an expression.
type SimpleForce struct {
	Mode ForceMode
	Expr ExprID
}

// SimpleRelease releases a previously forced signal.
type SimpleRelease struct {
	Mode ForceMode
}

// CondWave drives one of several waveforms selected by conditions.
type CondWave struct {
	Delay *DelayMechanism
	Waves []CondWaveElem
}

// CondWaveElem is one alternative of a conditional waveform. Cond is
// the zero ExprID for the trailing "else" alternative.
type CondWaveElem struct {
	Wave Waveform
	Cond ExprID
}

// CondForce forces one of several expressions selected by conditions.
type CondForce struct {
	Mode  ForceMode
	Exprs []CondExprElem
}

// CondExprElem is one alternative of a conditional force. Cond is the
// zero ExprID for the trailing "else" alternative.
type CondExprElem struct {
	Expr ExprID
	Cond ExprID
}

// SelWave drives one of several waveforms selected by a discriminant.
type SelWave struct {
	Delay  *DelayMechanism
	Select ExprID
	Waves  []Waveform
}

// SelForce forces one of several expressions selected by a discriminant.
type SelForce struct {
	Mode   ForceMode
	Select ExprID
	Exprs  []ExprID
}

func (*SimpleWave) aSigAssignKind()    {}
func (*SimpleForce) aSigAssignKind()   {}
func (*SimpleRelease) aSigAssignKind() {}
func (*CondWave) aSigAssignKind()      {}
func (*CondForce) aSigAssignKind()     {}
func (*SelWave) aSigAssignKind()       {}
func (*SelForce) aSigAssignKind()      {}

// DelayMechanism is the delay mechanism of a waveform assignment.
type DelayMechanism struct {
	Transport bool
	// Reject is the pulse rejection limit of an inertial delay, or the
	// zero ExprID if none was given.
	Reject ExprID
}

// A Waveform is a list of waveform elements.
type Waveform []WaveElem

// A WaveElem is one element of a waveform. Value is the zero ExprID for
// the "unaffected" element. After is the zero ExprID when no delay is
// given.
type WaveElem struct {
	Value ExprID
	After ExprID
}
