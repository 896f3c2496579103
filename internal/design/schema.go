package design

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// pos records where a schema element appeared in the document.
type pos struct {
	line int
	col  int
}

func (p *pos) set(n *yaml.Node) {
	p.line = n.Line
	p.col = n.Column
}

// The *Y types mirror the YAML schema of a design dump. Each captures
// its document position for span synthesis.

type docY struct {
	Libraries []libraryY `yaml:"libraries"`
}

type libraryY struct {
	pos
	Name          string     `yaml:"name"`
	Packages      []packageY `yaml:"packages"`
	Entities      []entityY  `yaml:"entities"`
	Architectures []archY    `yaml:"architectures"`
	// Others names design unit kinds present in the library but not
	// representable in the dump: package_body, package_instance,
	// context, configuration.
	Others []string `yaml:"others"`
}

func (y *libraryY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw libraryY
	return n.Decode((*raw)(y))
}

type packageY struct {
	pos
	Name     string         `yaml:"name"`
	Generics []string       `yaml:"generics"`
	Types    []typeDeclY    `yaml:"types"`
	Subtypes []subtypeDeclY `yaml:"subtypes"`
	Packages []packageY     `yaml:"packages"`
}

func (y *packageY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw packageY
	return n.Decode((*raw)(y))
}

type entityY struct {
	pos
	Name string `yaml:"name"`
	// Generics names the generic kinds of the entity: type,
	// subprogram, package, constant.
	Generics []string `yaml:"generics"`
	Ports    []portY  `yaml:"ports"`
}

func (y *entityY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw entityY
	return n.Decode((*raw)(y))
}

type portY struct {
	pos
	Name string `yaml:"name"`
	Type *indY  `yaml:"type"`
}

func (y *portY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw portY
	return n.Decode((*raw)(y))
}

type archY struct {
	pos
	Name      string         `yaml:"name"`
	Entity    string         `yaml:"entity"`
	Types     []typeDeclY    `yaml:"types"`
	Subtypes  []subtypeDeclY `yaml:"subtypes"`
	Signals   []signalY      `yaml:"signals"`
	Processes []processY     `yaml:"processes"`
	// Others names concurrent statement kinds present in the
	// architecture but not representable in the dump.
	Others []string `yaml:"others"`
}

func (y *archY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw archY
	return n.Decode((*raw)(y))
}

type signalY struct {
	pos
	Name string `yaml:"name"`
	Type *indY  `yaml:"type"`
}

func (y *signalY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw signalY
	return n.Decode((*raw)(y))
}

type processY struct {
	pos
	Label string  `yaml:"label"`
	Stmts []stmtY `yaml:"stmts"`
}

func (y *processY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw processY
	return n.Decode((*raw)(y))
}

type stmtY struct {
	pos
	Assign *assignY `yaml:"assign"`
	Null   bool     `yaml:"null_stmt"`
	// Other names a sequential statement kind not representable in
	// the dump: wait, assert, report, var_assign, call, if, case,
	// loop, next, exit, return.
	Other string `yaml:"other"`
}

func (y *stmtY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw stmtY
	return n.Decode((*raw)(y))
}

type assignY struct {
	pos
	Target    string `yaml:"target"`
	Aggregate bool   `yaml:"aggregate"`
	Transport bool   `yaml:"transport"`

	Wave     []waveElemY `yaml:"wave"`
	Force    *exprY      `yaml:"force"`
	Release  bool        `yaml:"release"`
	CondWave []condWaveY `yaml:"cond_wave"`
}

func (y *assignY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw assignY
	return n.Decode((*raw)(y))
}

type condWaveY struct {
	pos
	Wave []waveElemY `yaml:"wave"`
	Cond *exprY      `yaml:"cond"`
}

func (y *condWaveY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw condWaveY
	return n.Decode((*raw)(y))
}

type waveElemY struct {
	pos
	Value      *exprY `yaml:"value"`
	After      *exprY `yaml:"after"`
	Unaffected bool   `yaml:"unaffected"`
}

func (y *waveElemY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw waveElemY
	return n.Decode((*raw)(y))
}

type typeDeclY struct {
	pos
	Name     string     `yaml:"name"`
	Range    *rangeY    `yaml:"range"`
	Enum     []string   `yaml:"enum"`
	Physical *physicalY `yaml:"physical"`
	Access   *indY      `yaml:"access"`
	Array    *arrayY    `yaml:"array"`
}

func (y *typeDeclY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw typeDeclY
	return n.Decode((*raw)(y))
}

type subtypeDeclY struct {
	pos
	Name string `yaml:"name"`
	Type *indY  `yaml:"type"`
}

func (y *subtypeDeclY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw subtypeDeclY
	return n.Decode((*raw)(y))
}

type physicalY struct {
	pos
	Range   rangeY  `yaml:"range"`
	Units   []unitY `yaml:"units"`
	Primary string  `yaml:"primary"`
}

func (y *physicalY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw physicalY
	return n.Decode((*raw)(y))
}

type unitY struct {
	Name  string `yaml:"name"`
	Scale int64  `yaml:"scale"`
}

type arrayY struct {
	pos
	Indices []arrayIndexY `yaml:"indices"`
	Element *indY         `yaml:"element"`
}

func (y *arrayY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw arrayY
	return n.Decode((*raw)(y))
}

type arrayIndexY struct {
	pos
	// Mark alone denotes an unbounded index ("range <>") over the
	// marked type.
	Mark  string  `yaml:"mark"`
	Type  *indY   `yaml:"type"`
	Range *rangeY `yaml:"range"`
}

func (y *arrayIndexY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw arrayIndexY
	return n.Decode((*raw)(y))
}

// indY is a subtype indication: a type mark with an optional
// constraint.
type indY struct {
	pos
	Mark      string  `yaml:"mark"`
	Range     *rangeY `yaml:"range"`
	RangeExpr *exprY  `yaml:"range_expr"`
	// Constraint names a constraint form carried symbolically:
	// "array" or "record".
	Constraint string `yaml:"constraint"`
}

func (y *indY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw indY
	return n.Decode((*raw)(y))
}

type rangeY struct {
	pos
	Dir   string `yaml:"dir"`
	Left  *exprY `yaml:"left"`
	Right *exprY `yaml:"right"`
}

func (y *rangeY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	type raw rangeY
	return n.Decode((*raw)(y))
}

type exprKind int

const (
	exprInt exprKind = iota
	exprFloat
	exprRange
	exprOther
)

// exprY is an expression. A bare scalar is an integer or
// floating-point literal; a mapping selects the form explicitly:
// {int: 42}, {int: 42, mark: byte}, {float: 6.28}, {irange: {...}},
// or {op: name} for forms the dump cannot represent.
type exprY struct {
	pos
	kind     exprKind
	text     string
	intVal   *big.Int
	floatVal float64
	mark     string
	op       string
	irange   *rangeY
}

func (y *exprY) UnmarshalYAML(n *yaml.Node) error {
	y.pos.set(n)
	if n.Kind == yaml.ScalarNode {
		y.text = n.Value
		return y.setScalar(n.Value)
	}
	var raw struct {
		Int    *yaml.Node `yaml:"int"`
		Float  *float64   `yaml:"float"`
		Mark   string     `yaml:"mark"`
		Op     string     `yaml:"op"`
		IRange *rangeY    `yaml:"irange"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Int != nil:
		y.text = raw.Int.Value
		if err := y.setScalar(raw.Int.Value); err != nil {
			return err
		}
		if y.kind != exprInt {
			return fmt.Errorf("line %d: `%s` is not an integer literal", n.Line, raw.Int.Value)
		}
		y.mark = raw.Mark
	case raw.Float != nil:
		y.kind = exprFloat
		y.floatVal = *raw.Float
		y.text = fmt.Sprintf("%g", *raw.Float)
	case raw.IRange != nil:
		y.kind = exprRange
		y.irange = raw.IRange
	case raw.Op != "":
		y.kind = exprOther
		y.op = raw.Op
	default:
		return fmt.Errorf("line %d: empty expression", n.Line)
	}
	return nil
}

// setScalar classifies a scalar literal as integer or floating-point.
func (y *exprY) setScalar(s string) error {
	if v, ok := new(big.Int).SetString(s, 10); ok {
		y.kind = exprInt
		y.intVal = v
		return nil
	}
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err == nil {
		y.kind = exprFloat
		y.floatVal = f
		return nil
	}
	return fmt.Errorf("invalid literal `%s`", s)
}
