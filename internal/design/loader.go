package design

import (
	"fmt"
	"io"
	"math/big"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/konst"
	"github.com/phsilva/moore/internal/source"
)

// Parse reads a design dump from r. file names the document in spans
// and error messages.
func Parse(r io.Reader, file string) (*Design, error) {
	var doc docY
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	d := &Design{
		file:   file,
		table:  hir.NewTable(),
		consts: make(map[hir.ExprID]konst.Value),
		tyctx:  make(map[hir.ExprID]hir.TypedNodeRef),
	}
	b := &builder{d: d}
	for i := range doc.Libraries {
		if err := b.library(&doc.Libraries[i]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

type pendType struct {
	y    *typeDeclY
	node *hir.TypeDecl
}

type pendSub struct {
	y    *subtypeDeclY
	node *hir.SubtypeDecl
}

type entityInfo struct {
	id    hir.EntityID
	ports map[string]hir.SignalRef
}

// builder lowers one document into the design's table. Named type and
// subtype declarations are allocated in a first pass so that marks
// resolve regardless of declaration order within a library.
type builder struct {
	d         *Design
	marks     map[string]hir.TypeMarkRef
	pendTypes []pendType
	pendSubs  []pendSub
	archDecls map[*archY][]hir.DeclInBlockRef
}

func (b *builder) span(p pos) source.Span {
	return source.NewSpan(b.d.file, uint32(p.line), uint32(p.col))
}

func (b *builder) library(y *libraryY) error {
	b.marks = make(map[string]hir.TypeMarkRef)
	b.pendTypes = nil
	b.pendSubs = nil
	b.archDecls = make(map[*archY][]hir.DeclInBlockRef)

	lib := &hir.Library{Name: y.Name}

	for i := range y.Packages {
		id, err := b.declarePackage(&y.Packages[i])
		if err != nil {
			return err
		}
		lib.PkgDecls = append(lib.PkgDecls, id)
	}
	for i := range y.Architectures {
		a := &y.Architectures[i]
		var decls []hir.DeclInBlockRef
		for j := range a.Types {
			id, err := b.declareType(&a.Types[j])
			if err != nil {
				return err
			}
			decls = append(decls, id)
		}
		for j := range a.Subtypes {
			id, err := b.declareSubtype(&a.Subtypes[j])
			if err != nil {
				return err
			}
			decls = append(decls, id)
		}
		b.archDecls[a] = decls
	}

	for _, p := range b.pendTypes {
		if err := b.fillTypeDecl(p); err != nil {
			return err
		}
	}
	for _, p := range b.pendSubs {
		if p.y.Type == nil {
			return b.d.errf(p.y.line, "subtype `%s` needs a type", p.y.Name)
		}
		ind, err := b.ind(p.y.Type)
		if err != nil {
			return err
		}
		p.node.Subtype = ind
	}

	entities := make(map[string]entityInfo)
	for i := range y.Entities {
		e := &y.Entities[i]
		id, ports, err := b.entity(e)
		if err != nil {
			return err
		}
		lib.Entities = append(lib.Entities, id)
		entities[e.Name] = entityInfo{id: id, ports: ports}
	}
	for i := range y.Architectures {
		id, err := b.arch(&y.Architectures[i], entities)
		if err != nil {
			return err
		}
		lib.Archs = append(lib.Archs, id)
	}

	for _, o := range y.Others {
		switch o {
		case "package_body":
			lib.PkgBodies = append(lib.PkgBodies, hir.PkgBodyID(b.d.table.FreshID()))
		case "package_instance":
			lib.PkgInsts = append(lib.PkgInsts, hir.PkgInstID(b.d.table.FreshID()))
		case "context":
			lib.Ctxs = append(lib.Ctxs, hir.CtxID(b.d.table.FreshID()))
		case "configuration":
			lib.Cfgs = append(lib.Cfgs, hir.CfgID(b.d.table.FreshID()))
		default:
			return b.d.errf(y.line, "unknown design unit kind `%s`", o)
		}
	}

	b.d.libs = append(b.d.libs, b.d.table.AddLibrary(lib))
	return nil
}

func (b *builder) declarePackage(y *packageY) (hir.PkgDeclID, error) {
	pkg := &hir.Package{Name: y.Name, Span: b.span(y.pos)}
	for _, g := range y.Generics {
		ref, err := b.genericRef(g, y.line)
		if err != nil {
			return 0, err
		}
		pkg.Generics = append(pkg.Generics, ref)
	}
	for i := range y.Types {
		id, err := b.declareType(&y.Types[i])
		if err != nil {
			return 0, err
		}
		pkg.Decls = append(pkg.Decls, id)
	}
	for i := range y.Subtypes {
		id, err := b.declareSubtype(&y.Subtypes[i])
		if err != nil {
			return 0, err
		}
		pkg.Decls = append(pkg.Decls, id)
	}
	for i := range y.Packages {
		id, err := b.declarePackage(&y.Packages[i])
		if err != nil {
			return 0, err
		}
		pkg.Decls = append(pkg.Decls, id)
	}
	return b.d.table.AddPackage(pkg), nil
}

func (b *builder) declareType(y *typeDeclY) (hir.TypeDeclID, error) {
	if _, ok := b.marks[y.Name]; ok {
		return 0, b.d.errf(y.line, "duplicate declaration of `%s`", y.Name)
	}
	node := &hir.TypeDecl{Name: y.Name, NameSpan: b.span(y.pos)}
	id := b.d.table.AddTypeDecl(node)
	b.marks[y.Name] = id
	b.d.decls = append(b.d.decls, NamedDecl{Name: y.Name, Mark: id})
	b.pendTypes = append(b.pendTypes, pendType{y: y, node: node})
	return id, nil
}

func (b *builder) declareSubtype(y *subtypeDeclY) (hir.SubtypeDeclID, error) {
	if _, ok := b.marks[y.Name]; ok {
		return 0, b.d.errf(y.line, "duplicate declaration of `%s`", y.Name)
	}
	node := &hir.SubtypeDecl{Name: y.Name, Span: b.span(y.pos)}
	id := b.d.table.AddSubtypeDecl(node)
	b.marks[y.Name] = id
	b.d.decls = append(b.d.decls, NamedDecl{Name: y.Name, Mark: id})
	b.pendSubs = append(b.pendSubs, pendSub{y: y, node: node})
	return id, nil
}

func (b *builder) fillTypeDecl(p pendType) error {
	y := p.y
	switch {
	case y.Range != nil:
		data, err := b.rangeData(y.Range)
		if err != nil {
			return err
		}
		p.node.Data = data
		p.node.DataSpan = b.span(y.Range.pos)
	case y.Enum != nil:
		p.node.Data = &hir.EnumTypeData{Literals: y.Enum}
		p.node.DataSpan = b.span(y.pos)
	case y.Physical != nil:
		data, err := b.physicalData(y.Physical)
		if err != nil {
			return err
		}
		p.node.Data = data
		p.node.DataSpan = b.span(y.Physical.pos)
	case y.Access != nil:
		ind, err := b.ind(y.Access)
		if err != nil {
			return err
		}
		p.node.Data = &hir.AccessTypeData{Designated: ind}
		p.node.DataSpan = b.span(y.Access.pos)
	case y.Array != nil:
		data, err := b.arrayData(y.Array)
		if err != nil {
			return err
		}
		p.node.Data = data
		p.node.DataSpan = b.span(y.Array.pos)
	default:
		// No definition: an incomplete type declaration.
	}
	return nil
}

func (b *builder) physicalData(y *physicalY) (*hir.PhysicalTypeData, error) {
	rd, err := b.rangeData(&y.Range)
	if err != nil {
		return nil, err
	}
	units := lo.Map(y.Units, func(u unitY, _ int) hir.PhysicalUnit {
		return hir.PhysicalUnit{Name: u.Name, Scale: big.NewInt(u.Scale)}
	})
	if len(units) == 0 {
		return nil, b.d.errf(y.line, "physical type needs at least one unit")
	}
	primary := 0
	if y.Primary != "" {
		_, idx, ok := lo.FindIndexOf(y.Units, func(u unitY) bool { return u.Name == y.Primary })
		if !ok {
			return nil, b.d.errf(y.line, "unknown primary unit `%s`", y.Primary)
		}
		primary = idx
	}
	return &hir.PhysicalTypeData{
		Dir:     rd.Dir,
		Left:    rd.Left,
		Right:   rd.Right,
		Units:   units,
		Primary: primary,
	}, nil
}

func (b *builder) arrayData(y *arrayY) (*hir.ArrayTypeData, error) {
	data := &hir.ArrayTypeData{}
	for i := range y.Indices {
		x := &y.Indices[i]
		node := &hir.ArrayTypeIndex{Span: b.span(x.pos)}
		switch {
		case x.Type != nil:
			ind, err := b.ind(x.Type)
			if err != nil {
				return nil, err
			}
			node.Subtype = ind
		case x.Range != nil:
			rd, err := b.rangeData(x.Range)
			if err != nil {
				return nil, err
			}
			node.Range = rd
		case x.Mark != "":
			mark, err := b.markRef(x.Mark, x.line)
			if err != nil {
				return nil, err
			}
			node.Unbounded = mark
		default:
			return nil, b.d.errf(x.line, "array index needs a mark, type, or range")
		}
		data.Indices = append(data.Indices, b.d.table.AddArrayTypeIndex(node))
	}
	if y.Element == nil {
		return nil, b.d.errf(y.line, "array type needs an element")
	}
	el, err := b.ind(y.Element)
	if err != nil {
		return nil, err
	}
	data.Element = el
	return data, nil
}

func (b *builder) rangeData(y *rangeY) (*hir.RangeTypeData, error) {
	dir, err := dirOf(y.Dir)
	if err != nil {
		return nil, b.d.errf(y.line, "%v", err)
	}
	if y.Left == nil || y.Right == nil {
		return nil, b.d.errf(y.line, "range needs left and right bounds")
	}
	l, err := b.expr(y.Left, nil)
	if err != nil {
		return nil, err
	}
	r, err := b.expr(y.Right, nil)
	if err != nil {
		return nil, err
	}
	return &hir.RangeTypeData{Dir: dir, Left: l, Right: r}, nil
}

func (b *builder) ind(y *indY) (hir.SubtypeIndID, error) {
	mark, err := b.markRef(y.Mark, y.line)
	if err != nil {
		return 0, err
	}
	var con hir.Constraint
	switch {
	case y.Range != nil:
		rd, err := b.rangeData(y.Range)
		if err != nil {
			return 0, err
		}
		con = &hir.RangeConstraint{
			Span:  b.span(y.Range.pos),
			Dir:   rd.Dir,
			Left:  rd.Left,
			Right: rd.Right,
		}
	case y.RangeExpr != nil:
		e, err := b.expr(y.RangeExpr, nil)
		if err != nil {
			return 0, err
		}
		con = &hir.RangeExprConstraint{Span: b.span(y.RangeExpr.pos), Expr: e}
	case y.Constraint == "array":
		con = &hir.ArrayConstraint{Span: b.span(y.pos)}
	case y.Constraint == "record":
		con = &hir.RecordConstraint{Span: b.span(y.pos)}
	case y.Constraint != "":
		return 0, b.d.errf(y.line, "unknown constraint kind `%s`", y.Constraint)
	}
	return b.d.table.AddSubtypeInd(&hir.SubtypeInd{
		Span:       b.span(y.pos),
		Mark:       mark,
		MarkSpan:   b.span(y.pos),
		Constraint: con,
	}), nil
}

// expr lowers an expression, pre-evaluating its constant value. ctx,
// if non-nil, is recorded as the type context of a bare integer
// literal.
func (b *builder) expr(y *exprY, ctx hir.TypedNodeRef) (hir.ExprID, error) {
	node := &hir.Expr{Span: b.span(y.pos), Text: y.text}
	var cv konst.Value
	switch y.kind {
	case exprInt:
		var mark hir.TypeMarkRef
		if y.mark != "" {
			m, err := b.markRef(y.mark, y.line)
			if err != nil {
				return 0, err
			}
			mark = m
		}
		node.Data = &hir.IntLitExpr{Value: y.intVal, Mark: mark}
		cv = konst.NewInt(y.intVal)
	case exprFloat:
		node.Data = &hir.FloatLitExpr{Value: y.floatVal}
		cv = konst.NewFloat(y.floatVal)
	case exprRange:
		dir, err := dirOf(y.irange.Dir)
		if err != nil {
			return 0, b.d.errf(y.line, "%v", err)
		}
		l, r := y.irange.Left, y.irange.Right
		if l == nil || r == nil || l.kind != exprInt || r.kind != exprInt {
			return 0, b.d.errf(y.line, "integer range bounds must be integer literals")
		}
		node.Data = &hir.OtherExpr{Op: "range attribute"}
		cv = konst.NewIntRange(dir, l.intVal, r.intVal)
	case exprOther:
		node.Data = &hir.OtherExpr{Op: y.op}
	}
	id := b.d.table.AddExpr(node)
	if cv != nil {
		b.d.consts[id] = cv
	}
	if ctx != nil && y.kind == exprInt && y.mark == "" {
		b.d.tyctx[id] = ctx
	}
	return id, nil
}

func (b *builder) entity(y *entityY) (hir.EntityID, map[string]hir.SignalRef, error) {
	ent := &hir.Entity{Name: y.Name, Span: b.span(y.pos)}
	for _, g := range y.Generics {
		ref, err := b.genericRef(g, y.line)
		if err != nil {
			return 0, nil, err
		}
		ent.Generics = append(ent.Generics, ref)
	}
	ports := make(map[string]hir.SignalRef)
	for i := range y.Ports {
		p := &y.Ports[i]
		if p.Type == nil {
			return 0, nil, b.d.errf(p.line, "port `%s` needs a type", p.Name)
		}
		if _, ok := ports[p.Name]; ok {
			return 0, nil, b.d.errf(p.line, "duplicate port `%s`", p.Name)
		}
		ind, err := b.ind(p.Type)
		if err != nil {
			return 0, nil, err
		}
		id := b.d.table.AddIntfSignal(&hir.IntfSignal{
			Name:    p.Name,
			Span:    b.span(p.pos),
			Subtype: ind,
		})
		ent.Ports = append(ent.Ports, id)
		ports[p.Name] = id
	}
	return b.d.table.AddEntity(ent), ports, nil
}

func (b *builder) arch(y *archY, entities map[string]entityInfo) (hir.ArchID, error) {
	info, ok := entities[y.Entity]
	if !ok {
		return 0, b.d.errf(y.line, "unknown entity `%s`", y.Entity)
	}
	signals := make(map[string]hir.SignalRef, len(info.ports))
	maps.Copy(signals, info.ports)

	arch := &hir.Arch{
		Name:   y.Name,
		Span:   b.span(y.pos),
		Entity: info.id,
		Decls:  b.archDecls[y],
	}
	for i := range y.Signals {
		s := &y.Signals[i]
		if s.Type == nil {
			return 0, b.d.errf(s.line, "signal `%s` needs a type", s.Name)
		}
		if _, ok := signals[s.Name]; ok {
			return 0, b.d.errf(s.line, "duplicate signal `%s`", s.Name)
		}
		ind, err := b.ind(s.Type)
		if err != nil {
			return 0, err
		}
		id := b.d.table.AddSignalDecl(&hir.SignalDecl{
			Name:    s.Name,
			Span:    b.span(s.pos),
			Subtype: ind,
		})
		arch.Decls = append(arch.Decls, id)
		signals[s.Name] = id
	}
	for i := range y.Processes {
		id, err := b.process(&y.Processes[i], signals)
		if err != nil {
			return 0, err
		}
		arch.Stmts = append(arch.Stmts, id)
	}
	for _, o := range y.Others {
		ref, err := b.concStmtRef(o, y.line)
		if err != nil {
			return 0, err
		}
		arch.Stmts = append(arch.Stmts, ref)
	}
	return b.d.table.AddArch(arch), nil
}

func (b *builder) process(y *processY, signals map[string]hir.SignalRef) (hir.ProcessID, error) {
	proc := &hir.Process{Label: y.Label, Span: b.span(y.pos)}
	for i := range y.Stmts {
		s := &y.Stmts[i]
		switch {
		case s.Assign != nil:
			id, err := b.assign(s.Assign, signals)
			if err != nil {
				return 0, err
			}
			proc.Stmts = append(proc.Stmts, id)
		case s.Null:
			proc.Stmts = append(proc.Stmts, hir.NullStmtID(b.d.table.FreshID()))
		case s.Other != "":
			ref, err := b.seqStmtRef(s.Other, s.line)
			if err != nil {
				return 0, err
			}
			proc.Stmts = append(proc.Stmts, ref)
		default:
			return 0, b.d.errf(s.line, "empty statement")
		}
	}
	return b.d.table.AddProcess(proc), nil
}

func (b *builder) assign(y *assignY, signals map[string]hir.SignalRef) (hir.SigAssignID, error) {
	n := &hir.SigAssign{Span: b.span(y.pos), TargetSpan: b.span(y.pos)}
	var ctx hir.TypedNodeRef
	switch {
	case y.Aggregate:
		n.Target = &hir.TargetAggregate{}
	case y.Target != "":
		sig, ok := signals[y.Target]
		if !ok {
			return 0, b.d.errf(y.line, "unknown signal `%s`", y.Target)
		}
		n.Target = &hir.TargetName{Signal: sig}
		switch sig := sig.(type) {
		case hir.SignalDeclID:
			ctx = sig
		case hir.IntfSignalID:
			ctx = sig
		}
	default:
		return 0, b.d.errf(y.line, "assignment needs a target or aggregate")
	}
	var dm *hir.DelayMechanism
	if y.Transport {
		dm = &hir.DelayMechanism{Transport: true}
	}
	switch {
	case y.Wave != nil:
		w, err := b.waveform(y.Wave, ctx)
		if err != nil {
			return 0, err
		}
		n.Kind = &hir.SimpleWave{Delay: dm, Wave: w}
	case y.Force != nil:
		e, err := b.expr(y.Force, ctx)
		if err != nil {
			return 0, err
		}
		n.Kind = &hir.SimpleForce{Expr: e}
	case y.Release:
		n.Kind = &hir.SimpleRelease{}
	case y.CondWave != nil:
		k := &hir.CondWave{Delay: dm}
		for i := range y.CondWave {
			cw := &y.CondWave[i]
			w, err := b.waveform(cw.Wave, ctx)
			if err != nil {
				return 0, err
			}
			elem := hir.CondWaveElem{Wave: w}
			if cw.Cond != nil {
				ce, err := b.expr(cw.Cond, nil)
				if err != nil {
					return 0, err
				}
				elem.Cond = ce
			}
			k.Waves = append(k.Waves, elem)
		}
		n.Kind = k
	default:
		return 0, b.d.errf(y.line, "assignment needs a wave, force, release, or cond_wave")
	}
	return b.d.table.AddSigAssign(n), nil
}

func (b *builder) waveform(ys []waveElemY, ctx hir.TypedNodeRef) (hir.Waveform, error) {
	var w hir.Waveform
	for i := range ys {
		y := &ys[i]
		var el hir.WaveElem
		switch {
		case y.Value != nil:
			v, err := b.expr(y.Value, ctx)
			if err != nil {
				return nil, err
			}
			el.Value = v
		case !y.Unaffected:
			return nil, b.d.errf(y.line, "waveform element needs a value or unaffected")
		}
		if y.After != nil {
			a, err := b.expr(y.After, nil)
			if err != nil {
				return nil, err
			}
			el.After = a
		}
		w = append(w, el)
	}
	return w, nil
}

func (b *builder) markRef(name string, line int) (hir.TypeMarkRef, error) {
	if name == "" {
		return nil, b.d.errf(line, "missing type mark")
	}
	if m, ok := b.marks[name]; ok {
		return m, nil
	}
	return nil, b.d.errf(line, "unknown type mark `%s`", name)
}

func (b *builder) genericRef(kind string, line int) (hir.GenericRef, error) {
	id := b.d.table.FreshID()
	switch kind {
	case "type":
		return hir.IntfTypeID(id), nil
	case "subprogram":
		return hir.IntfSubprogID(id), nil
	case "package":
		return hir.IntfPkgID(id), nil
	case "constant":
		return hir.IntfConstID(id), nil
	}
	return nil, b.d.errf(line, "unknown generic kind `%s`", kind)
}

func (b *builder) concStmtRef(kind string, line int) (hir.ConcStmtRef, error) {
	id := b.d.table.FreshID()
	switch kind {
	case "block":
		return hir.BlockStmtID(id), nil
	case "call":
		return hir.ConcProcCallID(id), nil
	case "assert":
		return hir.ConcAssertID(id), nil
	case "sig_assign":
		return hir.ConcSigAssignID(id), nil
	case "instance":
		return hir.CompInstID(id), nil
	case "for_generate":
		return hir.ForGenID(id), nil
	case "if_generate":
		return hir.IfGenID(id), nil
	case "case_generate":
		return hir.CaseGenID(id), nil
	}
	return nil, b.d.errf(line, "unknown concurrent statement kind `%s`", kind)
}

func (b *builder) seqStmtRef(kind string, line int) (hir.SeqStmtRef, error) {
	id := b.d.table.FreshID()
	switch kind {
	case "wait":
		return hir.WaitStmtID(id), nil
	case "assert":
		return hir.AssertStmtID(id), nil
	case "report":
		return hir.ReportStmtID(id), nil
	case "var_assign":
		return hir.VarAssignID(id), nil
	case "call":
		return hir.ProcCallID(id), nil
	case "if":
		return hir.IfStmtID(id), nil
	case "case":
		return hir.CaseStmtID(id), nil
	case "loop":
		return hir.LoopStmtID(id), nil
	case "next":
		return hir.NextStmtID(id), nil
	case "exit":
		return hir.ExitStmtID(id), nil
	case "return":
		return hir.ReturnStmtID(id), nil
	}
	return nil, b.d.errf(line, "unknown statement kind `%s`", kind)
}

func dirOf(s string) (hir.Dir, error) {
	switch s {
	case "", "to":
		return hir.DirTo, nil
	case "downto":
		return hir.DirDownto, nil
	}
	return 0, fmt.Errorf("unknown range direction `%s`", s)
}
