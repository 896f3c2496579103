package design

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/samber/lo"

	"github.com/phsilva/moore/internal/hir"
	"github.com/phsilva/moore/internal/konst"
)

const sampleDoc = `
libraries:
  - name: work
    packages:
      - name: util
        types:
          - name: byte
            range: {left: 0, right: 255}
          - name: state
            enum: [idle, run, done]
          - name: byte_ptr
            access: {mark: byte}
        subtypes:
          - name: small
            type: {mark: byte, range: {left: 10, right: 20}}
    entities:
      - name: top
        ports:
          - name: din
            type: {mark: byte}
    architectures:
      - name: rtl
        entity: top
        signals:
          - name: cnt
            type: {mark: byte}
        processes:
          - label: main
            stmts:
              - assign:
                  target: cnt
                  wave:
                    - value: 42
              - null_stmt: true
`

func parse(t *testing.T, doc string) *Design {
	t.Helper()
	d, err := Parse(strings.NewReader(doc), "test.yaml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return d
}

func TestParseDecls(t *testing.T) {
	d := parse(t, sampleDoc)
	if len(d.Libraries()) != 1 {
		t.Fatalf("len(Libraries()) = %d, want 1", len(d.Libraries()))
	}
	got := lo.Map(d.Decls(), func(n NamedDecl, _ int) string { return n.Name })
	want := []string{"byte", "state", "byte_ptr", "small"}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("decl names mismatch: %v", diff)
	}
}

func TestParseLibraryShape(t *testing.T) {
	d := parse(t, sampleDoc)
	lib, err := d.Table().Library(d.Libraries()[0])
	if err != nil {
		t.Fatal(err)
	}
	if lib.Name != "work" {
		t.Errorf("Name = %q, want %q", lib.Name, "work")
	}
	if len(lib.PkgDecls) != 1 || len(lib.Entities) != 1 || len(lib.Archs) != 1 {
		t.Fatalf("units = %d/%d/%d, want 1/1/1", len(lib.PkgDecls), len(lib.Entities), len(lib.Archs))
	}
	pkg, err := d.Table().Package(lib.PkgDecls[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(pkg.Decls) != 4 {
		t.Errorf("len(pkg.Decls) = %d, want 4", len(pkg.Decls))
	}
}

func TestParseConstants(t *testing.T) {
	d := parse(t, sampleDoc)
	byteDecl, ok := d.Decls()[0].Mark.(hir.TypeDeclID)
	if !ok {
		t.Fatalf("decl 0 is %T, want a type declaration", d.Decls()[0].Mark)
	}
	td, err := d.Table().TypeDecl(byteDecl)
	if err != nil {
		t.Fatal(err)
	}
	rd, ok := td.Data.(*hir.RangeTypeData)
	if !ok {
		t.Fatalf("Data is %T, want *hir.RangeTypeData", td.Data)
	}
	v, err := d.ConstValue(rd.Right)
	if err != nil {
		t.Fatal(err)
	}
	iv, ok := v.(*konst.Int)
	if !ok || iv.Value.Int64() != 255 {
		t.Errorf("ConstValue(right) = %v, want 255", v)
	}
}

func TestParseSpans(t *testing.T) {
	d := parse(t, sampleDoc)
	byteDecl := d.Decls()[0].Mark.(hir.TypeDeclID)
	td, err := d.Table().TypeDecl(byteDecl)
	if err != nil {
		t.Fatal(err)
	}
	if !td.NameSpan.IsValid() {
		t.Error("NameSpan invalid, want a document position")
	}
	if td.NameSpan.File != "test.yaml" {
		t.Errorf("NameSpan.File = %q, want %q", td.NameSpan.File, "test.yaml")
	}
}

func TestParseTypeContext(t *testing.T) {
	d := parse(t, sampleDoc)
	lib, err := d.Table().Library(d.Libraries()[0])
	if err != nil {
		t.Fatal(err)
	}
	arch, err := d.Table().Arch(lib.Archs[0])
	if err != nil {
		t.Fatal(err)
	}
	proc, err := d.Table().Process(arch.Stmts[0].(hir.ProcessID))
	if err != nil {
		t.Fatal(err)
	}
	if len(proc.Stmts) != 2 {
		t.Fatalf("len(proc.Stmts) = %d, want 2", len(proc.Stmts))
	}
	if _, ok := proc.Stmts[1].(hir.NullStmtID); !ok {
		t.Errorf("stmt 1 is %T, want a null statement", proc.Stmts[1])
	}
	assign, err := d.Table().SigAssign(proc.Stmts[0].(hir.SigAssignID))
	if err != nil {
		t.Fatal(err)
	}
	wave := assign.Kind.(*hir.SimpleWave).Wave
	if len(wave) != 1 {
		t.Fatalf("len(wave) = %d, want 1", len(wave))
	}
	ref, ok := d.TypeContext(wave[0].Value)
	if !ok {
		t.Fatal("TypeContext not recorded for the waveform value")
	}
	if _, ok := ref.(hir.SignalDeclID); !ok {
		t.Errorf("type context is %T, want a signal declaration", ref)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"unknown mark",
			`
libraries:
  - name: work
    packages:
      - name: p
        types:
          - name: ptr
            access: {mark: nope}
`,
			"unknown type mark `nope`",
		},
		{
			"duplicate declaration",
			`
libraries:
  - name: work
    packages:
      - name: p
        types:
          - name: byte
            range: {left: 0, right: 1}
          - name: byte
            range: {left: 0, right: 1}
`,
			"duplicate declaration of `byte`",
		},
		{
			"unknown entity",
			`
libraries:
  - name: work
    architectures:
      - name: rtl
        entity: ghost
`,
			"unknown entity `ghost`",
		},
		{
			"unknown signal",
			`
libraries:
  - name: work
    entities:
      - name: top
    architectures:
      - name: rtl
        entity: top
        processes:
          - stmts:
              - assign: {target: zap, wave: [{value: 1}]}
`,
			"unknown signal `zap`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc), "test.yaml")
			if err == nil {
				t.Fatal("Parse succeeded, want failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}
