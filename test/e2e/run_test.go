package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phsilva/moore/internal/design"
	"github.com/phsilva/moore/internal/diag"
	"github.com/phsilva/moore/internal/typeck"
)

// TestE2E runs end-to-end tests for all .yaml design dumps in testdata/.
// Each test:
//  1. Loads the dump into a lowered design tree
//  2. Type-checks every library in it
//  3. Renders the diagnostics and the pass/fail verdict
//  4. Compares the rendering against the .golden file
//
// Spans are left out of the rendering so that goldens do not track the
// exact layout of the dump documents.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .yaml test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".yaml")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, yamlFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(yamlFile, ".yaml") + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	d, err := design.Load(yamlFile)
	if err != nil {
		t.Fatalf("loading design: %v", err)
	}

	var coll diag.Collector
	ok := typeck.Check(d.Table(), d.Libraries(), &typeck.Config{
		Consts:      d,
		TypeContext: d,
		Diag:        coll.Handle,
	})

	var sb strings.Builder
	for _, dg := range coll.All() {
		sb.WriteString(dg.Severity.String())
		sb.WriteString(": ")
		sb.WriteString(dg.Msg)
		sb.WriteByte('\n')
	}
	if ok {
		sb.WriteString("result: pass\n")
	} else {
		sb.WriteString("result: fail\n")
	}

	got := sb.String()
	want := string(expected)
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}
