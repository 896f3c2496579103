// Package main implements the moorec analyzer entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sanity-io/litter"
	"golang.org/x/exp/slices"

	"github.com/phsilva/moore/internal/design"
	"github.com/phsilva/moore/internal/diag"
	"github.com/phsilva/moore/internal/typeck"
	"github.com/phsilva/moore/internal/types"
)

// Analyzer flags
var (
	emitTypes  = flag.Bool("emit-types", false, "Output the type of every declared type and subtype")
	dumpDesign = flag.Bool("dump-design", false, "Output the loaded design tree declarations")
	quiet      = flag.Bool("q", false, "Suppress diagnostics, report pass/fail only")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Moore Analyzer %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: moorec [options] <design.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("moorec version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: moorec [options] <design.yaml>")
		os.Exit(1)
	}

	filename := args[0]

	d, err := design.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *dumpDesign {
		os.Exit(runDumpDesign(d))
	}

	if *emitTypes {
		os.Exit(runEmitTypes(d))
	}

	os.Exit(runCheck(d))
}

// runCheck type-checks the design and prints the diagnostics.
func runCheck(d *design.Design) int {
	var coll diag.Collector
	handler := coll.Handle
	if *quiet {
		handler = func(diag.Diagnostic) {}
	}
	ok := typeck.Check(d.Table(), d.Libraries(), &typeck.Config{
		Consts:      d,
		TypeContext: d,
		Diag:        handler,
	})
	for _, dg := range coll.All() {
		fmt.Fprintln(os.Stderr, dg)
	}
	if !ok {
		return 1
	}
	return 0
}

// runEmitTypes type-checks the design and prints the computed type of
// every declared type and subtype, sorted by name.
func runEmitTypes(d *design.Design) int {
	var coll diag.Collector
	c := typeck.NewContext(d.Table(), types.NewArena(), &typeck.Config{
		Consts:      d,
		TypeContext: d,
		Diag:        coll.Handle,
	})
	for _, lib := range d.Libraries() {
		c.CheckLibrary(lib)
	}

	decls := slices.Clone(d.Decls())
	slices.SortFunc(decls, func(a, b design.NamedDecl) bool {
		return a.Name < b.Name
	})
	for _, decl := range decls {
		t, err := c.TypeOfTypeMark(decl.Mark)
		if err != nil {
			fmt.Printf("%s: <error>\n", decl.Name)
			continue
		}
		fmt.Printf("%s: %s\n", decl.Name, t)
	}

	for _, dg := range coll.All() {
		fmt.Fprintln(os.Stderr, dg)
	}
	if !c.Finish() {
		return 1
	}
	return 0
}

// runDumpDesign prints the declarations of the loaded design tree in
// a debug rendering.
func runDumpDesign(d *design.Design) int {
	sq := litter.Options{HidePrivateFields: false, Compact: false}
	out := sq.Sdump(d.Decls())
	fmt.Println(strings.TrimSpace(out))
	return 0
}
