package hir

import (
	"errors"
	"testing"
)

func TestTableLookup(t *testing.T) {
	tbl := NewTable()
	id := tbl.AddTypeDecl(&TypeDecl{Name: "byte"})
	n, err := tbl.TypeDecl(id)
	if err != nil {
		t.Fatalf("TypeDecl(%s) failed: %v", id, err)
	}
	if n.Name != "byte" {
		t.Errorf("Name = %q, want %q", n.Name, "byte")
	}
}

func TestTableLookupNotFound(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Entity(EntityID(99)); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	// An ID added under one kind does not answer for another.
	id := tbl.AddTypeDecl(&TypeDecl{Name: "byte"})
	if _, err := tbl.SubtypeDecl(SubtypeDeclID(id)); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFreshIDsAreUnique(t *testing.T) {
	tbl := NewTable()
	seen := make(map[NodeID]bool)
	seen[tbl.AddTypeDecl(&TypeDecl{}).Node()] = true
	seen[tbl.AddExpr(&Expr{}).Node()] = true
	for i := 0; i < 10; i++ {
		id := tbl.FreshID()
		if !id.Valid() {
			t.Fatal("FreshID returned the zero ID")
		}
		if seen[id] {
			t.Fatalf("FreshID returned a duplicate: %d", id)
		}
		seen[id] = true
	}
}

func TestDirString(t *testing.T) {
	if DirTo.String() != "to" || DirDownto.String() != "downto" {
		t.Error("Dir.String() mismatch")
	}
}
