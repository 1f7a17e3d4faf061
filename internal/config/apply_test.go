package config

import (
	"testing"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

func buildWalkedTable(t *testing.T) (*decltable.Table, *typetable.Table) {
	t.Helper()
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "frob", "ns::frob", cxxast.Position{File: "a.h"})
	fn.SetReturn(cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int"))
	ns := cxxast.NewDecl(cxxast.DeclNamespace, "ns", "ns", cxxast.Position{File: "a.h"}).AddChild(fn)

	rec := cxxast.NewDecl(cxxast.DeclRecord, "Widget", "ns::Widget", cxxast.Position{File: "a.h"})
	rec.SetCXXRecord(true)
	ns.AddChild(rec)

	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(ns)

	types := typetable.NewTable()
	decls := decltable.NewTable(types, &diag.Bag{})
	decls.Walk(tu, []string{"a.h"})
	return decls, types
}

func TestApplyResolvesNestedQualifiedName(t *testing.T) {
	decls, types := buildWalkedTable(t)
	diags := &diag.Bag{}
	a := &Applier{Decls: decls, Types: types, Diags: diags}

	f, err := Load("x.json", []byte(`{"binding_attributes": {"ns::frob": {"bound": false, "visibility": "Private"}}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a.Apply([]*File{f})

	ns := decls.FreeDeclarations()[0]
	fn := ns.Named("frob")[0]
	if fn.Bound {
		t.Fatalf("Bound = true, want false after bound:false attribute")
	}
	if fn.Visibility != decltable.VisibilityPrivate {
		t.Fatalf("Visibility = %v, want Private", fn.Visibility)
	}
}

func TestApplyUnresolvedNameWarns(t *testing.T) {
	decls, types := buildWalkedTable(t)
	diags := &diag.Bag{}
	a := &Applier{Decls: decls, Types: types, Diags: diags}

	f, _ := Load("x.json", []byte(`{"binding_attributes": {"ns::DoesNotExist": {"bound": false}}}`))
	a.Apply([]*File{f})

	if len(diags.Items()) != 1 {
		t.Fatalf("Items = %d, want 1 warning for an unresolved name", len(diags.Items()))
	}
	if len(a.Unresolved) != 1 || a.Unresolved[0] != "ns::DoesNotExist" {
		t.Fatalf("Unresolved = %v, want [\"ns::DoesNotExist\"]", a.Unresolved)
	}
}

func TestApplyReferencingUnwrappableDeclWarnsButResolves(t *testing.T) {
	decls, types := buildWalkedTable(t)
	ns := decls.FreeDeclarations()[0]
	fn := ns.Named("frob")[0]
	fn.Kind = decltable.Unwrappable
	fn.Wrappable = false

	diags := &diag.Bag{}
	a := &Applier{Decls: decls, Types: types, Diags: diags}

	f, _ := Load("x.json", []byte(`{"binding_attributes": {"ns::frob": {"target_module": "ns.frob"}}}`))
	a.Apply([]*File{f})

	if len(diags.Items()) != 1 {
		t.Fatalf("Items = %d, want 1 warning for referencing an unwrappable declaration", len(diags.Items()))
	}
	if len(a.Unresolved) != 0 {
		t.Fatalf("Unresolved = %v, want none: the name DID resolve, it just points at an unwrappable declaration", a.Unresolved)
	}
	if fn.TargetModule != "ns.frob" {
		t.Fatalf("TargetModule = %q, attributes should still be recorded", fn.TargetModule)
	}
}

func TestApplyLaterFileOverwritesEarlier(t *testing.T) {
	decls, types := buildWalkedTable(t)
	a := &Applier{Decls: decls, Types: types, Diags: &diag.Bag{}}

	f1, _ := Load("1.json", []byte(`{"binding_attributes": {"ns::frob": {"target_module": "a"}}}`))
	f2, _ := Load("2.json", []byte(`{"binding_attributes": {"ns::frob": {"target_module": "b"}}}`))
	a.Apply([]*File{f1, f2})

	fn := decls.FreeDeclarations()[0].Named("frob")[0]
	if fn.TargetModule != "b" {
		t.Fatalf("TargetModule = %q, want the later file's value \"b\"", fn.TargetModule)
	}
}

func TestApplyRecordAttributesAlsoUpdateItsType(t *testing.T) {
	decls, types := buildWalkedTable(t)
	a := &Applier{Decls: decls, Types: types, Diags: &diag.Bag{}}

	// Intern the record's type the way the translator eventually would,
	// so ByName("ns::Widget") has something to find.
	ns := decls.FreeDeclarations()[0]
	widget := ns.Named("Widget")[0]
	recType := cxxast.NewRecordType("ns::Widget", cxxast.TypeRecord, widget.Source)
	types.Get(recType)

	f, _ := Load("x.json", []byte(`{"binding_attributes": {"ns::Widget": {"target_module": "ns.widget"}}}`))
	a.Apply([]*File{f})

	if widget.TargetModule != "ns.widget" {
		t.Fatalf("decl TargetModule = %q, want ns.widget", widget.TargetModule)
	}
	matches := types.ByName("ns::Widget")
	if len(matches) != 1 || matches[0].ModuleHint != "ns.widget" {
		t.Fatalf("type ModuleHint not updated: %+v", matches)
	}
}
