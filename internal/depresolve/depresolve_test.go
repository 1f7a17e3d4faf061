package depresolve

import (
	"testing"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

func walk(t *testing.T, tu *cxxast.D) (*decltable.Table, *typetable.Table) {
	t.Helper()
	types := typetable.NewTable()
	decls := decltable.NewTable(types, &diag.Bag{})
	decls.Walk(tu, []string{"a.h"})
	return decls, types
}

func TestResolveFindsDirectMember(t *testing.T) {
	cxxast.ResetOrder()
	field := cxxast.NewDecl(cxxast.DeclField, "x", "S::x", cxxast.Position{})
	field.SetType(cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int"))
	rec := cxxast.NewDecl(cxxast.DeclRecord, "S", "S", cxxast.Position{File: "a.h"})
	rec.SetCXXRecord(true).AddField(field)
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(rec)

	decls, _ := walk(t, tu)
	scope := decls.FreeDeclarations()[0]

	r := &Resolver{Diags: &diag.Bag{}}
	found := r.Resolve(scope, nil, "x")
	if found == nil || found.SourceName != "x" {
		t.Fatalf("Resolve(x) = %+v, want field x", found)
	}
}

func TestResolveFallsBackToBaseClass(t *testing.T) {
	cxxast.ResetOrder()
	baseField := cxxast.NewDecl(cxxast.DeclField, "y", "Base::y", cxxast.Position{})
	baseField.SetType(cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int"))
	base := cxxast.NewDecl(cxxast.DeclRecord, "Base", "Base", cxxast.Position{File: "a.h"})
	base.SetCXXRecord(true).AddField(baseField)

	derived := cxxast.NewDecl(cxxast.DeclRecord, "Derived", "Derived", cxxast.Position{File: "a.h"})
	derived.SetCXXRecord(true).AddBase(base)

	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(base).AddChild(derived)

	decls, _ := walk(t, tu)
	var derivedWd *decltable.WrappedDecl
	for _, d := range decls.FreeDeclarations() {
		if d.SourceName == "Derived" {
			derivedWd = d
		}
	}
	if derivedWd == nil {
		t.Fatalf("Derived not found among free declarations")
	}

	r := &Resolver{Diags: &diag.Bag{}}
	found := r.Resolve(derivedWd, nil, "y")
	if found == nil || found.SourceName != "y" {
		t.Fatalf("Resolve(y) = %+v, want base-class field y", found)
	}
}

func TestResolveUnknownNameWarns(t *testing.T) {
	cxxast.ResetOrder()
	rec := cxxast.NewDecl(cxxast.DeclRecord, "S", "S", cxxast.Position{File: "a.h"})
	rec.SetCXXRecord(true)
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(rec)

	decls, _ := walk(t, tu)
	scope := decls.FreeDeclarations()[0]

	diags := &diag.Bag{}
	r := &Resolver{Diags: diags}
	found := r.Resolve(scope, nil, "nope")
	if found != nil {
		t.Fatalf("Resolve(nope) = %+v, want nil", found)
	}
	if len(diags.Items()) != 1 {
		t.Fatalf("Items = %d, want 1 warning", len(diags.Items()))
	}
}

func TestResolvePrefersMatchingSpecialization(t *testing.T) {
	cxxast.ResetOrder()

	tmplField := cxxast.NewDecl(cxxast.DeclField, "generic", "Box<T>::generic", cxxast.Position{})
	tmplRec := cxxast.NewDecl(cxxast.DeclRecord, "Box", "Box<T>", cxxast.Position{File: "a.h"})
	tmplRec.SetCXXRecord(true).SetTemplatedParent(true).AddField(tmplField)

	ct := cxxast.NewDecl(cxxast.DeclClassTemplate, "Box", "Box", cxxast.Position{File: "a.h"})
	ct.SetTemplatedRecord(tmplRec)

	specField := cxxast.NewDecl(cxxast.DeclField, "specific", "Box<int>::specific", cxxast.Position{})
	specField.SetType(cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int"))
	spec := cxxast.NewDecl(cxxast.DeclClassTemplateSpec, "Box<int>", "Box<int>", cxxast.Position{File: "a.h"})
	spec.SetCXXRecord(true).AddField(specField)
	spec.SetTemplate(ct)
	intArg := cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int")
	spec.SetTemplateArgs([]cxxast.Type{intArg})
	ct.AddSpecialization(spec)

	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(ct)
	decls, types := walk(t, tu)
	scope := decls.FreeDeclarations()[0]

	r := &Resolver{Diags: &diag.Bag{}}
	args := []*typetable.WrappedType{types.Get(intArg)}
	found := r.Resolve(scope, args, "specific")
	if found == nil || found.SourceName != "specific" {
		t.Fatalf("Resolve(specific) = %+v, want the specialization's field", found)
	}
}
