// Package depresolve implements the dependent-name resolver (§4.5): given
// a declaration context (the qualifier of a dependent name, or the
// concrete record a Delayed type should have resolved to once template
// arguments are known), find a named member by walking that context and,
// transitively, its base classes depth-first, left to right.
//
// Resolution walks "look at this class, then its parent" the way a
// class/inheritance member lookup does, generalized from single
// inheritance to an ordered base-class list and bounded against cycles
// the way a declaration table can't actually have (defensive only).
package depresolve

import (
	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

var emptyPos cxxast.Position

// Resolver resolves dependent names against an already-walked declaration
// table. It is read-only with respect to decltable/typetable, consistent
// with §5's "translator [and its helpers are] read-only with respect to
// these tables".
type Resolver struct {
	Diags *diag.Bag
}

// Resolve searches for name within scope's declaration context (and its
// bases). When scope is a RecordTemplate, it first attempts a full
// specialization matching args (when given), falling back to the generic
// templated record (§4.5's "first attempts to find a matching full
// specialization; if none is found, falls back to the generic templated
// declaration"). Returns nil and records a warning if nothing matches —
// resolution failure is a diagnostic, never an exception (§4.5, §7).
func (r *Resolver) Resolve(scope *decltable.WrappedDecl, args []*typetable.WrappedType, name string) *decltable.WrappedDecl {
	if scope == nil {
		r.warn(name, "nil declaration context")
		return nil
	}

	target := scope
	if scope.Kind == decltable.RecordTemplate {
		target = PickSpecialization(scope, args)
	}

	found := r.search(target, name, map[*decltable.WrappedDecl]bool{})
	if found == nil {
		r.warn(name, "not found in "+scope.QualifiedName()+" or its bases")
	}
	return found
}

// PickSpecialization returns the explicit specialization of ct whose
// TemplateArgs structurally match args, or ct.TemplatedRecord if none
// matches (including when args is empty/unknown) — §4.5's "first
// attempts to find a matching full specialization; if none is found,
// falls back to the generic templated declaration". Exported so the
// translator can reuse the same selection when translating a
// TemplateSpecialization wrapped type, not only when resolving a
// dependent name through one.
func PickSpecialization(ct *decltable.WrappedDecl, args []*typetable.WrappedType) *decltable.WrappedDecl {
	if len(args) > 0 {
		for _, spec := range ct.Specializations {
			if spec.Kind == decltable.SpecializedRecord && argsEqual(spec.TemplateArgs, args) {
				return spec
			}
		}
	}
	return ct.TemplatedRecord
}

func (r *Resolver) search(rec *decltable.WrappedDecl, name string, visited map[*decltable.WrappedDecl]bool) *decltable.WrappedDecl {
	if rec == nil || visited[rec] {
		return nil
	}
	visited[rec] = true

	if matches := rec.Named(name); len(matches) > 0 {
		// "the first match wins" (§4.5's known limitation: visibility
		// rules and overload resolution of dependent members are not
		// honored).
		return matches[0]
	}
	for _, base := range rec.Bases {
		if found := r.search(base, name, visited); found != nil {
			return found
		}
	}
	return nil
}

func (r *Resolver) warn(name, detail string) {
	if r.Diags == nil {
		return
	}
	r.Diags.Warn(emptyPos, "dependent name %q could not be resolved: %s", name, detail)
}

func argsEqual(a, b []*typetable.WrappedType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == nil || b[i] == nil {
			return a[i] == b[i]
		}
		if a[i].Source == nil || b[i].Source == nil {
			return a[i] == b[i]
		}
		if a[i].Source.CanonicalKey() != b[i].Source.CanonicalKey() {
			return false
		}
	}
	return true
}
