package decltable

import (
	"path/filepath"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

// Table is the DeclTable of §3: canonical C++ declaration key to wrapped
// declaration. It is process-lifetime for the run and not thread-safe
// (§5 is single-threaded throughout).
type Table struct {
	types *typetable.Table
	diags *diag.Bag

	byCanonical map[string]*WrappedDecl
	// freeDeclarations holds top-level declarations (§3's emission-root
	// set), in the order first registered.
	freeDeclarations []*WrappedDecl
}

// NewTable creates an empty declaration table backed by the given type
// interner. Diagnostics produced while walking (Unwrappable markers,
// etc.) are appended to diags.
func NewTable(types *typetable.Table, diags *diag.Bag) *Table {
	return &Table{
		types:       types,
		diags:       diags,
		byCanonical: make(map[string]*WrappedDecl),
	}
}

// Lookup returns the wrapped declaration already registered under key,
// if any.
func (t *Table) Lookup(key string) (*WrappedDecl, bool) {
	w, ok := t.byCanonical[key]
	return w, ok
}

// FreeDeclarations returns the emission-root set (§3's "free
// declarations"), in registration order.
func (t *Table) FreeDeclarations() []*WrappedDecl {
	return t.freeDeclarations
}

// All returns every wrapped declaration in the table, keyed by
// canonical pointer. Callers that need a stable order should sort by
// Loc/Order themselves (e.g. via the Source cxxast.Decl's Order()).
func (t *Table) All() map[string]*WrappedDecl {
	return t.byCanonical
}

// Walk populates the table from tu, then runs the file-restriction pass
// (§4.1): only top-level declarations defined in one of headerPaths have
// ShouldEmit set.
func (t *Table) Walk(tu cxxast.TranslationUnit, headerPaths []string) {
	w := newWalker(t)
	for _, child := range tu.LexicalChildren() {
		w.visit(child, true)
	}
	t.applyFileRestriction(headerPaths)
}

func (t *Table) applyFileRestriction(headerPaths []string) {
	normalized := make([]string, len(headerPaths))
	for i, p := range headerPaths {
		normalized[i] = filepath.Clean(p)
	}
	for _, wd := range t.freeDeclarations {
		file := filepath.Clean(wd.Loc.File)
		for _, h := range normalized {
			if file == h {
				wd.ShouldEmit = true
				break
			}
		}
	}
}

// getOrPlaceholder returns the existing wrapped decl for key, or
// inserts and returns a fresh placeholder so mutually-recursive
// construction terminates (Design Notes' "reentrant get_or_intern").
// The second return value is true when an existing (possibly still
// under-construction) entry was found.
func (t *Table) getOrPlaceholder(key string, kind Kind, src cxxast.Decl) (*WrappedDecl, bool) {
	if w, ok := t.byCanonical[key]; ok {
		return w, true
	}
	w := &WrappedDecl{
		Kind:       kind,
		Source:     src,
		SourceName: src.Name(),
		Loc:        src.Pos(),
		Bound:      true,
		Wrappable:  true,
	}
	t.byCanonical[key] = w
	return w, false
}

func (t *Table) markTopLevel(w *WrappedDecl) {
	t.freeDeclarations = append(t.freeDeclarations, w)
}
