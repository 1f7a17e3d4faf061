// Package pipeline wires every stage of the translation run together in
// the strict order §5 mandates: walk, configure, resolve strategies,
// translate. Grounded on the teacher's internal/interp Context/Machine
// wiring (a single struct that owns every subsystem and drives them in a
// fixed sequence from one entry point), generalized here from an
// interpret-then-run loop to a single-pass batch pipeline.
package pipeline

import (
	"fmt"

	"github.com/binderd/cppbind/internal/config"
	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/depresolve"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/pkgtree"
	"github.com/binderd/cppbind/internal/translate"
	"github.com/binderd/cppbind/internal/typetable"
)

// Context owns every stage's state for one translation run (§5's "DeclTable,
// TypeTable, ... are process-global singletons" — here scoped to one run
// rather than the whole process, since a Go package has no natural process-
// global without a test-unfriendly package-level var).
type Context struct {
	Types *typetable.Table
	Decls *decltable.Table
	Diags *diag.Bag
	Deps  *depresolve.Resolver
	Pkgs  *pkgtree.Package
}

// New creates an empty Context ready for Run.
func New() *Context {
	diags := &diag.Bag{}
	types := typetable.NewTable()
	return &Context{
		Types: types,
		Decls: decltable.NewTable(types, diags),
		Diags: diags,
		Deps:  &depresolve.Resolver{Diags: diags},
		Pkgs:  pkgtree.NewRoot(),
	}
}

// Run executes the full pipeline against tu (§5's stage order: walk,
// configure, resolve strategies, translate), restricting emission to
// headerPaths and applying configFiles in order. Returns the populated
// package tree, or a fatal error per §7 (input/internal-invariant errors
// only; everything else is a diagnostic appended to c.Diags).
func (c *Context) Run(tu cxxast.TranslationUnit, headerPaths []string, configFiles []*config.File) (*pkgtree.Package, error) {
	c.Decls.Walk(tu, headerPaths)

	applier := &config.Applier{Decls: c.Decls, Types: c.Types, Diags: c.Diags}
	applier.Apply(configFiles)

	for _, w := range c.Types.All() {
		if err := typetable.Resolve(w); err != nil {
			return nil, fmt.Errorf("strategy resolution: %w", err)
		}
	}

	tr := translate.New(c.Decls, c.Types, c.Deps, c.Diags, c.Pkgs)
	if err := tr.Run(); err != nil {
		return nil, fmt.Errorf("translation: %w", err)
	}

	if c.Diags.HasErrors() {
		return nil, fmt.Errorf("translation aborted with errors:\n%s", c.Diags.FormatAll(false))
	}
	return c.Pkgs, nil
}
