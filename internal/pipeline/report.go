package pipeline

import (
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

// BuildReport tallies every wrapped declaration/type kind and resolved
// strategy mode in c, plus c.Diags's warning/error counts (§10/§11's
// optional `--report PATH` YAML summary). Lives here rather than in
// internal/diag because it needs both decltable and typetable, and diag
// must stay importable by both without a cycle.
func (c *Context) BuildReport() *diag.Report {
	r := &diag.Report{
		Declarations: make(map[string]int),
		Types:        make(map[string]int),
		Strategies:   make(map[string]int),
	}
	for _, wd := range c.Decls.All() {
		r.Declarations[wd.Kind.String()]++
	}
	for _, wt := range c.Types.All() {
		r.Types[wt.Kind.String()]++
		if wt.StrategyDecided() {
			r.Strategies[strategyName(wt.Strategy.Mode)]++
		}
	}
	for _, it := range c.Diags.Items() {
		if it.Severity == diag.SeverityError {
			r.Errors++
		} else {
			r.Warnings++
		}
	}
	return r
}

func strategyName(m typetable.StrategyMode) string {
	switch m {
	case typetable.StrategyReplace:
		return "Replace"
	case typetable.StrategyStruct:
		return "Struct"
	case typetable.StrategyInterface:
		return "Interface"
	case typetable.StrategyClass:
		return "Class"
	case typetable.StrategyOpaqueClass:
		return "OpaqueClass"
	default:
		return "Unknown"
	}
}
