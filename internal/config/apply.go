package config

import (
	"strings"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/typetable"
)

// Applier applies an ordered list of configuration files against the
// already-walked declaration and type tables (§4.3). Configuration runs
// strictly after the walk and strictly before translation (§5's stage
// ordering).
type Applier struct {
	Decls *decltable.Table
	Types *typetable.Table
	Diags *diag.Bag

	// Unresolved accumulates every binding_attributes name that matched
	// neither a declaration nor a type, separate from Diags so a caller
	// (e.g. `cppbind config validate`) can tell "this name resolved to
	// nothing" apart from other diagnostics Apply or the walk produced
	// (an unwrappable-declaration notice, an unrelated walker warning).
	Unresolved []string
}

// Apply applies files left to right; later values overwrite earlier ones
// for the same name/attribute (§4.3's "Order").
func (a *Applier) Apply(files []*File) {
	for _, f := range files {
		a.applyOne(f)
	}
}

func (a *Applier) applyOne(f *File) {
	for name, attrs := range f.BindingAttributes {
		decls := a.resolve(name)
		if len(decls) > 0 {
			for _, d := range decls {
				if !d.Wrappable {
					// §3: "it may be referenced by configuration (in
					// which case a diagnostic is produced)" — the
					// attributes are still applied (they may, e.g.,
					// rebind a declaration's visibility for diagnostic
					// purposes), but the entry will never be emitted.
					a.Diags.Warn(d.Loc, "%s: %q refers to an unwrappable declaration; its attributes are recorded but it will not be emitted", f.Path, name)
				}
				applyDeclAttrs(d, attrs)
				if types := a.Types.ByName(name); len(types) > 0 {
					for _, t := range types {
						applyTypeAttrs(t, attrs)
					}
				}
			}
			continue
		}
		if types := a.Types.ByName(name); len(types) > 0 {
			for _, t := range types {
				applyTypeAttrs(t, attrs)
			}
			continue
		}
		a.Unresolved = append(a.Unresolved, name)
		a.Diags.Warn(cxxast.Position{}, "%s: %q does not resolve to any declaration or type", f.Path, name)
	}
}

// resolve implements the §4.3 segment-by-segment lookup: the first
// segment is searched among the translation unit's free declarations;
// each subsequent segment is searched among the previous result's
// members.
func (a *Applier) resolve(qualifiedName string) []*decltable.WrappedDecl {
	segments := strings.Split(qualifiedName, "::")
	if len(segments) == 0 {
		return nil
	}

	var current []*decltable.WrappedDecl
	for _, root := range a.Decls.FreeDeclarations() {
		if root.SourceName == segments[0] {
			current = append(current, root)
		}
	}
	if len(current) == 0 {
		return nil
	}

	for _, seg := range segments[1:] {
		var next []*decltable.WrappedDecl
		for _, c := range current {
			next = append(next, c.Named(seg)...)
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}
	return current
}

func applyDeclAttrs(d *decltable.WrappedDecl, a Attributes) {
	if a.Bound != nil {
		d.Bound = *a.Bound
	}
	if a.TargetModule != nil {
		d.TargetModule = *a.TargetModule
	}
	if a.RemovePrefix != nil {
		d.RemovePrefix = *a.RemovePrefix
		if d.Kind == decltable.Enum {
			// Supplemented feature (§12, from original_source/
			// configuration.cpp): remove_prefix on an enum also strips
			// its constants' names, not just the enum type's own name.
			for _, c := range d.Constants {
				c.RemovePrefix = *a.RemovePrefix
			}
		}
	}
	if a.Visibility != nil {
		d.Visibility = parseVisibility(*a.Visibility)
	}
}

func applyTypeAttrs(t *typetable.WrappedType, a Attributes) {
	if a.TargetModule != nil {
		t.ModuleHint = *a.TargetModule
	}
	if a.Strategy != nil {
		if s, ok := toTypeStrategy(*a.Strategy); ok {
			t.SetStrategy(s)
		}
		// Unknown strategy.name values are silently ignored (§4.3).
	}
}

// parseVisibility matches visibility strings the same way the teacher
// matches case-insensitive DWScript identifiers: strings.EqualFold,
// not a Unicode case-folding library — visibility keywords are ASCII.
func parseVisibility(s string) decltable.Visibility {
	switch {
	case strings.EqualFold(s, "private"):
		return decltable.VisibilityPrivate
	case strings.EqualFold(s, "package"):
		return decltable.VisibilityPackage
	case strings.EqualFold(s, "protected"):
		return decltable.VisibilityProtected
	case strings.EqualFold(s, "public"):
		return decltable.VisibilityPublic
	case strings.EqualFold(s, "export"):
		return decltable.VisibilityExport
	default:
		return decltable.VisibilityDefault
	}
}

func toTypeStrategy(s Strategy) (typetable.Strategy, bool) {
	switch strings.ToLower(s.Name) {
	case "replace":
		return typetable.Strategy{Mode: typetable.StrategyReplace, ReplaceName: s.DDecl, ReplaceIsRef: s.IsRef}, true
	case "struct":
		return typetable.Strategy{Mode: typetable.StrategyStruct}, true
	case "interface":
		return typetable.Strategy{Mode: typetable.StrategyInterface}, true
	case "class":
		return typetable.Strategy{Mode: typetable.StrategyClass}, true
	case "opaque_class":
		return typetable.Strategy{Mode: typetable.StrategyOpaqueClass}, true
	default:
		return typetable.Strategy{}, false
	}
}
