package translate

import (
	"fmt"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/depresolve"
	"github.com/binderd/cppbind/internal/dlang"
	"github.com/binderd/cppbind/internal/typetable"
)

// TranslateType dispatches a wrapped type to its target-language form
// (§4.6's "Type translation"). Results are memoized by wrapped-source
// pointer (§4.6's memoization rule). For Pointer/Reference, when the
// pointee/referent has reference semantics (Interface/Class/OpaqueClass,
// or a Replace explicitly marked reference-like), the wrapper is elided
// entirely rather than producing a pointer/ref of a pointer/ref.
func (t *Translator) TranslateType(w *typetable.WrappedType) (dlang.Type, error) {
	if w == nil {
		return &dlang.Named{TypeName: "void"}, nil
	}
	if cached, ok := t.typeCache[w]; ok {
		return cached, nil
	}

	out, err := t.translateTypeUncached(w)
	if err != nil {
		return nil, err
	}
	t.typeCache[w] = out
	return out, nil
}

func (t *Translator) translateTypeUncached(w *typetable.WrappedType) (dlang.Type, error) {
	switch w.Kind {
	case typetable.Builtin:
		return &dlang.Named{TypeName: w.Strategy.ReplaceName, Module: w.ModuleHint}, nil

	case typetable.Pointer:
		return t.translatePointerLike(w.Pointee, true)

	case typetable.Reference:
		return t.translatePointerLike(w.Referent, false)

	case typetable.ConstantArray:
		elem, err := t.TranslateType(w.Element)
		if err != nil {
			return nil, err
		}
		return &dlang.StaticArray{Elem: elem, Size: w.ArraySize}, nil

	case typetable.VariableArray, typetable.DependentLengthArray:
		elem, err := t.TranslateType(w.Element)
		if err != nil {
			return nil, err
		}
		return &dlang.DynamicArray{Elem: elem}, nil

	case typetable.Vector:
		// No SIMD-vector node in the target AST; a vector surfaces as a
		// dynamic array of its element type.
		elem, err := t.TranslateType(w.Element)
		if err != nil {
			return nil, err
		}
		return &dlang.DynamicArray{Elem: elem}, nil

	case typetable.Qualified:
		// "Qualified-const types translate identically to their
		// unqualified form" (§8's round-trip property).
		return t.TranslateType(w.Unqualified)

	case typetable.Function:
		ret, err := t.TranslateType(w.FuncReturn)
		if err != nil {
			return nil, err
		}
		params := make([]dlang.Type, 0, len(w.FuncParams))
		for _, p := range w.FuncParams {
			pt, err := t.TranslateType(p)
			if err != nil {
				return nil, err
			}
			params = append(params, pt)
		}
		return &dlang.FuncType{Return: ret, Params: params}, nil

	case typetable.NonTemplateRecord, typetable.TemplateRecord:
		return t.translateRecordTypeRef(w)

	case typetable.Union:
		return t.translateAggregateRef(w, "union")

	case typetable.Typedef:
		return t.translateAggregateRef(w, "typedef")

	case typetable.Enum:
		return t.translateAggregateRef(w, "enum")

	case typetable.TemplateSpecialization:
		return t.translateTemplateSpecialization(w)

	case typetable.TemplateArgument:
		// The bare `T` inside a templated record body: §1's Non-goals
		// exclude template instantiation, so this surfaces as a named
		// placeholder rather than a concrete type.
		return &dlang.Named{TypeName: w.DeclName}, nil

	case typetable.Delayed:
		return t.translateDelayed(w)

	default: // Invalid, and any kind the resolver deliberately left Unknown.
		t.Diags.Warn(cxxast.Position{}, "cannot translate unrepresentable type %s", describeType(w))
		return &dlang.Named{TypeName: "void*"}, nil
	}
}

func (t *Translator) translatePointerLike(pointee *typetable.WrappedType, isPointer bool) (dlang.Type, error) {
	elem, err := t.TranslateType(pointee)
	if err != nil {
		return nil, err
	}
	if pointee != nil && pointee.Strategy.IsReferenceSemantics() {
		return elem, nil
	}
	if isPointer {
		return &dlang.PointerTo{Elem: elem}, nil
	}
	return &dlang.RefParam{Elem: elem}, nil
}

// translateRecordTypeRef implements §4.4's Replace/Struct/Interface
// dispatch for a record-kind wrapped type, placing the referenced
// declaration (ensurePlaced) as a side effect so it is emitted wherever
// it is first reachable from.
func (t *Translator) translateRecordTypeRef(w *typetable.WrappedType) (dlang.Type, error) {
	decl, ok := t.Decls.Lookup(w.DeclCanonical)
	if !ok {
		t.Diags.Warn(cxxast.Position{}, "record type %q has no corresponding declaration", w.DeclName)
		return &dlang.Named{TypeName: "void*"}, nil
	}
	if w.Strategy.Mode == typetable.StrategyReplace && w.Strategy.ReplaceName != "" {
		return &dlang.Named{TypeName: w.Strategy.ReplaceName, Module: w.Strategy.ReplaceModule}, nil
	}
	ref := refForRecord(decl, w.Strategy.Mode)
	if err := t.ensurePlaced(decl); err != nil {
		return nil, err
	}
	return ref, nil
}

// translateAggregateRef handles Union/Typedef/Enum wrapped types, which
// the resolver always leaves at Replace with an empty replacement name
// (§4.4: "translate structurally, not by name") unless configuration
// overrides with an explicit replacement.
func (t *Translator) translateAggregateRef(w *typetable.WrappedType, kind string) (dlang.Type, error) {
	decl, ok := t.Decls.Lookup(w.DeclCanonical)
	if !ok {
		t.Diags.Warn(cxxast.Position{}, "%s %q has no corresponding declaration", kind, w.DeclName)
		return &dlang.Named{TypeName: "void*"}, nil
	}
	if w.Strategy.Mode == typetable.StrategyReplace && w.Strategy.ReplaceName != "" {
		return &dlang.Named{TypeName: w.Strategy.ReplaceName, Module: w.Strategy.ReplaceModule}, nil
	}
	name := decl.EmittedName()
	var ref dlang.Type
	switch kind {
	case "union":
		ref = &dlang.UnionRef{TypeName: name}
	case "enum":
		ref = &dlang.EnumRef{TypeName: name}
	default:
		ref = &dlang.AliasRef{TypeName: name}
	}
	if err := t.ensurePlaced(decl); err != nil {
		return nil, err
	}
	return ref, nil
}

// translateTemplateSpecialization resolves a TemplateSpecialization
// wrapped type (e.g. `X<int>` used as a field's type) to its explicit
// specialization, per §4.5's selection rule reused via
// depresolve.PickSpecialization. Falling back to the generic templated
// record is the Non-goal case (§1: "instantiating templates that the
// source does not instantiate") and is reported, not silently accepted.
func (t *Translator) translateTemplateSpecialization(w *typetable.WrappedType) (dlang.Type, error) {
	ct := t.findDeclByQualifiedName(w.TemplateQualifiedName)
	if ct == nil || ct.Kind != decltable.RecordTemplate {
		t.Diags.Warn(cxxast.Position{}, "template specialization %q: owning template declaration not found", w.TemplateQualifiedName)
		return &dlang.Named{TypeName: "void*"}, nil
	}

	target := depresolve.PickSpecialization(ct, w.TemplateArgs)
	if target == nil || target == ct.TemplatedRecord {
		t.Diags.Warn(cxxast.Position{}, "%q requires instantiating a template the source does not explicitly instantiate", w.TemplateQualifiedName)
		return &dlang.Named{TypeName: "void*"}, nil
	}
	if !target.Bound || !target.Wrappable {
		return &dlang.Named{TypeName: "void*"}, nil
	}

	strat := t.recordStrategy(target)
	ref := refForRecord(target, strat.Mode)
	if err := t.ensurePlaced(target); err != nil {
		return nil, err
	}
	return ref, nil
}

// translateDelayed resolves a Delayed (dependent-name) wrapped type
// using depresolve (§4.5): the qualifier is interned, and if it denotes
// a concrete declaration (or a template specialization, whose owning
// ClassTemplate is located and handed to the resolver so it can apply
// §4.5's specialization-then-generic fallback itself), the identifier is
// searched for within that scope.
func (t *Translator) translateDelayed(w *typetable.WrappedType) (dlang.Type, error) {
	dn, ok := w.Source.(cxxast.DependentNameType)
	if !ok || t.Deps == nil {
		t.Diags.Warn(cxxast.Position{}, "dependent name type cannot be resolved")
		return &dlang.Named{TypeName: "void*"}, nil
	}

	qualW := t.Types.Get(dn.Qualifier())
	var scope *decltable.WrappedDecl
	var args []*typetable.WrappedType
	switch {
	case qualW.Kind == typetable.TemplateSpecialization:
		scope = t.findDeclByQualifiedName(qualW.TemplateQualifiedName)
		args = qualW.TemplateArgs
	case qualW.HasDeclaration:
		scope, _ = t.Decls.Lookup(qualW.DeclCanonical)
	}

	found := t.Deps.Resolve(scope, args, dn.Identifier())
	if found == nil {
		return &dlang.Named{TypeName: "void*"}, nil
	}

	switch found.Kind {
	case decltable.Typedef:
		return t.TranslateType(found.UnderlyingType)
	case decltable.Record, decltable.SpecializedRecord, decltable.Union:
		strat := t.recordStrategy(found)
		ref := refForRecord(found, strat.Mode)
		if err := t.ensurePlaced(found); err != nil {
			return nil, err
		}
		return ref, nil
	case decltable.TemplateTypeArgument:
		return &dlang.Named{TypeName: found.SourceName}, nil
	default:
		return &dlang.Named{TypeName: found.EmittedName()}, nil
	}
}

func describeType(w *typetable.WrappedType) string {
	if w.Source != nil {
		return fmt.Sprintf("%q (kind %s)", w.Source.String(), w.Kind)
	}
	return fmt.Sprintf("<no source> (kind %s)", w.Kind)
}
