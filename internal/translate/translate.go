// Package translate is the Strategy resolver & translator's translation
// half (§4.6): it builds the target-language AST from the configured
// wrapped declarations and types, memoizing every translated node by its
// wrapped-source pointer so repeated references share one target node.
//
// Follows a decide-a-classification-then-emit-accordingly shape,
// dispatched by kind; read-only with respect to decltable/typetable per
// §5, mutating only its own caches and the package tree.
package translate

import (
	"sort"
	"strings"

	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/decltable"
	"github.com/binderd/cppbind/internal/depresolve"
	"github.com/binderd/cppbind/internal/diag"
	"github.com/binderd/cppbind/internal/dlang"
	"github.com/binderd/cppbind/internal/pkgtree"
	"github.com/binderd/cppbind/internal/typetable"
)

// Translator builds dlang declarations/types from an already-walked and
// configured Decls/Types pair, placing every reachable top-level
// declaration into Pkgs (§4.6, §4.7).
type Translator struct {
	Decls *decltable.Table
	Types *typetable.Table
	Deps  *depresolve.Resolver
	Diags *diag.Bag
	Pkgs  *pkgtree.Package

	typeCache map[*typetable.WrappedType]dlang.Type
	placed    map[*decltable.WrappedDecl]bool
}

// New creates a Translator over the given tables. Deps may be nil if the
// input contains no dependent names (Resolve is only consulted for
// Delayed types).
func New(decls *decltable.Table, types *typetable.Table, deps *depresolve.Resolver, diags *diag.Bag, pkgs *pkgtree.Package) *Translator {
	return &Translator{
		Decls:     decls,
		Types:     types,
		Deps:      deps,
		Diags:     diags,
		Pkgs:      pkgs,
		typeCache: make(map[*typetable.WrappedType]dlang.Type),
		placed:    make(map[*decltable.WrappedDecl]bool),
	}
}

// Run translates every free declaration whose ShouldEmit flag survived
// the walker's file-restriction pass (§4.1, §8's emitted-set invariant),
// in stable translation-unit order (§5's ordering rule), placing results
// into t.Pkgs.
func (t *Translator) Run() error {
	free := append([]*decltable.WrappedDecl(nil), t.Decls.FreeDeclarations()...)
	sort.Slice(free, func(i, j int) bool { return free[i].Source.Order() < free[j].Source.Order() })

	for _, wd := range free {
		if !wd.ShouldEmit {
			continue
		}
		if err := t.emitFree(wd); err != nil {
			return err
		}
	}
	return nil
}

// emitFree handles the kinds whose top-level emission is not a single
// 1:1 node: a Namespace recurses into its children (§13's open-question
// decision: the namespace itself is a free declaration, its children are
// not, but they still emit when the namespace does); a LinkageSpec block
// has no D representation of its own either — it is a linkage tag, not a
// declaration — so it recurses the same way (its children are typically
// already their own free declarations too, per §4.1's top-level
// propagation, but ensurePlaced's placed-set makes reaching them twice
// harmless); a RecordTemplate has no direct D representation (the
// generic, non-instantiated form is out of scope per §1's Non-goals) but
// its explicit specializations do (§8 scenario 6).
func (t *Translator) emitFree(wd *decltable.WrappedDecl) error {
	if !wd.Bound || !wd.Wrappable {
		return nil
	}
	switch wd.Kind {
	case decltable.Namespace, decltable.LinkageSpec:
		for _, c := range wd.Children {
			if err := t.emitFree(c); err != nil {
				return err
			}
		}
		return nil
	case decltable.RecordTemplate:
		for _, s := range wd.Specializations {
			if s.Kind != decltable.SpecializedRecord {
				continue
			}
			if err := t.ensurePlaced(s); err != nil {
				return err
			}
		}
		return nil
	default:
		return t.ensurePlaced(wd)
	}
}

// ensurePlaced translates wd (if not already) and appends its primary
// declaration plus any extra declarations (e.g. a Struct's constructor
// factory functions, §13) to the module moduleFor(wd) resolves to. It is
// idempotent: a declaration reached twice (once as a free declaration,
// once as the target of a type reference) is only placed once.
func (t *Translator) ensurePlaced(wd *decltable.WrappedDecl) error {
	if wd == nil || t.placed[wd] {
		return nil
	}
	if !wd.Bound || !wd.Wrappable {
		return nil
	}
	t.placed[wd] = true

	primary, extras, err := t.buildDecl(wd)
	if err != nil {
		return err
	}
	if primary == nil && len(extras) == 0 {
		return nil
	}
	mod, err := t.Pkgs.GetOrCreateModule(moduleFor(wd))
	if err != nil {
		return err
	}
	if primary != nil {
		mod.Decls = append(mod.Decls, primary)
	}
	mod.Decls = append(mod.Decls, extras...)
	return nil
}

// moduleFor resolves the target module path for wd: its own
// target_module attribute if set, else the nearest ancestor's, else a
// module named after its own qualified name (n::A becomes module "n.A",
// top-level f becomes module "f"), else "root" when that name is empty (§13's
// open-question decision on default module placement — spec.md leaves
// the no-configuration default unstated).
func moduleFor(wd *decltable.WrappedDecl) string {
	for cur := wd; cur != nil; cur = cur.Parent {
		if cur.TargetModule != "" {
			return cur.TargetModule
		}
	}
	qn := wd.QualifiedName()
	if qn == "" {
		return "root"
	}
	return strings.ReplaceAll(qn, "::", ".")
}

// buildDecl dispatches a declaration to its per-kind translation
// (§4.6's "Per-kind translation" table).
func (t *Translator) buildDecl(wd *decltable.WrappedDecl) (dlang.Decl, []dlang.Decl, error) {
	switch wd.Kind {
	case decltable.Function:
		return t.translateFunctionDecl(wd)
	case decltable.Record, decltable.SpecializedRecord:
		return t.translateRecordDecl(wd)
	case decltable.Union:
		d, err := t.translateUnionDecl(wd)
		return d, nil, err
	case decltable.Typedef:
		d, err := t.translateTypedefDecl(wd)
		return d, nil, err
	case decltable.Enum:
		d, err := t.translateEnumDecl(wd)
		return d, nil, err
	case decltable.Variable:
		d, err := t.translateVariableDecl(wd)
		return d, nil, err
	default:
		// Namespace/RecordTemplate handled in emitFree; Method/Constructor/
		// Destructor/Field/Argument/EnumConstant/TemplateTypeArgument/
		// TemplateNonTypeArgument/UsingAliasTemplate/Unwrappable have no
		// standalone top-level emission (§4.6's table).
		return nil, nil, nil
	}
}

func (t *Translator) translateFunctionDecl(wd *decltable.WrappedDecl) (dlang.Decl, []dlang.Decl, error) {
	if wd.SourceName == "" {
		return nil, nil, diag.NewError("function declaration has an empty source name", wd.Loc)
	}
	ret, err := t.TranslateType(wd.ReturnType)
	if err != nil {
		return nil, nil, err
	}
	params, err := t.translateParams(wd.Params)
	if err != nil {
		return nil, nil, err
	}
	f := &dlang.Func{
		DeclName: wd.EmittedName(),
		Kind:     dlang.FuncFree,
		Linkage:  translateLinkage(wd),
		Return:   ret,
		Params:   params,
	}
	return f, nil, nil
}

func (t *Translator) translateVariableDecl(wd *decltable.WrappedDecl) (dlang.Decl, error) {
	typ, err := t.TranslateType(wd.Type)
	if err != nil {
		return nil, err
	}
	return &dlang.Var{DeclName: wd.EmittedName(), VType: typ}, nil
}

func (t *Translator) translateEnumDecl(wd *decltable.WrappedDecl) (dlang.Decl, error) {
	base, err := t.TranslateType(wd.UnderlyingType)
	if err != nil {
		return nil, err
	}
	members := make([]*dlang.EnumMember, 0, len(wd.Constants))
	for _, c := range wd.Constants {
		if !c.Bound || !c.Wrappable {
			continue
		}
		members = append(members, &dlang.EnumMember{DeclName: c.EmittedName(), Value: c.EnumValue})
	}
	return &dlang.Enum{DeclName: wd.EmittedName(), Base: base, Members: members}, nil
}

func (t *Translator) translateTypedefDecl(wd *decltable.WrappedDecl) (dlang.Decl, error) {
	target, err := t.TranslateType(wd.UnderlyingType)
	if err != nil {
		return nil, err
	}
	return &dlang.Alias{DeclName: wd.EmittedName(), Target: target}, nil
}

func (t *Translator) translateUnionDecl(wd *decltable.WrappedDecl) (dlang.Decl, error) {
	fields, err := t.translateFields(wd.Fields)
	if err != nil {
		return nil, err
	}
	return &dlang.Union{DeclName: wd.EmittedName(), Fields: fields}, nil
}

// translateRecordDecl implements §4.6's Record rules plus §13's method/
// constructor/destructor emission-shape decision: a Struct gets its
// non-static methods as functions taking a `ref` receiver as their first
// parameter, an Interface/Class gets them
// bodyless, an OpaqueClass gets neither fields nor methods (its layout
// is deliberately not translated). Constructors become free "_new"
// factory functions (extras), not struct members, so they are returned
// alongside the primary declaration rather than inside it.
func (t *Translator) translateRecordDecl(wd *decltable.WrappedDecl) (dlang.Decl, []dlang.Decl, error) {
	strat := t.recordStrategy(wd)
	name := wd.EmittedName()

	if strat.Mode == typetable.StrategyOpaqueClass {
		t.warnSkippedDtor(wd)
		return &dlang.OpaqueStub{DeclName: name}, nil, nil
	}

	isInterface := strat.Mode == typetable.StrategyInterface || strat.Mode == typetable.StrategyClass
	methods, err := t.translateMethods(wd, isInterface)
	if err != nil {
		return nil, nil, err
	}

	var primary dlang.Decl
	if isInterface {
		primary = &dlang.Interface{DeclName: name, Methods: methods}
	} else {
		fields, err := t.translateFields(wd.Fields)
		if err != nil {
			return nil, nil, err
		}
		primary = &dlang.Struct{DeclName: name, Fields: fields, Methods: methods}
	}

	ctors, err := t.translateConstructors(wd, refForRecord(wd, strat.Mode))
	if err != nil {
		return nil, nil, err
	}
	return primary, ctors, nil
}

func (t *Translator) translateMethods(wd *decltable.WrappedDecl, isInterface bool) ([]*dlang.Func, error) {
	var out []*dlang.Func
	for _, m := range wd.Methods {
		if !m.Bound || !m.Wrappable {
			continue
		}
		ret, err := t.TranslateType(m.ReturnType)
		if err != nil {
			return nil, err
		}
		params, err := t.translateParams(m.Params)
		if err != nil {
			return nil, err
		}
		f := &dlang.Func{
			DeclName:  m.EmittedName(),
			Kind:      dlang.FuncMethod,
			Return:    ret,
			Params:    params,
			IsVirtual: m.IsVirtual,
			IsStatic:  m.IsStatic,
		}
		if !isInterface && !m.IsStatic {
			f.Receiver = &dlang.Param{DeclName: "self", PType: &dlang.RefParam{Elem: &dlang.StructRef{TypeName: wd.EmittedName()}}}
		}
		out = append(out, f)
	}
	return out, nil
}

func (t *Translator) translateConstructors(wd *decltable.WrappedDecl, retType dlang.Type) ([]dlang.Decl, error) {
	var out []dlang.Decl
	for _, c := range wd.Constructors {
		if !c.Bound || !c.Wrappable {
			continue
		}
		params, err := t.translateParams(c.Params)
		if err != nil {
			return nil, err
		}
		out = append(out, &dlang.Func{
			DeclName: wd.EmittedName() + "_new",
			Kind:     dlang.FuncConstructor,
			Return:   retType,
			Params:   params,
		})
	}
	t.warnSkippedDtor(wd)
	return out, nil
}

func (t *Translator) warnSkippedDtor(wd *decltable.WrappedDecl) {
	if wd.Destructor != nil && wd.Destructor.Bound && wd.Destructor.Wrappable {
		t.Diags.Warn(wd.Destructor.Loc, "destructor of %q is not emitted; D has no finalizer equivalent in this translation (§13)", wd.SourceName)
	}
}

func (t *Translator) translateFields(fields []*decltable.WrappedDecl) ([]*dlang.Field, error) {
	out := make([]*dlang.Field, 0, len(fields))
	for _, f := range fields {
		if !f.Bound || !f.Wrappable {
			continue
		}
		typ, err := t.TranslateType(f.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, &dlang.Field{DeclName: f.EmittedName(), FType: typ})
	}
	return out, nil
}

func (t *Translator) translateParams(params []*decltable.WrappedDecl) ([]*dlang.Param, error) {
	out := make([]*dlang.Param, 0, len(params))
	for _, p := range params {
		if !p.Wrappable {
			continue
		}
		typ, err := t.TranslateType(p.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, &dlang.Param{DeclName: p.EmittedName(), PType: typ})
	}
	return out, nil
}

// translateLinkage builds the §6.1/§4.6 linkage tag: `extern (C)` or
// `extern (C++, ns.path)` with ns.path taken from the enclosing
// namespace chain (original_source/'s dlang_output.cpp shows this exact
// surface split — see DESIGN.md).
func translateLinkage(wd *decltable.WrappedDecl) dlang.Linkage {
	if wd.Linkage == cxxast.LinkageC {
		return dlang.Linkage{IsCXX: false}
	}
	return dlang.Linkage{IsCXX: true, NamespacePath: namespacePathOf(wd)}
}

func namespacePathOf(wd *decltable.WrappedDecl) []string {
	var parts []string
	for cur := wd.Parent; cur != nil; cur = cur.Parent {
		if cur.Kind == decltable.Namespace && cur.SourceName != "" {
			parts = append([]string{cur.SourceName}, parts...)
		}
	}
	return parts
}

// recordStrategy decides a record's translation strategy (§4.4's Record
// rule), preferring an explicit configuration override recorded on the
// type-by-name index (a record need not have been referenced as a field/
// parameter type anywhere for the type interner to have created a
// WrappedType for it — §3's "types created lazily on first reference" —
// so a configured override is looked up by the declaration's own
// qualified name rather than assumed to exist).
func (t *Translator) recordStrategy(wd *decltable.WrappedDecl) typetable.Strategy {
	if t.Types != nil {
		for _, wt := range t.Types.ByName(wd.QualifiedName()) {
			if wt.StrategyDecided() && wt.Strategy.Mode != typetable.StrategyUnknown {
				return wt.Strategy
			}
		}
	}
	if !wd.IsCXXRecord {
		return typetable.Strategy{Mode: typetable.StrategyStruct}
	}
	if wd.IsDynamicClass {
		return typetable.Strategy{Mode: typetable.StrategyInterface}
	}
	return typetable.Strategy{Mode: typetable.StrategyStruct}
}

func refForRecord(decl *decltable.WrappedDecl, mode typetable.StrategyMode) dlang.Type {
	name := decl.EmittedName()
	switch mode {
	case typetable.StrategyInterface:
		return &dlang.InterfaceRef{TypeName: name}
	case typetable.StrategyClass:
		return &dlang.ClassRef{TypeName: name}
	case typetable.StrategyOpaqueClass:
		return &dlang.OpaqueRef{TypeName: name}
	default:
		return &dlang.StructRef{TypeName: name}
	}
}

// findDeclByQualifiedName resolves a "::"-separated name against the
// free-declaration set, the same segment-by-segment walk §4.3's
// configuration applier uses, reused here so a TemplateSpecialization
// wrapped type can locate the ClassTemplate it instantiates.
func (t *Translator) findDeclByQualifiedName(name string) *decltable.WrappedDecl {
	if name == "" {
		return nil
	}
	segments := strings.Split(name, "::")
	var current []*decltable.WrappedDecl
	for _, root := range t.Decls.FreeDeclarations() {
		if root.SourceName == segments[0] {
			current = append(current, root)
		}
	}
	for _, seg := range segments[1:] {
		if len(current) == 0 {
			return nil
		}
		var next []*decltable.WrappedDecl
		for _, c := range current {
			next = append(next, c.Named(seg)...)
		}
		current = next
	}
	if len(current) == 0 {
		return nil
	}
	return current[0]
}
