package decltable

import "github.com/binderd/cppbind/internal/cxxast"

// walker traverses the C++ AST once, populating a Table (§4.1).
type walker struct {
	t *Table
}

func newWalker(t *Table) *walker { return &walker{t: t} }

// visit dispatches on d's kind and returns its wrapped declaration,
// inserting it into the table (and, when topLevel, into the
// free-declarations set) exactly once.
func (w *walker) visit(d cxxast.Decl, topLevel bool) *WrappedDecl {
	key := d.Canonical()
	if existing, ok := w.t.byCanonical[key]; ok {
		return existing
	}

	kind := w.initialKind(d.Kind())
	wd, _ := w.t.getOrPlaceholder(key, kind, d)

	if topLevel {
		wd.TopLevel = true
		w.t.markTopLevel(wd)
	}

	switch d.Kind() {
	case cxxast.DeclNamespace:
		w.buildNamespace(wd, d.(cxxast.Namespace))
	case cxxast.DeclLinkageSpec:
		w.buildLinkageSpec(wd, d.(cxxast.LinkageSpec), topLevel)
	case cxxast.DeclRecord, cxxast.DeclUnion:
		w.buildRecord(wd, d.(cxxast.Record), false)
	case cxxast.DeclFunction:
		w.buildFunction(wd, d.(cxxast.Function))
	case cxxast.DeclMethod, cxxast.DeclConstructor, cxxast.DeclDestructor:
		w.buildMethod(wd, d.(cxxast.Method))
	case cxxast.DeclEnum:
		w.buildEnum(wd, d.(cxxast.Enum))
	case cxxast.DeclEnumConstant:
		w.buildEnumConstant(wd, d.(cxxast.EnumConstant))
	case cxxast.DeclField, cxxast.DeclVariable, cxxast.DeclArgument:
		w.buildTyped(wd, d.(cxxast.Typed))
	case cxxast.DeclTypedef:
		w.buildTypedef(wd, d.(cxxast.Typedef))
	case cxxast.DeclClassTemplate:
		w.buildClassTemplate(wd, d.(cxxast.ClassTemplate))
	case cxxast.DeclClassTemplateSpec:
		w.buildSpecialization(wd, d.(cxxast.ClassTemplateSpecialization))
	case cxxast.DeclTemplateTypeParam, cxxast.DeclTemplateNonTypeParam:
		w.buildTemplateParam(wd, d.(cxxast.TemplateParam))
	case cxxast.DeclImplicitTypedef:
		w.markUnwrappable(wd, "implicit compiler-injected typedef")
	default:
		if d.Kind().alwaysUnwrappable() {
			w.markUnwrappable(wd, "unsupported declaration kind")
		}
	}

	return wd
}

// initialKind maps a cxxast.DeclKind to the default WrappedDecl Kind,
// before any policy-driven demotion to Unwrappable.
func (w *walker) initialKind(k cxxast.DeclKind) Kind {
	switch k {
	case cxxast.DeclNamespace:
		return Namespace
	case cxxast.DeclRecord:
		return Record
	case cxxast.DeclUnion:
		return Union
	case cxxast.DeclFunction:
		return Function
	case cxxast.DeclMethod:
		return Method
	case cxxast.DeclConstructor:
		return Constructor
	case cxxast.DeclDestructor:
		return Destructor
	case cxxast.DeclField:
		return Field
	case cxxast.DeclVariable:
		return Variable
	case cxxast.DeclArgument:
		return Argument
	case cxxast.DeclEnum:
		return Enum
	case cxxast.DeclEnumConstant:
		return EnumConstant
	case cxxast.DeclTypedef:
		return Typedef
	case cxxast.DeclClassTemplate:
		return RecordTemplate
	case cxxast.DeclClassTemplateSpec:
		return SpecializedRecord
	case cxxast.DeclTemplateTypeParam:
		return TemplateTypeArgument
	case cxxast.DeclTemplateNonTypeParam:
		return TemplateNonTypeArgument
	case cxxast.DeclLinkageSpec:
		return LinkageSpec
	default:
		return Unwrappable
	}
}

// markUnwrappable demotes wd (already inserted in the table, per §4.1's
// "the offending node is replaced by an Unwrappable wrapper" / "retained
// rather than discarded") without dropping it from the table.
func (w *walker) markUnwrappable(wd *WrappedDecl, reason string) {
	wd.Kind = Unwrappable
	wd.Wrappable = false
	w.t.diags.Warn(wd.Loc, "%s %q is unwrappable: %s", wd.Kind, wd.SourceName, reason)
}

func (w *walker) buildNamespace(wd *WrappedDecl, ns cxxast.Namespace) {
	for _, child := range ns.LexicalChildren() {
		cw := w.visit(child, false)
		cw.Parent = wd
		wd.Children = append(wd.Children, cw)
	}
}

// buildLinkageSpec handles an `extern "C" { ... }` / `extern "C++" { ... }`
// block (§4.1's "Top-level tracking"). Unlike buildNamespace, it
// propagates the caller's topLevel flag unchanged: a linkage-spec block
// is transparent to top-level tracking, so its direct contents are free
// declarations exactly when the block itself is.
func (w *walker) buildLinkageSpec(wd *WrappedDecl, block cxxast.LinkageSpec, topLevel bool) {
	for _, child := range block.LexicalChildren() {
		cw := w.visit(child, topLevel)
		cw.Parent = wd
		wd.Children = append(wd.Children, cw)
	}
}

// buildRecord handles struct/class/union declarations (§4.1's "Record"
// policy). isSpecialization skips the HasTemplatedParent() demotion,
// since explicit specializations are concrete records even though their
// lexical context is a template.
func (w *walker) buildRecord(wd *WrappedDecl, rec cxxast.Record, isSpecialization bool) {
	if !isSpecialization && rec.HasTemplatedParent() {
		w.markUnwrappable(wd, "templated record handled via the class-template path")
		for _, m := range rec.Methods() {
			wd.Methods = append(wd.Methods, w.visitMethod(m, wd))
		}
		for _, c := range rec.Constructors() {
			wd.Constructors = append(wd.Constructors, w.visitMethod(c, wd))
		}
		if d := rec.Destructor(); d != nil {
			wd.Destructor = w.visitMethod(d, wd)
		}
		return
	}

	wd.IsCXXRecord = rec.IsCXXRecord()
	wd.IsDynamicClass = rec.IsDynamicClass()

	for _, b := range rec.Bases() {
		bw := w.visit(b, false)
		wd.Bases = append(wd.Bases, bw)
	}
	for _, nested := range rec.NestedDecls() {
		nw := w.visit(nested, false)
		nw.Parent = wd
		wd.Children = append(wd.Children, nw)
	}
	for _, f := range rec.Fields() {
		fw := w.visit(f, false)
		fw.Parent = wd
		wd.Fields = append(wd.Fields, fw)
	}
	for _, m := range rec.Methods() {
		mw := w.visitMethod(m, wd)
		wd.Methods = append(wd.Methods, mw)
	}
	for _, c := range rec.Constructors() {
		cw := w.visitMethod(c, wd)
		wd.Constructors = append(wd.Constructors, cw)
	}
	if d := rec.Destructor(); d != nil {
		wd.Destructor = w.visitMethod(d, wd)
	}
}

// visitMethod wraps a method/constructor/destructor and demotes it to
// Unwrappable when its enclosing record is (transitively) template-
// parameterized, per §4.1's non-template-walker rule.
func (w *walker) visitMethod(d cxxast.Decl, owner *WrappedDecl) *WrappedDecl {
	mw := w.visit(d, false)
	mw.Parent = owner
	if owner.Kind == Unwrappable {
		w.markUnwrappable(mw, "enclosing record is template-parameterized")
	}
	return mw
}

func (w *walker) buildMethod(wd *WrappedDecl, m cxxast.Method) {
	if m.IsDeleted() {
		w.markUnwrappable(wd, "deleted method")
		return
	}
	w.buildFunctionCommon(wd, m)
	wd.IsVirtual = m.IsVirtual()
	wd.IsStatic = m.IsStatic()
}

func (w *walker) buildFunction(wd *WrappedDecl, f cxxast.Function) {
	if f.IsDeleted() {
		w.markUnwrappable(wd, "deleted function")
		return
	}
	w.buildFunctionCommon(wd, f)
}

func (w *walker) buildFunctionCommon(wd *WrappedDecl, f cxxast.Function) {
	wd.ReturnType = w.t.types.Get(f.ReturnType())
	wd.Linkage = f.Linkage()
	wd.IsOverloadedOperator = f.IsOverloadedOperator()
	for _, p := range f.Params() {
		pw := w.visit(p, false)
		pw.Parent = wd
		wd.Params = append(wd.Params, pw)
	}
}

func (w *walker) buildEnum(wd *WrappedDecl, e cxxast.Enum) {
	wd.UnderlyingType = w.t.types.Get(e.UnderlyingType())
	for _, c := range e.Constants() {
		cw := w.visit(c, false)
		cw.Parent = wd
		wd.Constants = append(wd.Constants, cw)
	}
}

func (w *walker) buildEnumConstant(wd *WrappedDecl, c cxxast.EnumConstant) {
	wd.EnumValue = c.Value()
}

func (w *walker) buildTyped(wd *WrappedDecl, t cxxast.Typed) {
	wd.Type = w.t.types.Get(t.Type())
}

func (w *walker) buildTypedef(wd *WrappedDecl, td cxxast.Typedef) {
	wd.UnderlyingType = w.t.types.Get(td.UnderlyingType())
}

func (w *walker) buildClassTemplate(wd *WrappedDecl, ct cxxast.ClassTemplate) {
	for _, p := range ct.TemplateParams() {
		if tp, ok := p.(cxxast.TemplateParam); ok && tp.IsPack() {
			w.markUnwrappable(wd, "variadic template parameter")
			return
		}
	}
	wd.IsUnionTemplate = ct.IsUnionTemplate()
	for _, p := range ct.TemplateParams() {
		pw := w.visit(p, false)
		pw.Parent = wd
		wd.TemplateParams = append(wd.TemplateParams, pw)
	}
	if tr := ct.TemplatedRecord(); tr != nil {
		trw := w.visit(tr, false)
		trw.Parent = wd
		wd.TemplatedRecord = trw
	}
	for _, s := range ct.Specializations() {
		sw := w.visit(s, false)
		sw.Parent = wd
		if sw.Kind == SpecializedRecord {
			sw.TemplateOf = wd
		}
		wd.Specializations = append(wd.Specializations, sw)
	}
}

func (w *walker) buildSpecialization(wd *WrappedDecl, spec cxxast.ClassTemplateSpecialization) {
	w.buildRecord(wd, spec, true)
	if wd.Kind == Unwrappable {
		return
	}
	for _, a := range spec.TemplateArgs() {
		wd.TemplateArgs = append(wd.TemplateArgs, w.t.types.Get(a))
	}
}

func (w *walker) buildTemplateParam(wd *WrappedDecl, p cxxast.TemplateParam) {
	wd.IsPack = p.IsPack()
	wd.Index = p.Index()
	if !p.IsType() {
		wd.Type = w.t.types.Get(p.NonTypeType())
	}
}
