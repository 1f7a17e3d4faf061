package cxxast

// This file provides an in-memory implementation of the adapter contract
// above, used by the pipeline's own tests. It stands in for whatever real
// parser (libclang or otherwise)
// a deployment wires up; nothing elsewhere in the pipeline imports it
// outside of tests.

var orderCounter int

func nextOrder() int {
	orderCounter++
	return orderCounter
}

// ResetOrder resets the monotonic ordering counter. Tests call this so
// successive fixtures don't accumulate state across test cases.
func ResetOrder() { orderCounter = 0 }

// D is a single, flexible declaration node used to build test fixtures.
// Its accessor methods implement every narrow Decl interface; callers are
// expected to only use the accessors relevant to the Kind they set.
type D struct {
	kind      DeclKind
	name      string
	pos       Position
	canonical string
	parent    *D
	order     int
	isDef     bool

	children []*D // namespace/TU lexical children, record nested decls
	fields   []*D
	methods  []*D
	ctors    []*D
	dtor     *D
	bases    []*D

	isCXXRecord     bool
	isUnion         bool
	isDynamic       bool
	templatedParent bool

	retType          Type
	params           []*D
	linkage          Linkage
	isOverloadedOp   bool
	isDeleted        bool
	owningRecord     *D
	isVirtual        bool
	isStaticMethod   bool
	isConstMethod    bool
	underlying       Type
	constants        []*D
	value            int64
	typ              Type
	tmplParams       []*D
	templatedRecord  *D
	specializations  []*D
	template         *D
	templateArgs     []Type
	isPack           bool
	isTypeParam      bool
	index            int
	nonTypeParamType Type
	isUnionTemplate  bool
}

// NewDecl creates a declaration node of the given kind at the given
// canonical key. canonical should be unique per distinct C++ entity and
// stable across redeclarations so DeclTable can key on it.
func NewDecl(kind DeclKind, name, canonical string, pos Position) *D {
	return &D{kind: kind, name: name, canonical: canonical, pos: pos, order: nextOrder(), isDef: true}
}

func (d *D) Kind() DeclKind      { return d.kind }
func (d *D) Name() string        { return d.name }
func (d *D) Pos() Position       { return d.pos }
func (d *D) Canonical() string   { return d.canonical }
func (d *D) Order() int          { return d.order }
func (d *D) IsDefinition() bool  { return d.isDef }
func (d *D) Parent() Decl {
	if d.parent == nil {
		return nil
	}
	return d.parent
}

func (d *D) WithParent(p *D) *D { d.parent = p; return d }
func (d *D) MarkDeclOnly() *D   { d.isDef = false; return d }

// LexicalChildren satisfies TranslationUnit/Namespace.
func (d *D) LexicalChildren() []Decl { return toDecls(d.children) }

func (d *D) AddChild(c *D) *D { c.parent = d; d.children = append(d.children, c); return d }

// Record accessors.
func (d *D) IsCXXRecord() bool       { return d.isCXXRecord }
func (d *D) IsUnion() bool           { return d.isUnion }
func (d *D) IsDynamicClass() bool    { return d.isDynamic }
func (d *D) HasTemplatedParent() bool { return d.templatedParent }
func (d *D) Fields() []Decl          { return toDecls(d.fields) }
func (d *D) Methods() []Decl         { return toDecls(d.methods) }
func (d *D) Constructors() []Decl    { return toDecls(d.ctors) }
func (d *D) Destructor() Decl {
	if d.dtor == nil {
		return nil
	}
	return d.dtor
}
func (d *D) NestedDecls() []Decl { return toDecls(d.children) }
func (d *D) Bases() []Decl       { return toDecls(d.bases) }

func (d *D) AddField(f *D) *D      { f.parent = d; d.fields = append(d.fields, f); return d }
func (d *D) AddMethod(m *D) *D     { m.parent = d; d.methods = append(d.methods, m); return d }
func (d *D) AddCtor(c *D) *D       { c.parent = d; d.ctors = append(d.ctors, c); return d }
func (d *D) SetDtor(dd *D) *D      { dd.parent = d; d.dtor = dd; return d }
func (d *D) AddNested(n *D) *D     { n.parent = d; d.children = append(d.children, n); return d }
func (d *D) AddBase(b *D) *D       { d.bases = append(d.bases, b); return d }
func (d *D) SetDynamic(v bool) *D  { d.isDynamic = v; return d }
func (d *D) SetCXXRecord(v bool) *D { d.isCXXRecord = v; return d }
func (d *D) SetUnion(v bool) *D    { d.isUnion = v; return d }
func (d *D) SetTemplatedParent(v bool) *D { d.templatedParent = v; return d }

// ClassTemplate accessors.
func (d *D) TemplateParams() []Decl    { return toDecls(d.tmplParams) }
func (d *D) TemplatedRecord() Decl     { return d.templatedRecord }
func (d *D) Specializations() []Decl   { return toDecls(d.specializations) }
func (d *D) IsUnionTemplate() bool     { return d.isUnionTemplate }
func (d *D) AddParam(p *D) *D          { p.parent = d; d.tmplParams = append(d.tmplParams, p); return d }
func (d *D) SetTemplatedRecord(r *D) *D { r.parent = d; d.templatedRecord = r; return d }
func (d *D) AddSpecialization(s *D) *D { d.specializations = append(d.specializations, s); return d }

// ClassTemplateSpecialization accessors.
func (d *D) Template() Decl            { return d.template }
func (d *D) TemplateArgs() []Type      { return d.templateArgs }
func (d *D) SetTemplate(t *D) *D       { d.template = t; return d }
func (d *D) SetTemplateArgs(a []Type) *D { d.templateArgs = a; return d }

// TemplateParam accessors.
func (d *D) IsPack() bool       { return d.isPack }
func (d *D) IsType() bool       { return d.isTypeParam }
func (d *D) Index() int         { return d.index }
func (d *D) NonTypeType() Type  { return d.nonTypeParamType }
func (d *D) SetIndex(i int) *D  { d.index = i; return d }
func (d *D) SetPack(v bool) *D  { d.isPack = v; return d }

// Function/Method accessors.
func (d *D) ReturnType() Type          { return d.retType }
func (d *D) Params() []Decl            { return toDecls(d.params) }
func (d *D) Linkage() Linkage          { return d.linkage }
func (d *D) IsOverloadedOperator() bool { return d.isOverloadedOp }
func (d *D) IsDeleted() bool           { return d.isDeleted }
func (d *D) OwningRecord() Decl {
	if d.owningRecord == nil {
		return nil
	}
	return d.owningRecord
}
// Language satisfies LinkageSpec, reusing the same linkage field a
// Function node stores its Linkage() under.
func (d *D) Language() Linkage { return d.linkage }

func (d *D) IsVirtual() bool { return d.isVirtual }
func (d *D) IsStatic() bool  { return d.isStaticMethod }
func (d *D) IsConst() bool   { return d.isConstMethod }

func (d *D) SetReturn(t Type) *D      { d.retType = t; return d }
func (d *D) AddParamArg(p *D) *D      { p.parent = d; d.params = append(d.params, p); return d }
func (d *D) SetLinkage(l Linkage) *D  { d.linkage = l; return d }
func (d *D) SetDeleted(v bool) *D     { d.isDeleted = v; return d }
func (d *D) SetVirtual(v bool) *D     { d.isVirtual = v; return d }
func (d *D) SetStatic(v bool) *D      { d.isStaticMethod = v; return d }
func (d *D) SetConst(v bool) *D       { d.isConstMethod = v; return d }
func (d *D) SetOwner(r *D) *D         { d.owningRecord = r; return d }

// Enum accessors.
func (d *D) UnderlyingType() Type { return d.underlying }
func (d *D) Constants() []Decl    { return toDecls(d.constants) }
func (d *D) SetUnderlying(t Type) *D { d.underlying = t; return d }
func (d *D) AddConstant(c *D) *D   { c.parent = d; d.constants = append(d.constants, c); return d }

// EnumConstant accessors.
func (d *D) Value() int64        { return d.value }
func (d *D) SetValue(v int64) *D { d.value = v; return d }

// Typed (Variable/Field/Argument) accessors.
func (d *D) Type() Type       { return d.typ }
func (d *D) SetType(t Type) *D { d.typ = t; return d }

func toDecls(ds []*D) []Decl {
	out := make([]Decl, len(ds))
	for i, x := range ds {
		out[i] = x
	}
	return out
}
