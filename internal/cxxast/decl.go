package cxxast

// DeclKind enumerates the C++ declaration shapes the walker recognizes.
// Kinds below the line are always unwrappable; the walker never needs to
// inspect them beyond noticing the kind.
type DeclKind int

const (
	DeclNamespace DeclKind = iota
	DeclRecord                 // struct/class, non-template
	DeclUnion                  // union, non-template
	DeclFunction
	DeclMethod
	DeclConstructor
	DeclDestructor
	DeclField
	DeclVariable
	DeclArgument
	DeclEnum
	DeclEnumConstant
	DeclTypedef
	DeclClassTemplate        // class/struct template (RecordTemplate/UnionTemplate)
	DeclClassTemplateSpec    // explicit specialization of a class template
	DeclTemplateTypeParam    // `typename T`
	DeclTemplateNonTypeParam // `int N`
	DeclLinkageSpec          // `extern "C" { ... }` / `extern "C++" { ... }` block

	// Always unwrappable (§4.1 "Partial specialization, function template, ...").
	DeclPartialSpecialization
	DeclFunctionTemplate
	DeclTypeAliasTemplate
	DeclUsingDirective
	DeclUsingDeclaration
	DeclAccessSpecifier
	DeclFriend
	DeclStaticAssert
	DeclIndirectField
	DeclUnresolvedUsingValue
	DeclImplicitTypedef // compiler-injected typedef (e.g. __int128)
)

func (k DeclKind) alwaysUnwrappable() bool {
	return k >= DeclPartialSpecialization
}

// Linkage is the language linkage of a function.
type Linkage int

const (
	LinkageC Linkage = iota
	LinkageCXX
)

// Decl is the common interface every C++ declaration node satisfies.
type Decl interface {
	Kind() DeclKind
	Name() string
	Pos() Position
	// Canonical returns a key stable across redeclarations of the same
	// entity; DeclTable keys on this rather than node identity.
	Canonical() string
	// Parent is the lexical/declaration context: the enclosing namespace
	// or record, or nil at translation-unit scope.
	Parent() Decl
	// Order gives a stable, monotonically increasing position across the
	// whole run, used to sort emission output (§5 "stable across runs").
	Order() int
	IsDefinition() bool
}

// TranslationUnit is the root of the walk.
type TranslationUnit interface {
	Decl
	LexicalChildren() []Decl
}

// Namespace is a (possibly reopened) namespace. LexicalChildren already
// merges the children of every redeclaration the adapter knows about, so
// the walker need not iterate redeclarations itself.
type Namespace interface {
	Decl
	LexicalChildren() []Decl
}

// LinkageSpec is an `extern "C" { ... }` / `extern "C++" { ... }` block.
// It is transparent to top-level tracking: §4.1's "Top-level tracking"
// keeps top_level true while iterating either the translation unit or
// the contents of a top-level extern-linkage block, unlike a Namespace's
// children, which are never top-level.
type LinkageSpec interface {
	Decl
	Language() Linkage
	LexicalChildren() []Decl
}

// Record is a struct/class/union declaration (template or not; the
// walker distinguishes via Kind()).
type Record interface {
	Decl
	IsCXXRecord() bool // false for a plain C struct/union
	IsUnion() bool
	IsDynamicClass() bool // has a virtual function or virtual base
	HasTemplatedParent() bool
	Fields() []Decl
	Methods() []Decl
	Constructors() []Decl
	Destructor() Decl // nil if none
	NestedDecls() []Decl
	Bases() []Decl // base class Record decls, source order
}

// ClassTemplate is a template class/struct/union declaration.
type ClassTemplate interface {
	Decl
	IsUnionTemplate() bool
	TemplateParams() []Decl // DeclTemplateTypeParam / DeclTemplateNonTypeParam
	TemplatedRecord() Decl
	// Specializations returns the explicit (non-partial) specialization
	// range, source order.
	Specializations() []Decl
}

// ClassTemplateSpecialization is an explicit specialization of a class
// template (becomes a SpecializedRecord wrapped declaration).
type ClassTemplateSpecialization interface {
	Record
	Template() Decl // owning ClassTemplate
	TemplateArgs() []Type
}

// TemplateParam is a single template parameter.
type TemplateParam interface {
	Decl
	IsPack() bool
	IsType() bool // false for a non-type (value) parameter
	Index() int   // position within the owning parameter list
	// NonTypeType is the declared type of a non-type parameter; nil for
	// type parameters.
	NonTypeType() Type
}

// Function is a free function or a method/constructor/destructor.
type Function interface {
	Decl
	ReturnType() Type
	Params() []Decl // DeclArgument
	Linkage() Linkage
	IsOverloadedOperator() bool
	IsDeleted() bool
}

// Method is a member function.
type Method interface {
	Function
	OwningRecord() Decl
	IsVirtual() bool
	IsStatic() bool
	IsConst() bool
}

// Enum is an enum declaration.
type Enum interface {
	Decl
	UnderlyingType() Type
	Constants() []Decl // DeclEnumConstant, source order
}

// EnumConstant is a single enumerator.
type EnumConstant interface {
	Decl
	Value() int64
}

// Typed is satisfied by Variable/Field/Argument declarations.
type Typed interface {
	Decl
	Type() Type
}

// Typedef is a typedef or type-alias declaration.
type Typedef interface {
	Decl
	UnderlyingType() Type
}
