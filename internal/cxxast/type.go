package cxxast

// TypeKind enumerates the C++ type shapes the interner classifies (§4.2).
type TypeKind int

const (
	TypeBuiltin TypeKind = iota
	TypePointer
	TypeLValueReference
	TypeRValueReference // always interned as Invalid
	TypeRecord
	TypeInjectedClassName // the implicit `X` inside `template<typename T> class X`
	TypeTemplateTypeParmUse // a use of a template type parameter `T` within the template
	TypeUnion
	TypeConstantArray
	TypeIncompleteArray
	TypeDependentSizedArray // always interned as Invalid
	TypeFunction
	TypeTypedef
	TypeEnum
	TypeVector
	TypeDependentName // -> Delayed
	TypeTemplateSpecialization
	TypeDependentTemplateSpecialization // always Invalid
	TypeMemberPointer                   // always Invalid
	TypePackExpansion                   // always Invalid
	TypeUnaryTransform                  // always Invalid
	TypeLocalQualified                  // local const/restrict/other qualifier wrapper

	// Sugar kinds: resolve to their desugared form (§4.2).
	TypeElaborated
	TypeDecayed
	TypeParen
	TypeDecltype
	TypeAuto
	TypeOfExpr
	TypeSubstTemplateTypeParm
)

func (k TypeKind) isSugar() bool {
	return k >= TypeElaborated
}

// BuiltinKind enumerates the fixed table of C++ builtin kinds (§4.2).
type BuiltinKind int

const (
	BuiltinVoid BuiltinKind = iota
	BuiltinBool
	BuiltinChar
	BuiltinSChar
	BuiltinUChar
	BuiltinShort
	BuiltinUShort
	BuiltinInt
	BuiltinUInt
	BuiltinLong
	BuiltinULong
	BuiltinLongLong
	BuiltinULongLong
	BuiltinFloat
	BuiltinDouble
	BuiltinLongDouble
)

// Type is the common interface every C++ type node satisfies.
type Type interface {
	Kind() TypeKind
	// CanonicalKey is a key stable for structurally-equal canonical
	// types; the interner's table is keyed on it.
	CanonicalKey() string
	String() string
}

// Qualifiers describes the local qualifiers on a TypeLocalQualified.
type Qualifiers struct {
	Const    bool
	Restrict bool
	Other    bool // e.g. volatile: unsupported, produces Invalid
}

type BuiltinType interface {
	Type
	BuiltinKind() BuiltinKind
}

type PointerType interface {
	Type
	Pointee() Type
}

type ReferenceType interface {
	Type
	Referent() Type
}

type QualifiedType interface {
	Type
	Qualifiers() Qualifiers
	Unqualified() Type
}

type RecordTypeRef interface {
	Type
	Decl() Decl
}

type TypedefTypeRef interface {
	Type
	Decl() Decl
}

type EnumTypeRef interface {
	Type
	Decl() Decl
}

type ArrayType interface {
	Type
	Element() Type
}

type ConstantArrayType interface {
	ArrayType
	Size() int64
}

type FunctionTypeRef interface {
	Type
	Return() Type
	Params() []Type
}

type VectorType interface {
	Type
	Element() Type
	NumElements() int
}

type SugarType interface {
	Type
	Desugar() Type
}

type DependentNameType interface {
	Type
	Qualifier() Type
	Identifier() string
}

type TemplateSpecializationType interface {
	Type
	// TemplateQualifiedName is the qualified name of the referenced
	// template, e.g. "ns::X", used to additionally index the type by
	// template name (§4.2).
	TemplateQualifiedName() string
	Args() []Type
}

// TemplateArgType is the wrapped form of a template type parameter used
// as a type within the templated record (the bare `T`).
type TemplateArgType interface {
	Type
	Decl() Decl // the DeclTemplateTypeParam
}
