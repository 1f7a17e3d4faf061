package cxxast

import "fmt"

// T is a flexible Type node for fixtures, mirroring D above: one struct
// implementing every narrow Type interface, with accessors meaningful
// only for the Kind actually set.
type T struct {
	kind TypeKind
	key  string
	str  string

	builtinKind BuiltinKind
	pointee     Type
	referent    Type
	qualifiers  Qualifiers
	unqualified Type
	declRef     Decl
	element     Type
	size        int64
	numElements int
	retType     Type
	paramTypes  []Type
	desugar     Type
	qualifier   Type
	identifier  string
	templateQN  string
	args        []Type
}

func (t *T) Kind() TypeKind       { return t.kind }
func (t *T) CanonicalKey() string { return t.key }
func (t *T) String() string {
	if t.str != "" {
		return t.str
	}
	return fmt.Sprintf("<type:%d>", t.kind)
}

func (t *T) BuiltinKind() BuiltinKind { return t.builtinKind }
func (t *T) Pointee() Type           { return t.pointee }
func (t *T) Referent() Type          { return t.referent }
func (t *T) Qualifiers() Qualifiers  { return t.qualifiers }
func (t *T) Unqualified() Type       { return t.unqualified }
func (t *T) Decl() Decl              { return t.declRef }
func (t *T) Element() Type           { return t.element }
func (t *T) Size() int64             { return t.size }
func (t *T) NumElements() int        { return t.numElements }
func (t *T) Return() Type            { return t.retType }
func (t *T) Params() []Type          { return t.paramTypes }
func (t *T) Desugar() Type           { return t.desugar }
func (t *T) Qualifier() Type         { return t.qualifier }
func (t *T) Identifier() string      { return t.identifier }
func (t *T) TemplateQualifiedName() string { return t.templateQN }
func (t *T) Args() []Type            { return t.args }

// NewBuiltin builds a builtin type. key should be globally unique per
// BuiltinKind (the interner uses it to memoize).
func NewBuiltin(kind BuiltinKind, key, str string) *T {
	return &T{kind: TypeBuiltin, key: key, str: str, builtinKind: kind}
}

func NewPointer(key string, pointee Type) *T {
	return &T{kind: TypePointer, key: key, pointee: pointee, str: pointee.String() + "*"}
}

func NewLValueReference(key string, referent Type) *T {
	return &T{kind: TypeLValueReference, key: key, referent: referent, str: referent.String() + "&"}
}

func NewRValueReference(key string, referent Type) *T {
	return &T{kind: TypeRValueReference, key: key, referent: referent, str: referent.String() + "&&"}
}

func NewRecordType(key string, kind TypeKind, decl Decl) *T {
	return &T{kind: kind, key: key, declRef: decl, str: decl.Name()}
}

func NewTypedefType(key string, decl Decl) *T {
	return &T{kind: TypeTypedef, key: key, declRef: decl, str: decl.Name()}
}

func NewEnumType(key string, decl Decl) *T {
	return &T{kind: TypeEnum, key: key, declRef: decl, str: decl.Name()}
}

func NewConstantArray(key string, elem Type, size int64) *T {
	return &T{kind: TypeConstantArray, key: key, element: elem, size: size, str: fmt.Sprintf("%s[%d]", elem.String(), size)}
}

func NewIncompleteArray(key string, elem Type) *T {
	return &T{kind: TypeIncompleteArray, key: key, element: elem, str: elem.String() + "[]"}
}

func NewDependentSizedArray(key string, elem Type) *T {
	return &T{kind: TypeDependentSizedArray, key: key, element: elem}
}

func NewFunctionType(key string, ret Type, params []Type) *T {
	return &T{kind: TypeFunction, key: key, retType: ret, paramTypes: params}
}

func NewVector(key string, elem Type, n int) *T {
	return &T{kind: TypeVector, key: key, element: elem, numElements: n, str: fmt.Sprintf("%s[%d] vector", elem.String(), n)}
}

// NewQualified wraps unqualified with local qualifiers. Callers should
// only set Const/Restrict; Other signals an unsupported qualifier.
func NewQualified(key string, unqualified Type, q Qualifiers) *T {
	return &T{kind: TypeLocalQualified, key: key, unqualified: unqualified, qualifiers: q, str: "const " + unqualified.String()}
}

// NewSugar wraps desugar under one of the sugar kinds (§4.2); the
// interner resolves it to desugar and interns under both keys.
func NewSugar(key string, kind TypeKind, desugar Type) *T {
	return &T{kind: kind, key: key, desugar: desugar, str: desugar.String()}
}

func NewDependentName(key string, qualifier Type, identifier string) *T {
	return &T{kind: TypeDependentName, key: key, qualifier: qualifier, identifier: identifier, str: qualifier.String() + "::" + identifier}
}

func NewTemplateSpecialization(key, templateQualifiedName string, args []Type) *T {
	s := templateQualifiedName + "<"
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	s += ">"
	return &T{kind: TypeTemplateSpecialization, key: key, templateQN: templateQualifiedName, args: args, str: s}
}

func NewDependentTemplateSpecialization(key string) *T {
	return &T{kind: TypeDependentTemplateSpecialization, key: key}
}

func NewMemberPointer(key string) *T { return &T{kind: TypeMemberPointer, key: key} }
func NewPackExpansion(key string) *T { return &T{kind: TypePackExpansion, key: key} }
func NewUnaryTransform(key string) *T { return &T{kind: TypeUnaryTransform, key: key} }

func NewTemplateArgType(key string, decl Decl) *T {
	return &T{kind: TypeTemplateTypeParmUse, key: key, declRef: decl, str: decl.Name()}
}
