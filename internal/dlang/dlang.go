// Package dlang is the target-language AST (§4.6, §4.7): the node set
// the translator builds and the printer serializes. One concrete struct
// per node kind, each satisfying a narrow marker interface, with a
// String() method used for debugging and, here, as the printer's
// rendering primitive.
package dlang

import (
	"fmt"
	"strings"
)

// Decl is any declaration the translator can place into a Module.
type Decl interface {
	Name() string
	declNode()
}

// Type is any target type reference appearing in a field/param/return
// position.
type Type interface {
	String() string
	typeNode()
}

// Named is a Replace-strategy type: a reference to a D type by name,
// optionally import-qualified by Module (§4.6's "Replace looks up (or
// creates) a named type reference").
type Named struct {
	TypeName string
	Module   string
}

func (n *Named) typeNode()      {}
func (n *Named) String() string { return n.TypeName }

// StructRef/InterfaceRef/UnionRef reference a translated struct,
// interface, or union declaration by its emitted name (value semantics
// for StructRef/UnionRef, reference semantics for InterfaceRef — §4.4).
type StructRef struct{ TypeName string }
type InterfaceRef struct{ TypeName string }
type UnionRef struct{ TypeName string }

func (r *StructRef) typeNode()      {}
func (r *StructRef) String() string { return r.TypeName }

func (r *InterfaceRef) typeNode()      {}
func (r *InterfaceRef) String() string { return r.TypeName }

func (r *UnionRef) typeNode()      {}
func (r *UnionRef) String() string { return r.TypeName }

// ClassRef references a translated Class-strategy record by name
// (reference semantics, §4.4). The translator builds the same body shape
// for Class as for Interface (a method-only aggregate); ClassRef exists
// as a distinct wrapper only so the emitted surface spelling and the
// strategy that produced it stay traceable.
type ClassRef struct{ TypeName string }

func (r *ClassRef) typeNode()      {}
func (r *ClassRef) String() string { return r.TypeName }

// OpaqueRef references an OpaqueClass-strategy type: a handle whose
// C++ layout is not translated, only its name (§3's Wrapped-type
// Translation strategy enum includes OpaqueClass).
type OpaqueRef struct{ TypeName string }

func (r *OpaqueRef) typeNode()      {}
func (r *OpaqueRef) String() string { return r.TypeName }

// FuncType is an inline function type (a function pointer's pointee),
// as opposed to Func which is a named declaration.
type FuncType struct {
	Return Type
	Params []Type
}

func (f *FuncType) typeNode() {}
func (f *FuncType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return ret + " function(" + strings.Join(parts, ", ") + ")"
}

// PointerTo is a D pointer type (`Elem*`). Elided entirely by the
// translator when Elem has reference semantics (§4.6).
type PointerTo struct{ Elem Type }

func (p *PointerTo) typeNode()      {}
func (p *PointerTo) String() string { return p.Elem.String() + "*" }

// RefParam marks a parameter type passed by `ref` — used for the
// receiver parameter of a struct-strategy method (§13).
type RefParam struct{ Elem Type }

func (r *RefParam) typeNode()      {}
func (r *RefParam) String() string { return "ref " + r.Elem.String() }

// StaticArray is a fixed-size D array type (`Elem[N]`).
type StaticArray struct {
	Elem Type
	Size int64
}

func (a *StaticArray) typeNode()      {}
func (a *StaticArray) String() string { return fmt.Sprintf("%s[%d]", a.Elem.String(), a.Size) }

// DynamicArray is an unsized D array/slice type (`Elem[]`).
type DynamicArray struct{ Elem Type }

func (a *DynamicArray) typeNode()      {}
func (a *DynamicArray) String() string { return a.Elem.String() + "[]" }

// EnumRef references a translated enum declaration by name.
type EnumRef struct{ TypeName string }

func (e *EnumRef) typeNode()      {}
func (e *EnumRef) String() string { return e.TypeName }

// AliasRef references a translated type-alias declaration by name.
type AliasRef struct{ TypeName string }

func (a *AliasRef) typeNode()      {}
func (a *AliasRef) String() string { return a.TypeName }

// Field is a struct/union member (and, reused, an EnumConstant's or
// Variable's structural shape per §4.6).
type Field struct {
	DeclName string
	FType    Type
}

func (f *Field) Name() string { return f.DeclName }
func (f *Field) declNode()    {}

// Param is a function/method parameter.
type Param struct {
	DeclName string
	PType    Type
}

func (p *Param) Name() string { return p.DeclName }
func (p *Param) declNode()    {}

// Struct is a value-semantics aggregate (§4.4/§4.6's Struct strategy).
type Struct struct {
	DeclName string
	Fields   []*Field
	Methods  []*Func
}

func (s *Struct) Name() string { return s.DeclName }
func (s *Struct) declNode()    {}

// Interface is a reference-semantics aggregate exposing only methods
// (§4.4/§4.6's Interface strategy).
type Interface struct {
	DeclName string
	Methods  []*Func
}

func (i *Interface) Name() string { return i.DeclName }
func (i *Interface) declNode()    {}

// Union is a D union of translated fields.
type Union struct {
	DeclName string
	Fields   []*Field
}

func (u *Union) Name() string { return u.DeclName }
func (u *Union) declNode()    {}

// OpaqueStub is an OpaqueClass-strategy record: emitted as a forward
// declaration only, carrying no fields or methods, since its C++ layout
// is deliberately not translated (§3, §4.4).
type OpaqueStub struct {
	DeclName string
}

func (o *OpaqueStub) Name() string { return o.DeclName }
func (o *OpaqueStub) declNode()    {}

// Alias is a type-alias declaration (`alias Name = Target;`).
type Alias struct {
	DeclName string
	Target   Type
}

func (a *Alias) Name() string { return a.DeclName }
func (a *Alias) declNode()    {}

// EnumMember is one enumerator (§4.6's ordered EnumConstant translation).
type EnumMember struct {
	DeclName string
	Value    int64
}

func (m *EnumMember) Name() string { return m.DeclName }
func (m *EnumMember) declNode()    {}

// Enum is an enum declaration with a base type and ordered members.
type Enum struct {
	DeclName string
	Base     Type
	Members  []*EnumMember
}

func (e *Enum) Name() string { return e.DeclName }
func (e *Enum) declNode()    {}

// Linkage is the language linkage surface spelling the printer emits
// (§6.1, grounded in original_source/'s `extern (C)` / `extern (C++, ns)`
// block wrapping — see DESIGN.md).
type Linkage struct {
	IsCXX bool
	// NamespacePath is only meaningful when IsCXX is true.
	NamespacePath []string
}

func (l Linkage) String() string {
	if !l.IsCXX {
		return "extern (C)"
	}
	if len(l.NamespacePath) == 0 {
		return "extern (C++)"
	}
	return "extern (C++, " + strings.Join(l.NamespacePath, ".") + ")"
}

// FuncKind distinguishes a free function from a method/ctor/dtor for the
// translator's emission-shape decisions (§13).
type FuncKind int

const (
	FuncFree FuncKind = iota
	FuncMethod
	FuncConstructor
	FuncDestructor
)

// Func is a free function, method, constructor, or destructor (§4.6,
// §13's emission-shape decision).
type Func struct {
	DeclName string
	Kind     FuncKind
	Linkage  Linkage
	Return   Type
	Params   []*Param
	// Receiver is the explicit first parameter synthesized for a method
	// on a Struct-strategy record (§13); nil for free functions and for
	// methods on an Interface-strategy record (the interface method has
	// an implicit receiver, D-idiomatic).
	Receiver  *Param
	IsVirtual bool
	IsStatic  bool
	IsFinal   bool
	// HasBody is false for every translated declaration (§1's Non-goals
	// exclude expression evaluation); the printer emits a body-less
	// prototype, or for an interface method no body at all.
	HasBody bool
}

func (f *Func) Name() string { return f.DeclName }
func (f *Func) declNode()    {}

// Var is a free variable (§4.6's structural translation).
type Var struct {
	DeclName string
	VType    Type
}

func (v *Var) Name() string { return v.DeclName }
func (v *Var) declNode()    {}
