package typetable

import "github.com/binderd/cppbind/internal/cxxast"

// builtinNames is the fixed table mapping a C++ builtin kind to a target
// D name (§4.2).
var builtinNames = map[cxxast.BuiltinKind]string{
	cxxast.BuiltinVoid:       "void",
	cxxast.BuiltinBool:       "bool",
	cxxast.BuiltinChar:       "char",
	cxxast.BuiltinSChar:      "byte",
	cxxast.BuiltinUChar:      "ubyte",
	cxxast.BuiltinShort:      "short",
	cxxast.BuiltinUShort:     "ushort",
	cxxast.BuiltinInt:        "int",
	cxxast.BuiltinUInt:       "uint",
	cxxast.BuiltinLong:       "c_long",
	cxxast.BuiltinULong:      "c_ulong",
	cxxast.BuiltinLongLong:   "long",
	cxxast.BuiltinULongLong:  "ulong",
	cxxast.BuiltinFloat:      "float",
	cxxast.BuiltinDouble:     "double",
	cxxast.BuiltinLongDouble: "real",
}

// Table interns every distinct C++ type exactly once (§4.2). It is not
// thread-safe; the pipeline runs single-threaded (§5).
type Table struct {
	byKey  map[string]*WrappedType
	byName map[string][]*WrappedType // secondary index: qualified source name -> wrapped type
	order  []*WrappedType            // insertion order, for the resolver's full sweep
}

// NewTable creates an empty type table.
func NewTable() *Table {
	return &Table{
		byKey:  make(map[string]*WrappedType),
		byName: make(map[string][]*WrappedType),
	}
}

// All returns every interned wrapped type, in interning order. Used by
// the pipeline's post-configuration strategy-resolution sweep (§4.4,
// §5's stage ordering) and by diagnostic reporting.
func (t *Table) All() []*WrappedType {
	return t.order
}

// Lookup returns the already-interned handle for key, if any, without
// constructing one.
func (t *Table) Lookup(key string) (*WrappedType, bool) {
	w, ok := t.byKey[key]
	return w, ok
}

// ByName returns every wrapped type registered under the given qualified
// source name, used by the configuration applier's type-by-name fallback
// (§4.3).
func (t *Table) ByName(name string) []*WrappedType {
	return t.byName[name]
}

// indexByName registers w under name in the secondary multimap, unless
// it is already present.
func (t *Table) indexByName(name string, w *WrappedType) {
	if name == "" {
		return
	}
	for _, existing := range t.byName[name] {
		if existing == w {
			return
		}
	}
	t.byName[name] = append(t.byName[name], w)
}

// Get returns the wrapped handle for src, interning it if this is the
// first reference (§4.2's contract). A placeholder is inserted before
// recursing into dependent types so that mutually-recursive structures
// (a record containing a pointer to itself) terminate (Design Notes'
// "reentrant get_or_intern").
//
// Some source shapes (local-restrict qualification, sugar) do not get a
// wrapped type of their own at all — they intern identically to another
// type. Those are resolved to that type's own canonical handle here,
// before any placeholder is created for src's key, so every index
// (byKey, byName, a caller's own variable) ends up holding the exact
// same pointer rather than a value-copy of it (§3's "interning a type a
// second time returns the same handle" applies transitively through an
// alias, not just to the alias's own key).
func (t *Table) Get(src cxxast.Type) *WrappedType {
	if src == nil {
		return t.invalid("")
	}
	key := src.CanonicalKey()
	if w, ok := t.byKey[key]; ok {
		return w
	}

	if alias := t.aliasTarget(src); alias != nil {
		w := t.Get(alias)
		t.byKey[key] = w
		return w
	}

	placeholder := &WrappedType{Kind: Invalid, Source: src}
	t.byKey[key] = placeholder
	t.order = append(t.order, placeholder)
	t.classify(placeholder, src)
	return placeholder
}

// aliasTarget returns the cxxast.Type src interns identically to — a
// local-qualified type carrying no real qualifier (no const, whether or
// not the transparent restrict qualifier is set), or a sugar type —
// or nil when src gets a wrapped type of its own (§4.2).
func (t *Table) aliasTarget(src cxxast.Type) cxxast.Type {
	switch {
	case src.Kind() == cxxast.TypeLocalQualified:
		qt := src.(cxxast.QualifiedType)
		quals := qt.Qualifiers()
		if !quals.Other && !quals.Const {
			return qt.Unqualified()
		}
		return nil
	case src.Kind() >= cxxast.TypeElaborated:
		return src.(cxxast.SugarType).Desugar()
	default:
		return nil
	}
}

func (t *Table) invalid(key string) *WrappedType {
	if key != "" {
		if w, ok := t.byKey[key]; ok {
			return w
		}
	}
	w := &WrappedType{Kind: Invalid}
	if key != "" {
		t.byKey[key] = w
	}
	return w
}

// classify applies the kind-dispatch and classification rules of §4.2,
// mutating the already-interned placeholder w in place rather than
// building and returning a fresh node — w is the one canonical pointer
// every index (byKey, byName, order, and whatever Get() handed back to
// its caller before classify ran) shares, so every field set here is
// visible everywhere that pointer is held (mirrors
// decltable.Table.getOrPlaceholder's placeholder-mutation discipline).
func (t *Table) classify(w *WrappedType, src cxxast.Type) {
	switch src.Kind() {
	case cxxast.TypeBuiltin:
		bt := src.(cxxast.BuiltinType)
		name, ok := builtinNames[bt.BuiltinKind()]
		w.Kind = Builtin
		w.BuiltinTargetName = name
		w.SetStrategy(Strategy{Mode: StrategyReplace, ReplaceName: name})
		if ok {
			t.indexByName(name, w)
		}

	case cxxast.TypePointer:
		pt := src.(cxxast.PointerType)
		w.Kind = Pointer
		w.Pointee = t.Get(pt.Pointee())

	case cxxast.TypeLValueReference:
		rt := src.(cxxast.ReferenceType)
		w.Kind = Reference
		w.Referent = t.Get(rt.Referent())

	case cxxast.TypeRValueReference:
		w.Kind = Invalid

	case cxxast.TypeRecord:
		rr := src.(cxxast.RecordTypeRef)
		decl := rr.Decl()
		t.declBearing(w, NonTemplateRecord, decl)
		if rec, ok := decl.(cxxast.Record); ok {
			w.IsCXXRecordKind = rec.IsCXXRecord()
			w.IsDynamicClassKind = rec.IsDynamicClass()
		}
		t.indexByName(qualifiedName(decl), w)

	case cxxast.TypeInjectedClassName:
		rr := src.(cxxast.RecordTypeRef)
		decl := rr.Decl()
		t.declBearing(w, TemplateRecord, decl)
		w.IsCXXRecordKind = true
		if rec, ok := decl.(cxxast.Record); ok {
			w.IsDynamicClassKind = rec.IsDynamicClass()
		}
		t.indexByName(qualifiedName(decl), w)

	case cxxast.TypeUnion:
		rr := src.(cxxast.RecordTypeRef)
		decl := rr.Decl()
		t.declBearing(w, Union, decl)
		t.indexByName(qualifiedName(decl), w)

	case cxxast.TypeConstantArray:
		at := src.(cxxast.ConstantArrayType)
		w.Kind = ConstantArray
		w.Element = t.Get(at.Element())
		w.ArraySize = at.Size()

	case cxxast.TypeIncompleteArray:
		at := src.(cxxast.ArrayType)
		w.Kind = VariableArray
		w.Element = t.Get(at.Element())

	case cxxast.TypeDependentSizedArray:
		w.Kind = Invalid

	case cxxast.TypeFunction:
		ft := src.(cxxast.FunctionTypeRef)
		params := make([]*WrappedType, 0, len(ft.Params()))
		for _, p := range ft.Params() {
			params = append(params, t.Get(p))
		}
		w.Kind = Function
		w.FuncReturn = t.Get(ft.Return())
		w.FuncParams = params
		w.SetStrategy(Strategy{Mode: StrategyReplace})

	case cxxast.TypeTypedef:
		tt := src.(cxxast.TypedefTypeRef)
		decl := tt.Decl()
		t.declBearing(w, Typedef, decl)
		t.indexByName(qualifiedName(decl), w)

	case cxxast.TypeEnum:
		et := src.(cxxast.EnumTypeRef)
		decl := et.Decl()
		t.declBearing(w, Enum, decl)
		t.indexByName(qualifiedName(decl), w)

	case cxxast.TypeVector:
		vt := src.(cxxast.VectorType)
		w.Kind = Vector
		w.Element = t.Get(vt.Element())

	case cxxast.TypeDependentName:
		w.Kind = Delayed

	case cxxast.TypeTemplateSpecialization:
		tst := src.(cxxast.TemplateSpecializationType)
		args := make([]*WrappedType, 0, len(tst.Args()))
		for _, a := range tst.Args() {
			args = append(args, t.Get(a))
		}
		w.Kind = TemplateSpecialization
		w.TemplateQualifiedName = tst.TemplateQualifiedName()
		w.TemplateArgs = args
		t.indexByName(tst.TemplateQualifiedName(), w)

	case cxxast.TypeTemplateTypeParmUse:
		tat := src.(cxxast.TemplateArgType)
		t.declBearing(w, TemplateArgument, tat.Decl())

	case cxxast.TypeDependentTemplateSpecialization,
		cxxast.TypeMemberPointer,
		cxxast.TypePackExpansion,
		cxxast.TypeUnaryTransform:
		w.Kind = Invalid

	case cxxast.TypeLocalQualified:
		qt := src.(cxxast.QualifiedType)
		quals := qt.Qualifiers()
		if quals.Other {
			w.Kind = Invalid
		} else {
			// aliasTarget already diverted the no-qualifier case before
			// Get() ever called classify, so Const is guaranteed here.
			w.Kind = Qualified
			w.Unqualified = t.Get(qt.Unqualified())
			w.ConstQual = true
			w.RestrictQual = quals.Restrict
		}

	default:
		// Sugar kinds are resolved to their desugared form in Get()'s
		// aliasTarget before classify is ever reached; anything else
		// unrecognized is Invalid.
		w.Kind = Invalid
	}
}

// declBearing fills in the decl-bearing fields of an already-interned
// WrappedType w (§3 "has_declaration").
func (t *Table) declBearing(w *WrappedType, kind Kind, decl cxxast.Decl) {
	w.Kind = kind
	w.HasDeclaration = decl != nil
	if decl != nil {
		w.DeclCanonical = decl.Canonical()
		w.DeclName = decl.Name()
	}
}

// qualifiedName walks Parent() links to build a "::"-joined qualified
// name for indexing by source name (§4.3's name resolution target).
func qualifiedName(d cxxast.Decl) string {
	if d == nil {
		return ""
	}
	var parts []string
	for cur := d; cur != nil; cur = cur.Parent() {
		if cur.Name() == "" {
			continue
		}
		parts = append([]string{cur.Name()}, parts...)
	}
	name := ""
	for i, p := range parts {
		if i > 0 {
			name += "::"
		}
		name += p
	}
	return name
}
