// Package decltable materializes a wrapped declaration for every C++
// declaration the walker reaches, and tracks which ones are eligible
// emission roots (§3, §4.1).
package decltable

import (
	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/typetable"
)

// Kind is the closed set of wrapped-declaration variants (§3).
type Kind int

const (
	Function Kind = iota
	Namespace
	Record
	RecordTemplate
	SpecializedRecord
	Typedef
	Enum
	EnumConstant
	Field
	Union
	Method
	Constructor
	Destructor
	Argument
	Variable
	TemplateTypeArgument
	TemplateNonTypeArgument
	UsingAliasTemplate
	LinkageSpec
	Unwrappable
)

func (k Kind) String() string {
	names := [...]string{
		"Function", "Namespace", "Record", "RecordTemplate", "SpecializedRecord",
		"Typedef", "Enum", "EnumConstant", "Field", "Union", "Method",
		"Constructor", "Destructor", "Argument", "Variable",
		"TemplateTypeArgument", "TemplateNonTypeArgument", "UsingAliasTemplate",
		"LinkageSpec", "Unwrappable",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Visibility is the configured export visibility of a declaration (§4.3).
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityPrivate
	VisibilityPackage
	VisibilityProtected
	VisibilityPublic
	VisibilityExport
)

// WrappedDecl is the system's own node around a cxxast.Decl (§3).
type WrappedDecl struct {
	Kind   Kind
	Source cxxast.Decl

	SourceName string
	// TargetName overrides SourceName (after RemovePrefix stripping) when
	// set by configuration; empty means "use the stripped source name".
	TargetName   string
	RemovePrefix string
	Visibility   Visibility

	// Bound mirrors the configuration applier's "bound" attribute; it
	// defaults to true so a reachable, wrappable declaration is emitted
	// unless configuration explicitly opts it out (§13 open-question
	// decision: the original left the default implicit).
	Bound bool

	TargetModule string

	// Wrappable is false when analysis could not translate this node
	// (§3's is_wrappable). A Kind==Unwrappable decl always has this
	// false; other kinds may too, if a subtree beneath them failed.
	Wrappable bool

	// ShouldEmit is computed after the walk's file-restriction pass
	// (§4.1): true only for top-level declarations whose defining file
	// path-matches one of the input headers.
	ShouldEmit bool

	Loc cxxast.Position

	// TopLevel is true for declarations registered while the walker's
	// top_level flag was set (§4.1): direct children of the translation
	// unit, or the contents of a top-level extern-linkage block.
	// Namespace children are never TopLevel at the walker level.
	TopLevel bool

	Parent *WrappedDecl

	// Namespace/Record/Enum/ClassTemplate children, in source order.
	Children []*WrappedDecl

	// Record-specific.
	Fields         []*WrappedDecl
	Methods        []*WrappedDecl
	Constructors   []*WrappedDecl
	Destructor     *WrappedDecl
	Bases          []*WrappedDecl
	IsCXXRecord    bool
	IsDynamicClass bool

	// Function/Method-specific.
	ReturnType           *typetable.WrappedType
	Params               []*WrappedDecl
	Linkage              cxxast.Linkage
	IsOverloadedOperator bool
	IsVirtual            bool
	IsStatic             bool

	// Typedef-specific.
	UnderlyingType *typetable.WrappedType

	// Enum-specific.
	Constants []*WrappedDecl
	// EnumConstant-specific.
	EnumValue int64

	// Field/Variable/Argument/TemplateNonTypeArgument-specific.
	Type *typetable.WrappedType

	// ClassTemplate-specific.
	TemplateParams  []*WrappedDecl
	TemplatedRecord *WrappedDecl
	Specializations []*WrappedDecl

	// SpecializedRecord-specific.
	TemplateOf   *WrappedDecl
	TemplateArgs []*typetable.WrappedType

	// RecordTemplate-specific.
	IsUnionTemplate bool

	// TemplateTypeArgument/TemplateNonTypeArgument-specific.
	IsPack bool
	Index  int
}

// QualifiedName walks Parent links to build a "::"-joined name, the same
// shape the configuration applier's lookup keys are written in (§4.3).
func (w *WrappedDecl) QualifiedName() string {
	var parts []string
	for cur := w; cur != nil; cur = cur.Parent {
		if cur.SourceName == "" {
			continue
		}
		parts = append([]string{cur.SourceName}, parts...)
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

// EmittedName is TargetName if configuration set one, else SourceName
// with RemovePrefix stripped.
func (w *WrappedDecl) EmittedName() string {
	if w.TargetName != "" {
		return w.TargetName
	}
	return stripPrefix(w.SourceName, w.RemovePrefix)
}

// Members returns every declaration context this node exposes for the
// configuration applier's segment-by-segment name lookup (§4.3): a
// namespace's children, a record's nested types/fields/methods, an
// enum's constants, or a class template's parameters/specializations.
func (w *WrappedDecl) Members() []*WrappedDecl {
	var out []*WrappedDecl
	out = append(out, w.Children...)
	out = append(out, w.Fields...)
	out = append(out, w.Methods...)
	out = append(out, w.Constructors...)
	if w.Destructor != nil {
		out = append(out, w.Destructor)
	}
	out = append(out, w.Constants...)
	out = append(out, w.TemplateParams...)
	out = append(out, w.Specializations...)
	if w.TemplatedRecord != nil {
		out = append(out, w.TemplatedRecord)
	}
	return out
}

// Named returns every direct member whose SourceName matches name.
func (w *WrappedDecl) Named(name string) []*WrappedDecl {
	var out []*WrappedDecl
	for _, m := range w.Members() {
		if m.SourceName == name {
			out = append(out, m)
		}
	}
	return out
}

func stripPrefix(name, prefix string) string {
	if prefix == "" || len(name) <= len(prefix) {
		return name
	}
	if name[:len(prefix)] == prefix {
		return name[len(prefix):]
	}
	return name
}
