// Package typetable interns every distinct C++ type into exactly one
// wrapped handle, classifies it, resolves its translation strategy, and
// indexes it by qualified source name for the configuration applier
// (§3, §4.2, §4.4).
package typetable

import "github.com/binderd/cppbind/internal/cxxast"

// Kind is the closed set of wrapped-type variants (§3).
type Kind int

const (
	Invalid Kind = iota
	Builtin
	Pointer
	Reference
	NonTemplateRecord
	TemplateRecord
	Union
	ConstantArray
	VariableArray
	DependentLengthArray
	Function
	Typedef
	Enum
	Vector
	Qualified
	TemplateArgument
	TemplateSpecialization
	Delayed
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Builtin:
		return "Builtin"
	case Pointer:
		return "Pointer"
	case Reference:
		return "Reference"
	case NonTemplateRecord:
		return "NonTemplateRecord"
	case TemplateRecord:
		return "TemplateRecord"
	case Union:
		return "Union"
	case ConstantArray:
		return "ConstantArray"
	case VariableArray:
		return "VariableArray"
	case DependentLengthArray:
		return "DependentLengthArray"
	case Function:
		return "Function"
	case Typedef:
		return "Typedef"
	case Enum:
		return "Enum"
	case Vector:
		return "Vector"
	case Qualified:
		return "Qualified"
	case TemplateArgument:
		return "TemplateArgument"
	case TemplateSpecialization:
		return "TemplateSpecialization"
	case Delayed:
		return "Delayed"
	default:
		return "Unknown"
	}
}

// StrategyMode is the translation-strategy enumeration (§3).
type StrategyMode int

const (
	StrategyUnknown StrategyMode = iota
	StrategyReplace
	StrategyStruct
	StrategyInterface
	StrategyClass
	StrategyOpaqueClass
)

// Strategy is the decision of how a wrapped type surfaces in D.
//
// ReplaceName/ReplaceModule are only meaningful when Mode is
// StrategyReplace; an empty ReplaceName means "translate structurally,
// not by name" (§4.4's rule for Pointer/Reference/Typedef/Enum/
// Function/Union before the resolver gives them a concrete shape).
//
// ReplaceIsRef records whether a Replace target has reference semantics
// (a class-like handle) or value semantics (§9's open question: the
// source's isReferenceType for Replace returns false unconditionally).
// It is not inferred: it is set only from configuration's
// `strategy.is_ref_type` and is false otherwise.
type Strategy struct {
	Mode          StrategyMode
	ReplaceName   string
	ReplaceModule string
	ReplaceIsRef  bool
}

// IsReferenceSemantics reports whether values of this strategy are
// handled by reference in the target language (interfaces/classes, or a
// Replace explicitly marked as reference-like).
func (s Strategy) IsReferenceSemantics() bool {
	switch s.Mode {
	case StrategyInterface, StrategyClass, StrategyOpaqueClass:
		return true
	case StrategyReplace:
		return s.ReplaceIsRef
	default:
		return false
	}
}

// WrappedType is the system's own node around a cxxast.Type (§3).
type WrappedType struct {
	Kind   Kind
	Source cxxast.Type

	// HasDeclaration is false for builtins, pointers, arrays, functions;
	// true when the type resolves to exactly one wrapped declaration.
	HasDeclaration bool
	// DeclCanonical is the canonical key (cxxast.Decl.Canonical()) of
	// the declaration this type resolves to, valid when HasDeclaration.
	DeclCanonical string
	DeclName      string // source name of that declaration, for diagnostics

	// IsCXXRecordKind/IsDynamicClassKind are captured at intern time
	// from the underlying cxxast.Record for NonTemplateRecord/
	// TemplateRecord kinds, so the strategy resolver needs no further
	// AST access (§4.4).
	IsCXXRecordKind    bool
	IsDynamicClassKind bool

	Pointee  *WrappedType // Pointer
	Referent *WrappedType // Reference
	Element  *WrappedType // ConstantArray/VariableArray/Vector
	ArraySize int64       // ConstantArray

	Unqualified *WrappedType // Qualified
	ConstQual   bool
	RestrictQual bool

	FuncReturn *WrappedType // Function
	FuncParams []*WrappedType

	TemplateQualifiedName string         // TemplateSpecialization: qualified template name
	TemplateArgs          []*WrappedType // TemplateSpecialization

	BuiltinTargetName string // Builtin: the target language name

	// ModuleHint is set by the configuration applier's target_module
	// attribute; used when a Builtin (or other Replace-strategy type)
	// needs an import qualifying its replacement name.
	ModuleHint string

	Strategy    Strategy
	strategySet bool // true once Strategy has left Unknown (§3 mutation rule)
}

// SetStrategy mutates the strategy from Unknown to any concrete mode
// exactly once. Subsequent calls are permitted only as explicit
// overrides and are idempotent (calling with the same mode/name/module
// again is a no-op, not an error).
func (w *WrappedType) SetStrategy(s Strategy) {
	if !w.strategySet {
		w.Strategy = s
		w.strategySet = true
		return
	}
	if w.Strategy == s {
		return // idempotent no-op
	}
	// Explicit override (e.g. configuration's "strategy" attribute).
	w.Strategy = s
}

// StrategyDecided reports whether SetStrategy has ever been called.
func (w *WrappedType) StrategyDecided() bool { return w.strategySet }
