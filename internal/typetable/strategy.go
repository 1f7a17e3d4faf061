package typetable

// Resolve sets a concrete strategy on w deterministically when it is
// still Unknown (§4.4). It is idempotent: calling it on a type that
// already has a concrete strategy is a no-op.
//
// Builtins are expected to already carry StrategyReplace from interning
// (§4.2); encountering one still Unknown here is an internal invariant
// violation, reported through err rather than panicking, per §7's rule
// that internal-invariant violations abort with a descriptive message.
func Resolve(w *WrappedType) error {
	if w.StrategyDecided() && w.Strategy.Mode != StrategyUnknown {
		return nil
	}

	switch w.Kind {
	case Builtin:
		return &InternalError{Message: "builtin type reached the strategy resolver still Unknown: " + w.BuiltinTargetName}

	case Pointer, Reference, Typedef, Enum, Function, Union:
		w.SetStrategy(Strategy{Mode: StrategyReplace})
		return nil

	case NonTemplateRecord, TemplateRecord:
		if !w.IsCXXRecordKind {
			w.SetStrategy(Strategy{Mode: StrategyStruct})
			return nil
		}
		if w.IsDynamicClassKind {
			w.SetStrategy(Strategy{Mode: StrategyInterface})
		} else {
			w.SetStrategy(Strategy{Mode: StrategyStruct})
		}
		return nil

	case ConstantArray, VariableArray, DependentLengthArray, Vector, Invalid:
		// Left Unknown. The translator does not consult the strategy of
		// these kinds: arrays and vectors translate structurally from
		// their element type, and an Invalid type translates to void*
		// with a warning.
		return nil

	case Qualified:
		// Delegate to the unqualified form (§3 invariant).
		if w.Unqualified != nil {
			if err := Resolve(w.Unqualified); err != nil {
				return err
			}
			w.SetStrategy(w.Unqualified.Strategy)
		}
		return nil

	case TemplateSpecialization, TemplateArgument, Delayed:
		// No declared strategy of their own until a configuration or
		// the translator resolves the referent; leave Unknown.
		return nil

	default:
		return &InternalError{Message: "strategy resolver: unrecognized wrapped-type kind"}
	}
}

// InternalError marks an internal invariant violation (§7): wrong
// strategy for an operation, a missing canonical decl, or (here) a
// builtin that skipped interning's strategy assignment. The pipeline
// aborts the run when one of these is returned.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }
