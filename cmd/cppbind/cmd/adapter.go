package cmd

import (
	"fmt"

	"github.com/binderd/cppbind/internal/cxxast"
)

// ParseHeaders produces the cxxast.TranslationUnit the pipeline walks.
// The C++ parser itself is explicitly out of scope (§1's Non-goals: "any
// library producing an equivalent AST may be substituted") — cppbind
// ships no libclang (or other) binding of its own. A real deployment
// links one in by overriding this variable, e.g. from a side-effect
// import in its own main package:
//
//	import _ "example.com/cppbind-libclang-adapter"
//
// The default implementation reports that no adapter is configured
// rather than silently producing an empty translation unit.
var ParseHeaders = func(headerPaths []string, clangArgs []string) (cxxast.TranslationUnit, error) {
	return nil, fmt.Errorf("no C++ AST adapter configured: set cmd.ParseHeaders to a cxxast.TranslationUnit provider before calling Execute")
}
