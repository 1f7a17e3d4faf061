// Package cxxast defines the narrow adapter contract the translation
// pipeline requires from an external C++ parser (see §6.1). The pipeline
// never constructs this tree itself; it is handed a TranslationUnit and
// walks it through these interfaces. Any parser capable of producing an
// equivalent tree (libclang, a hand-rolled test fixture, ...) may sit
// behind it.
package cxxast

import "fmt"

// Position is a source location: a filename plus 1-based line/column.
// Columns count Unicode code points rather than bytes or display width.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position carries real location information.
func (p Position) IsValid() bool {
	return p.File != ""
}
