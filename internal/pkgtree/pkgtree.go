// Package pkgtree is the two-variant package/module tree of §4.7: a
// Package has a name and an ordered map of children (Package or Module);
// a Module has a name and a list of declarations. A flat, string-keyed
// per-unit registry generalized here into a tree indexed by dotted
// module path.
package pkgtree

import (
	"fmt"
	"strings"

	"github.com/binderd/cppbind/internal/dlang"
)

// Module is a leaf holding translated declarations, emitted to one
// output file (§6.4).
type Module struct {
	Name  string
	Decls []dlang.Decl
}

// Package is an interior node: an ordered map from child name to child,
// where a child is either a *Package or a *Module.
type Package struct {
	Name string

	order    []string
	children map[string]any
}

func newPackage(name string) *Package {
	return &Package{Name: name, children: make(map[string]any)}
}

// NewRoot creates the tree's root package (the empty-name package that
// maps to the output directory itself, §6.4).
func NewRoot() *Package {
	return newPackage("")
}

// Children returns this package's direct children in insertion order.
func (p *Package) Children() []any {
	out := make([]any, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.children[name])
	}
	return out
}

// GetOrCreateModule implements §4.7's public operation: constructs
// missing intermediate packages along dottedPath, and returns the
// (possibly just-created) Module at the leaf. It fails if any path
// segment already names a node of the wrong variant.
func (p *Package) GetOrCreateModule(dottedPath string) (*Module, error) {
	if dottedPath == "" {
		return nil, fmt.Errorf("pkgtree: empty module path")
	}
	segments := strings.Split(dottedPath, ".")

	cur := p
	for i, seg := range segments {
		last := i == len(segments)-1
		existing, ok := cur.children[seg]
		if !ok {
			if last {
				m := &Module{Name: seg}
				cur.insert(seg, m)
				return m, nil
			}
			child := newPackage(seg)
			cur.insert(seg, child)
			cur = child
			continue
		}

		if last {
			m, ok := existing.(*Module)
			if !ok {
				return nil, fmt.Errorf("pkgtree: %q in %q already exists as a package, not a module", seg, dottedPath)
			}
			return m, nil
		}
		child, ok := existing.(*Package)
		if !ok {
			return nil, fmt.Errorf("pkgtree: %q in %q already exists as a module, not a package", seg, dottedPath)
		}
		cur = child
	}
	// unreachable: the loop above always returns on its last iteration.
	return nil, fmt.Errorf("pkgtree: internal error resolving %q", dottedPath)
}

func (p *Package) insert(name string, child any) {
	if _, exists := p.children[name]; !exists {
		p.order = append(p.order, name)
	}
	p.children[name] = child
}
