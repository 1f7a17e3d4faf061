// Package printer serializes the target-language AST (internal/dlang) to D
// source text and lays emitted modules out on disk (§6.4).
//
// Renders each node to source text via a type-switch over the node and
// writes the pieces to a strings.Builder. internal/dlang's Type nodes
// already implement String() for expressions, so the printer's job
// narrows to declaration-level formatting: one function per dlang.Decl
// variant, dispatched by type-switch, adding the statement/declaration
// layer (indentation, semicolons, block braces) around them.
package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/binderd/cppbind/internal/dlang"
	"github.com/binderd/cppbind/internal/pkgtree"
)

const indent = "    "

// File is one rendered output file: a path relative to the output
// directory (§6.4's `a/b/c.<ext>`) and its D source text.
type File struct {
	RelPath string
	Source  string
}

// Ext is the file extension printed modules are given.
const Ext = "d"

// RenderTree walks root and returns one File per pkgtree.Module reached,
// in a deterministic (lexicographic, by dotted path) order so multi-file
// output is stable across runs (§5's ordering rule).
func RenderTree(root *pkgtree.Package) []File {
	var files []File
	collect(root, nil, &files)
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files
}

func collect(pkg *pkgtree.Package, path []string, out *[]File) {
	for _, child := range pkg.Children() {
		switch c := child.(type) {
		case *pkgtree.Module:
			modPath := append(append([]string(nil), path...), c.Name)
			*out = append(*out, File{
				RelPath: relPathFor(modPath),
				Source:  RenderModule(strings.Join(modPath, "."), c),
			})
		case *pkgtree.Package:
			collect(c, append(append([]string(nil), path...), c.Name), out)
		}
	}
}

func relPathFor(modPath []string) string {
	return strings.Join(modPath, "/") + "." + Ext
}

// RenderModule renders one module's header line and declarations in
// source order (§6.4: "a module header line naming the package, followed
// by one block per emitted declaration in source order").
func RenderModule(dottedName string, mod *pkgtree.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s;\n\n", dottedName)
	for i, d := range mod.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		renderDecl(&b, d, 0)
	}
	return b.String()
}

func renderDecl(b *strings.Builder, d dlang.Decl, depth int) {
	switch n := d.(type) {
	case *dlang.Struct:
		renderAggregate(b, "struct", n.DeclName, n.Fields, n.Methods, depth)
	case *dlang.Interface:
		renderAggregate(b, "interface", n.DeclName, nil, n.Methods, depth)
	case *dlang.Union:
		renderAggregate(b, "union", n.DeclName, n.Fields, nil, depth)
	case *dlang.OpaqueStub:
		pad(b, depth)
		fmt.Fprintf(b, "struct %s;\n", n.DeclName)
	case *dlang.Alias:
		pad(b, depth)
		fmt.Fprintf(b, "alias %s = %s;\n", n.DeclName, n.Target.String())
	case *dlang.Enum:
		renderEnum(b, n, depth)
	case *dlang.Func:
		renderFunc(b, n, depth)
	case *dlang.Var:
		pad(b, depth)
		fmt.Fprintf(b, "extern __gshared %s %s;\n", n.VType.String(), n.DeclName)
	default:
		pad(b, depth)
		fmt.Fprintf(b, "// unrenderable declaration %q\n", d.Name())
	}
}

func renderAggregate(b *strings.Builder, kw, name string, fields []*dlang.Field, methods []*dlang.Func, depth int) {
	pad(b, depth)
	fmt.Fprintf(b, "%s %s\n", kw, name)
	pad(b, depth)
	b.WriteString("{\n")
	for _, f := range fields {
		pad(b, depth+1)
		fmt.Fprintf(b, "%s %s;\n", f.FType.String(), f.DeclName)
	}
	for _, m := range methods {
		renderFunc(b, m, depth+1)
	}
	pad(b, depth)
	b.WriteString("}\n")
}

func renderEnum(b *strings.Builder, e *dlang.Enum, depth int) {
	pad(b, depth)
	base := "int"
	if e.Base != nil {
		base = e.Base.String()
	}
	fmt.Fprintf(b, "enum %s : %s\n", e.DeclName, base)
	pad(b, depth)
	b.WriteString("{\n")
	for _, m := range e.Members {
		pad(b, depth+1)
		fmt.Fprintf(b, "%s = %d,\n", m.DeclName, m.Value)
	}
	pad(b, depth)
	b.WriteString("}\n")
}

func renderFunc(b *strings.Builder, f *dlang.Func, depth int) {
	pad(b, depth)
	if f.Kind == dlang.FuncFree || f.Kind == dlang.FuncConstructor {
		b.WriteString(f.Linkage.String())
		b.WriteString(" ")
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}

	params := make([]string, 0, len(f.Params)+1)
	if f.Receiver != nil {
		params = append(params, f.Receiver.PType.String()+" "+f.Receiver.DeclName)
	}
	for _, p := range f.Params {
		params = append(params, p.PType.String()+" "+p.DeclName)
	}

	var mods string
	if f.IsStatic {
		mods += "static "
	}
	if f.IsVirtual {
		mods += "virtual "
	}
	if f.IsFinal {
		mods += "final "
	}

	fmt.Fprintf(b, "%s%s %s(%s)", mods, ret, f.DeclName, strings.Join(params, ", "))
	if f.Kind == dlang.FuncMethod && !f.HasBody && f.Receiver == nil {
		// Interface method: signature only, no body, no trailing semicolon
		// duplication beyond the one the statement needs.
		b.WriteString(";\n")
		return
	}
	b.WriteString("; // no body: declaration only\n")
}

func pad(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}
