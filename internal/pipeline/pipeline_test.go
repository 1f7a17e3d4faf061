package pipeline_test

import (
	"strings"
	"testing"

	"github.com/binderd/cppbind/internal/config"
	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/pipeline"
	"github.com/binderd/cppbind/internal/printer"
)

func intType() cxxast.Type { return cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int") }

func TestRunFreeFunctionEndToEnd(t *testing.T) {
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "add", "add", cxxast.Position{File: "a.h", Line: 1})
	fn.SetReturn(intType())
	fn.AddParamArg(cxxast.NewDecl(cxxast.DeclArgument, "x", "add::x", cxxast.Position{File: "a.h", Line: 1}).SetType(intType()))
	fn.AddParamArg(cxxast.NewDecl(cxxast.DeclArgument, "y", "add::y", cxxast.Position{File: "a.h", Line: 1}).SetType(intType()))
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(fn)

	ctx := pipeline.New()
	root, err := ctx.Run(tu, []string{"a.h"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	files := printer.RenderTree(root)
	if len(files) != 1 {
		t.Fatalf("expected 1 output file, got %d: %+v", len(files), files)
	}
	if !strings.Contains(files[0].Source, "int add(int x, int y)") {
		t.Errorf("expected translated add() in output, got:\n%s", files[0].Source)
	}
}

func TestRunAppliesConfigurationTargetModule(t *testing.T) {
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "frobnicate", "frobnicate", cxxast.Position{File: "a.h", Line: 1})
	fn.SetReturn(intType())
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(fn)

	cfg, err := config.Load("mem.json", []byte(`{"binding_attributes": {"frobnicate": {"target_module": "x.y"}}}`))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	ctx := pipeline.New()
	root, err := ctx.Run(tu, []string{"a.h"}, []*config.File{cfg})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	files := printer.RenderTree(root)
	if len(files) != 1 || files[0].RelPath != "x/y."+printer.Ext {
		t.Fatalf("expected x/y.%s, got %+v", printer.Ext, files)
	}
}

func TestRunUnboundDeclarationIsNotEmitted(t *testing.T) {
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "hidden", "hidden", cxxast.Position{File: "a.h", Line: 1})
	fn.SetReturn(intType())
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(fn)

	cfg, err := config.Load("mem.json", []byte(`{"binding_attributes": {"hidden": {"bound": false}}}`))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	ctx := pipeline.New()
	root, err := ctx.Run(tu, []string{"a.h"}, []*config.File{cfg})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	files := printer.RenderTree(root)
	if len(files) != 0 {
		t.Fatalf("expected no output for an unbound declaration, got %+v", files)
	}
}

func TestBuildReportCountsDeclarationsAndStrategies(t *testing.T) {
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "noop", "noop", cxxast.Position{File: "a.h", Line: 1})
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(fn)

	ctx := pipeline.New()
	if _, err := ctx.Run(tu, []string{"a.h"}, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	report := ctx.BuildReport()
	if report.Declarations["Function"] == 0 {
		t.Errorf("expected at least one Function in the report, got %+v", report.Declarations)
	}
	out, err := report.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if !strings.Contains(string(out), "declarations:") {
		t.Errorf("expected yaml output to contain declarations key, got:\n%s", out)
	}
}
