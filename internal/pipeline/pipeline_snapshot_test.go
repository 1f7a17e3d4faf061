package pipeline_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/binderd/cppbind/internal/config"
	"github.com/binderd/cppbind/internal/cxxast"
	"github.com/binderd/cppbind/internal/pipeline"
	"github.com/binderd/cppbind/internal/printer"
)

// Snapshot coverage for the generated D source and the optional YAML run
// report, using go-snaps.MatchSnapshot for whole-output comparisons.
func TestRunDynamicClassSnapshot(t *testing.T) {
	cxxast.ResetOrder()

	rec := cxxast.NewDecl(cxxast.DeclRecord, "Shape", "Shape", cxxast.Position{File: "shape.h", Line: 1})
	rec.SetCXXRecord(true)
	rec.SetDynamic(true)

	area := cxxast.NewDecl(cxxast.DeclMethod, "area", "Shape::area", cxxast.Position{File: "shape.h", Line: 2})
	area.SetReturn(intType())
	area.SetVirtual(true)
	rec.AddMethod(area)

	ctor := cxxast.NewDecl(cxxast.DeclConstructor, "Shape", "Shape::Shape", cxxast.Position{File: "shape.h", Line: 3})
	rec.AddCtor(ctor)

	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(rec)

	ctx := pipeline.New()
	root, err := ctx.Run(tu, []string{"shape.h"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	files := printer.RenderTree(root)
	if len(files) != 1 {
		t.Fatalf("expected 1 output file, got %d: %+v", len(files), files)
	}
	snaps.MatchSnapshot(t, "shape_interface_output", files[0].Source)
}

func TestBuildReportYAMLSnapshot(t *testing.T) {
	cxxast.ResetOrder()

	fn := cxxast.NewDecl(cxxast.DeclFunction, "frobnicate", "frobnicate", cxxast.Position{File: "a.h", Line: 1})
	fn.SetReturn(intType())
	tu := cxxast.NewDecl(cxxast.DeclNamespace, "", "", cxxast.Position{}).AddChild(fn)

	cfg, err := config.Load("mem.json", []byte(`{"binding_attributes": {"frobnicate": {"target_module": "widgets"}}}`))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	ctx := pipeline.New()
	if _, err := ctx.Run(tu, []string{"a.h"}, []*config.File{cfg}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, err := ctx.BuildReport().ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	snaps.MatchSnapshot(t, "report_yaml_output", string(out))
}
