package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/binderd/cppbind/internal/cxxast"
)

func TestRunConfigValidateReportsUnresolvedName(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "a.h")
	if err := os.WriteFile(header, []byte("int frobnicate();\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFixtureAdapter(t, fixtureFunction(header, "frobnicate"))

	cfgPath := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(cfgPath, []byte(`{"binding_attributes": {"does_not_exist": {"bound": false}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	configFiles, clangArgs = []string{cfgPath}, nil
	if err := runConfigValidate(nil, []string{header}); err == nil {
		t.Fatal("expected an error reporting the unresolved configuration name")
	}
}

func TestRunConfigValidateAcceptsFullyResolvedConfig(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "a.h")
	if err := os.WriteFile(header, []byte("int frobnicate();\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFixtureAdapter(t, fixtureFunction(header, "frobnicate"))

	cfgPath := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(cfgPath, []byte(`{"binding_attributes": {"frobnicate": {"target_module": "x.y"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	configFiles, clangArgs = []string{cfgPath}, nil
	if err := runConfigValidate(nil, []string{header}); err != nil {
		t.Fatalf("expected a fully-resolved config to validate cleanly, got: %v", err)
	}
}

func TestRunConfigValidateIgnoresWalkerDiagnostics(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "a.h")
	if err := os.WriteFile(header, []byte("int frobnicate(); int frobnicate(int) = delete;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deleted := cxxast.NewDecl(cxxast.DeclFunction, "frobnicate", "frobnicate(int)", cxxast.Position{File: header, Line: 1})
	deleted.SetReturn(cxxast.NewBuiltin(cxxast.BuiltinInt, "int", "int")).SetDeleted(true)
	tu := fixtureFunction(header, "frobnicate").(*cxxast.D).AddChild(deleted)
	withFixtureAdapter(t, tu)

	cfgPath := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(cfgPath, []byte(`{"binding_attributes": {"frobnicate": {"target_module": "x.y"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	configFiles, clangArgs = []string{cfgPath}, nil
	if err := runConfigValidate(nil, []string{header}); err != nil {
		t.Fatalf("a fully-resolved config must validate cleanly even when the walk itself produced unrelated Unwrappable warnings, got: %v", err)
	}
}

func TestRunConfigInitWritesStarterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.json")
	configInitPath = path

	if err := runConfigInit(nil, nil); err != nil {
		t.Fatalf("runConfigInit: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected starter file written: %v", err)
	}
	for _, want := range []string{`"clang_args"`, `"binding_attributes"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("expected starter config to contain %s, got:\n%s", want, raw)
		}
	}
}
