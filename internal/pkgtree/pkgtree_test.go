package pkgtree

import "testing"

func TestGetOrCreateModuleBuildsIntermediatePackages(t *testing.T) {
	root := NewRoot()
	m, err := root.GetOrCreateModule("a.b.c")
	if err != nil {
		t.Fatalf("GetOrCreateModule: %v", err)
	}
	if m.Name != "c" {
		t.Fatalf("Name = %q, want c", m.Name)
	}

	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("root children = %d, want 1", len(children))
	}
	a, ok := children[0].(*Package)
	if !ok || a.Name != "a" {
		t.Fatalf("root child = %+v, want package a", children[0])
	}
}

func TestGetOrCreateModuleIsIdempotent(t *testing.T) {
	root := NewRoot()
	m1, err := root.GetOrCreateModule("a.b")
	if err != nil {
		t.Fatalf("GetOrCreateModule: %v", err)
	}
	m2, err := root.GetOrCreateModule("a.b")
	if err != nil {
		t.Fatalf("GetOrCreateModule: %v", err)
	}
	if m1 != m2 {
		t.Fatalf("GetOrCreateModule(a.b) returned different modules on repeated calls")
	}
}

func TestGetOrCreateModuleRejectsVariantMismatch(t *testing.T) {
	root := NewRoot()
	if _, err := root.GetOrCreateModule("a.b"); err != nil {
		t.Fatalf("GetOrCreateModule: %v", err)
	}
	// "a" is a package; asking for a module literally named "a" should fail.
	if _, err := root.GetOrCreateModule("a"); err == nil {
		t.Fatalf("expected an error requesting a module where a package exists")
	}
	// "a.b" is a module; asking to nest a module under it should fail.
	if _, err := root.GetOrCreateModule("a.b.c"); err == nil {
		t.Fatalf("expected an error nesting a module under a module")
	}
}

func TestRootPathMapsToRootPackage(t *testing.T) {
	root := NewRoot()
	if root.Name != "" {
		t.Fatalf("Name = %q, want empty for the root package", root.Name)
	}
}
