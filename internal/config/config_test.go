package config

import "testing"

func TestLoadRejectsUnknownTopLevelKey(t *testing.T) {
	_, err := Load("x.json", []byte(`{"bogus": true}`))
	if err == nil {
		t.Fatalf("expected an error for an unrecognized top-level key")
	}
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	_, err := Load("x.json", []byte(`{"binding_attributes": {"ns::Foo": {"nonsense": 1}}}`))
	if err == nil {
		t.Fatalf("expected an error for an unrecognized attribute name")
	}
}

func TestLoadRequiresDDeclForReplace(t *testing.T) {
	raw := []byte(`{"binding_attributes": {"ns::Foo": {"strategy": {"name": "replace"}}}}`)
	_, err := Load("x.json", raw)
	if err == nil {
		t.Fatalf("expected an error for strategy replace without d_decl")
	}
}

func TestLoadParsesAllRecognizedAttributes(t *testing.T) {
	raw := []byte(`{
		"clang_args": ["-std=c++17"],
		"binding_attributes": {
			"ns::Foo": {
				"bound": false,
				"target_module": "ns.foo",
				"visibility": "Private",
				"remove_prefix": "k",
				"strategy": {"name": "replace", "d_decl": "Bar", "is_ref_type": true}
			}
		}
	}`)
	f, err := Load("x.json", raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.ClangArgs) != 1 || f.ClangArgs[0] != "-std=c++17" {
		t.Fatalf("ClangArgs = %v", f.ClangArgs)
	}
	attrs, ok := f.BindingAttributes["ns::Foo"]
	if !ok {
		t.Fatalf("missing ns::Foo attributes")
	}
	if attrs.Bound == nil || *attrs.Bound != false {
		t.Fatalf("Bound = %v, want false", attrs.Bound)
	}
	if attrs.TargetModule == nil || *attrs.TargetModule != "ns.foo" {
		t.Fatalf("TargetModule = %v", attrs.TargetModule)
	}
	if attrs.Visibility == nil || *attrs.Visibility != "Private" {
		t.Fatalf("Visibility = %v", attrs.Visibility)
	}
	if attrs.RemovePrefix == nil || *attrs.RemovePrefix != "k" {
		t.Fatalf("RemovePrefix = %v", attrs.RemovePrefix)
	}
	if attrs.Strategy == nil || attrs.Strategy.Name != "replace" || attrs.Strategy.DDecl != "Bar" || !attrs.Strategy.IsRef {
		t.Fatalf("Strategy = %+v", attrs.Strategy)
	}
}

func TestLoadRejectsMalformedVisibility(t *testing.T) {
	raw := []byte(`{"binding_attributes": {"ns::Foo": {"visibility": "friendly"}}}`)
	_, err := Load("x.json", raw)
	if err == nil {
		t.Fatalf("expected an error for a malformed visibility string")
	}
}

func TestLoadAllowsMissingBindingAttributes(t *testing.T) {
	f, err := Load("x.json", []byte(`{"clang_args": []}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.BindingAttributes) != 0 {
		t.Fatalf("BindingAttributes = %v, want empty", f.BindingAttributes)
	}
}
