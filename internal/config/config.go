// Package config parses and applies binding-attribute configuration files
// (§4.3). It reads with gjson rather than unmarshaling into a struct, the
// way a gjson-based config loader does, since the schema
// has exactly two top-level keys and every other shape (strategy objects,
// nested attribute maps) is read positionally.
package config

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Strategy mirrors the `strategy` attribute object (§4.3). IsRef is an
// additional recognized sub-key (§13 open question) meaningful only when
// Name == "replace": whether the replacement type has reference
// semantics, defaulting to false when absent.
type Strategy struct {
	Name  string
	DDecl string // companion `d_decl`, required when Name == "replace"
	IsRef bool   // `is_ref_type`, only consulted when Name == "replace"
}

// Attributes holds the recognized `binding_attributes` entry for one
// qualified name. A nil pointer field means "attribute not present in
// this file" so Apply can tell "absent" from "explicitly false/empty".
type Attributes struct {
	Bound        *bool
	TargetModule *string
	Visibility   *string
	RemovePrefix *string
	Strategy     *Strategy
}

// File is one parsed configuration file (§4.3's "ordered list of parsed
// JSON trees").
type File struct {
	Path             string
	ClangArgs        []string
	BindingAttributes map[string]Attributes
}

var recognizedTopKeys = map[string]bool{
	"clang_args":         true,
	"binding_attributes": true,
}

var recognizedAttrKeys = map[string]bool{
	"bound":         true,
	"target_module": true,
	"visibility":    true,
	"remove_prefix": true,
	"strategy":      true,
}

// Load parses raw into a File, rejecting unknown top-level and attribute
// keys (§4.3: "Unknown top-level keys and unknown attribute names are
// errors").
func Load(path string, raw []byte) (*File, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: root must be a JSON object", path)
	}

	f := &File{Path: path, BindingAttributes: make(map[string]Attributes)}
	var topErr error
	root.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if !recognizedTopKeys[k] {
			topErr = fmt.Errorf("%s: unrecognized top-level key %q", path, k)
			return false
		}
		return true
	})
	if topErr != nil {
		return nil, topErr
	}

	if args := root.Get("clang_args"); args.Exists() {
		if !args.IsArray() {
			return nil, fmt.Errorf("%s: clang_args must be an array", path)
		}
		for _, a := range args.Array() {
			f.ClangArgs = append(f.ClangArgs, a.String())
		}
	}

	attrsNode := root.Get("binding_attributes")
	if !attrsNode.Exists() {
		return f, nil
	}
	if !attrsNode.IsObject() {
		return nil, fmt.Errorf("%s: binding_attributes must be an object", path)
	}

	var parseErr error
	attrsNode.ForEach(func(name, obj gjson.Result) bool {
		attrs, err := parseAttributes(path, name.String(), obj)
		if err != nil {
			parseErr = err
			return false
		}
		f.BindingAttributes[name.String()] = attrs
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return f, nil
}

// validVisibility checks s against the case-insensitive §4.3 vocabulary
// at parse time, so a malformed value is an Input error (§7) rather than
// silently falling back to the default visibility during application.
func validVisibility(s string) bool {
	switch {
	case equalFoldAny(s, "private", "package", "protected", "public", "export"):
		return true
	default:
		return false
	}
}

func equalFoldAny(s string, opts ...string) bool {
	for _, o := range opts {
		if len(s) == len(o) && strings.EqualFold(s, o) {
			return true
		}
	}
	return false
}

func parseAttributes(path, qualifiedName string, obj gjson.Result) (Attributes, error) {
	var a Attributes
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if !recognizedAttrKeys[k] {
			err = fmt.Errorf("%s: %s: unrecognized attribute %q", path, qualifiedName, k)
			return false
		}
		switch k {
		case "bound":
			b := value.Bool()
			a.Bound = &b
		case "target_module":
			s := value.String()
			a.TargetModule = &s
		case "visibility":
			s := value.String()
			if !validVisibility(s) {
				err = fmt.Errorf("%s: %s: malformed visibility %q", path, qualifiedName, s)
				return false
			}
			a.Visibility = &s
		case "remove_prefix":
			s := value.String()
			a.RemovePrefix = &s
		case "strategy":
			strat := Strategy{
				Name:  value.Get("name").String(),
				DDecl: value.Get("d_decl").String(),
				IsRef: value.Get("is_ref_type").Bool(),
			}
			if strat.Name == "replace" && strat.DDecl == "" {
				err = fmt.Errorf("%s: %s: strategy \"replace\" requires a companion d_decl", path, qualifiedName)
				return false
			}
			a.Strategy = &strat
		}
		return true
	})
	return a, err
}
