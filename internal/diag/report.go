package diag

import "github.com/goccy/go-yaml"

// Report summarizes one run for the optional `--report PATH` flag, which
// writes it as YAML (§10,
// §11's domain-stack entry for goccy/go-yaml): counts of wrapped
// declarations and types by kind and strategy, plus diagnostic totals.
// A small supplement in the spirit of the teacher's CLI verbosity flags,
// not part of the core translation contract. Built by pipeline.BuildReport,
// which has visibility into the decl/type tables this package does not;
// kept here only because its serialization (ToYAML) belongs with the rest
// of this package's diagnostic-formatting responsibility.
type Report struct {
	Declarations map[string]int `yaml:"declarations"`
	Types        map[string]int `yaml:"types"`
	Strategies   map[string]int `yaml:"strategies"`
	Warnings     int            `yaml:"warnings"`
	Errors       int            `yaml:"errors"`
}

// ToYAML renders the report with goccy/go-yaml.
func (r *Report) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
