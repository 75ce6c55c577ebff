package gen

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Manifest is the declarative description of the enum types to generate.
//
//	package: shop
//	enums:
//	  - name: Status
//	    values: [draft, published]
//	  - name: Priority
//	    values:
//	      - name: VeryHigh
//	        value: very_high
type Manifest struct {
	// Package is the name of the generated Go package.
	Package string `yaml:"package"`

	// Enums lists the enum types to generate.
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef declares a single enum type.
type EnumDef struct {
	// Name is the Go type name, also used as the registry identifier.
	Name string `yaml:"name"`

	// Values lists the members in index order.
	Values []ValueDef `yaml:"values"`
}

// ValueDef declares a single member. In YAML it is either a plain scalar
// (the symbolic value, with the member name derived from it) or a mapping
// with explicit name and value.
type ValueDef struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (v *ValueDef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		v.Name, v.Value = "", n.Value
		return nil
	}
	type plain ValueDef
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*v = ValueDef(p)
	return nil
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("gen: parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate rejects manifests that would generate uncompilable or colliding
// code before any file is written.
func (m *Manifest) validate() error {
	if !identRe.MatchString(m.Package) {
		return fmt.Errorf("gen: invalid package name %q", m.Package)
	}
	if len(m.Enums) == 0 {
		return fmt.Errorf("gen: manifest declares no enums")
	}
	names := make(map[string]struct{}, len(m.Enums))
	for _, e := range m.Enums {
		if !identRe.MatchString(e.Name) {
			return fmt.Errorf("gen: invalid enum name %q", e.Name)
		}
		if _, ok := names[e.Name]; ok {
			return fmt.Errorf("gen: duplicate enum %q", e.Name)
		}
		names[e.Name] = struct{}{}
		if len(e.Values) == 0 {
			return fmt.Errorf("gen: enum %q declares no values", e.Name)
		}
		values := make(map[string]struct{}, len(e.Values))
		for _, v := range e.Values {
			if v.Name == "" && v.Value == "" {
				return fmt.Errorf("gen: enum %q has an empty value", e.Name)
			}
			val := v.symbolic()
			if _, ok := values[val]; ok {
				return fmt.Errorf("gen: enum %q has duplicate value %q", e.Name, val)
			}
			values[val] = struct{}{}
		}
	}
	return nil
}
