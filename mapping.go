package enum

import "strings"

// NullableSuffix is the only spec suffix that marks a field nullable.
// Any other suffix leaves the field non-nullable.
const NullableSuffix = "nullable"

// Spec is a parsed field mapping spec. The declared syntax is a string of
// the form "Status" or "Status:nullable"; Spec is its structured form,
// parsed once when the adapter is constructed.
type Spec struct {
	// Type is the enum type identifier, resolved through a Registry on
	// first use.
	Type string

	// Nullable reports whether nil values bypass coercion for the field.
	Nullable bool
}

// ParseSpec parses a mapping spec string. The type identifier is the portion
// before the first colon. The field is nullable only when the suffix after
// the colon is exactly NullableSuffix; any other suffix yields a
// non-nullable spec.
func ParseSpec(s string) Spec {
	name, suffix, ok := strings.Cut(s, ":")
	if !ok {
		return Spec{Type: s}
	}
	return Spec{Type: name, Nullable: suffix == NullableSuffix}
}

// String returns the spec in its declared string syntax.
func (s Spec) String() string {
	if s.Nullable {
		return s.Type + ":" + NullableSuffix
	}
	return s.Type
}

// parseMapping parses a declared field mapping into its structured form.
func parseMapping(mapping map[string]string) map[string]Spec {
	specs := make(map[string]Spec, len(mapping))
	for field, s := range mapping {
		specs[field] = ParseSpec(s)
	}
	return specs
}
