package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	enum "github.com/rossjcooper/laravel-enum"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     string
		typeName string
		nullable bool
	}{
		{"Status", "Status", false},
		{"Status:nullable", "Status", true},
		// Only the literal suffix enables the nullable bypass; a typo
		// must not silently swallow nil writes.
		{"Status:Nullable", "Status", false},
		{"Status:NULLABLE", "Status", false},
		{"Status:nullablee", "Status", false},
		{"Status:optional", "Status", false},
		{"Status:", "Status", false},
		// The identifier is the portion before the first colon.
		{"Status:nullable:extra", "Status", false},
		{"", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()
			spec := enum.ParseSpec(tt.spec)
			assert.Equal(t, tt.typeName, spec.Type)
			assert.Equal(t, tt.nullable, spec.Nullable)
		})
	}
}

func TestSpecString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Status", enum.Spec{Type: "Status"}.String())
	assert.Equal(t, "Status:nullable", enum.Spec{Type: "Status", Nullable: true}.String())

	// Round-trip through the declared syntax.
	for _, s := range []string{"Status", "Status:nullable"} {
		assert.Equal(t, s, enum.ParseSpec(s).String())
	}
}
