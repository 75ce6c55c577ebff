// Package enum lets a record model expose attributes as enumerated value
// objects while storing them as primitive integers or strings.
//
// A record declares which of its fields are enum-typed with a mapping from
// field name to a spec string of the form "Status" or "Status:nullable".
// The Attributes adapter intercepts reads and writes of those fields,
// converting between the enum representation and its storage primitive, and
// normalizes query predicates so that their values always match the
// representation actually persisted for the field.
package enum

import (
	"fmt"
	"sync"
)

// Enumerable is a single member of an enum type. Every member carries two
// storage projections: an integer index and a symbolic string value.
type Enumerable interface {
	// Index returns the integer position of the member within its type.
	Index() int

	// Value returns the symbolic string value of the member.
	Value() string
}

// Type describes an enum type: it constructs members from storage primitives
// and reports whether an arbitrary value belongs to the type.
type Type interface {
	// Make constructs a member from a primitive (integer index or string
	// value). It fails if the primitive is not recognized by the type.
	Make(v any) (Enumerable, error)

	// Is reports whether v is a member of this type.
	Is(v any) bool

	// String returns the type identifier used in mapping specs.
	String() string
}

// typeOf adapts a concrete enum type E to the Type interface. Membership is
// a plain type assertion on E.
type typeOf[E Enumerable] struct {
	name string
	make func(any) (E, error)
}

// NewType returns a Type for the concrete enum type E. The name is the
// identifier used in mapping specs, and make constructs members from
// primitives.
func NewType[E Enumerable](name string, make func(any) (E, error)) Type {
	return typeOf[E]{name: name, make: make}
}

func (t typeOf[E]) Make(v any) (Enumerable, error) {
	e, err := t.make(v)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (t typeOf[E]) Is(v any) bool {
	_, ok := v.(E)
	return ok
}

func (t typeOf[E]) String() string { return t.name }

// Registry resolves mapping-spec identifiers to enum types. Registration
// accepts any value; whether it actually implements Type is checked lazily
// on first use, so a bad registration surfaces as a ConfigError at the first
// access of the field that names it.
type Registry struct {
	mu    sync.RWMutex
	types map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]any)}
}

// Register binds name to t. A later registration under the same name
// replaces the earlier one.
func (r *Registry) Register(name string, t any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = t
}

// Lookup resolves name to a Type. It returns a ConfigError if nothing is
// registered under name or the registered value does not implement Type.
func (r *Registry) Lookup(name string) (Type, error) {
	r.mu.RLock()
	v, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, NewConfigError(name, "not registered")
	}
	t, ok := v.(Type)
	if !ok {
		return nil, NewConfigError(name, fmt.Sprintf("%T does not implement enum.Type", v))
	}
	return t, nil
}

// defaultRegistry serves mappings that do not name their own registry.
var defaultRegistry = NewRegistry()

// Register binds name to t in the default registry. Generated enum packages
// call this from their init functions.
func Register(name string, t any) {
	defaultRegistry.Register(name, t)
}
