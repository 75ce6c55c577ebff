package enum

import "fmt"

// Attributes is the enum attribute adapter for a single host record. It
// holds no mutable state of its own: every call is a direct transformation
// of its inputs plus the host record's storage and cast declarations.
type Attributes struct {
	host  Record
	reg   *Registry
	specs map[string]Spec
}

// Option configures an Attributes adapter.
type Option func(*Attributes)

// WithRegistry resolves mapping-spec identifiers through r instead of the
// default registry.
func WithRegistry(r *Registry) Option {
	return func(a *Attributes) {
		a.reg = r
	}
}

// New returns an adapter for host. The host's declared mapping is parsed
// once here; enum types named by the mapping are resolved lazily on first
// use of their field.
func New(host Record, opts ...Option) *Attributes {
	a := &Attributes{
		host:  host,
		reg:   defaultRegistry,
		specs: parseMapping(host.EnumMapping()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsEnumAttribute reports whether field is enum-mapped on the host.
func (a *Attributes) IsEnumAttribute(field string) bool {
	_, ok := a.specs[field]
	return ok
}

// EnumType resolves the enum type declared for field. It returns an
// UnknownFieldError for unmapped fields and a ConfigError when the declared
// identifier does not resolve to an enum type.
func (a *Attributes) EnumType(field string) (Type, error) {
	spec, ok := a.specs[field]
	if !ok {
		return nil, NewUnknownFieldError(a.hostName(), field)
	}
	return a.reg.Lookup(spec.Type)
}

// Get reads field from the host. Unmapped fields return the raw primitive
// unchanged. A nil value on a nullable field returns nil without coercion;
// otherwise the stored primitive is materialized into a member of the
// declared enum type, with factory failures propagated verbatim.
func (a *Attributes) Get(field string) (any, error) {
	raw := a.host.RawGet(field)
	if !a.IsEnumAttribute(field) {
		return raw, nil
	}
	if a.nullableNil(field, raw) {
		return nil, nil
	}
	t, err := a.EnumType(field)
	if err != nil {
		return nil, err
	}
	return t.Make(raw)
}

// Set writes v to field on the host. Unmapped fields are written through
// unchanged. A nil value on a nullable field is a no-op that leaves storage
// untouched. Otherwise v is coerced to a member of the declared enum type
// and its storage primitive is written. Failure is detected before the raw
// write, so a failed Set never modifies storage.
func (a *Attributes) Set(field string, v any) error {
	if !a.IsEnumAttribute(field) {
		a.host.RawSet(field, v)
		return nil
	}
	if a.nullableNil(field, v) {
		return nil
	}
	t, err := a.EnumType(field)
	if err != nil {
		return err
	}
	e, err := a.coerce(t, field, v)
	if err != nil {
		return err
	}
	a.host.RawSet(field, a.storage(field, e))
	return nil
}

// nullableNil reports whether field is declared nullable and v is nil. Both
// conditions must hold for nil to bypass coercion; a nil on a non-nullable
// field still reaches the write path and fails there.
func (a *Attributes) nullableNil(field string, v any) bool {
	spec, ok := a.specs[field]
	return ok && spec.Nullable && v == nil
}

// coerce turns v into a member of t. Primitives go through the type's
// factory, members of t pass through, and everything else is rejected.
func (a *Attributes) coerce(t Type, field string, v any) (Enumerable, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, string:
		e, err := t.Make(v)
		if err != nil {
			return nil, err
		}
		v = e
	}
	if v == nil {
		return nil, NewNotNullableError(a.hostName(), field)
	}
	e, ok := v.(Enumerable)
	if !ok || !t.Is(v) {
		return nil, NewMismatchError(a.hostName(), field, t.String(), fmt.Sprintf("%T", v))
	}
	return e, nil
}

// storage returns the primitive persisted for a member of field: the index
// under an integer cast, the symbolic value otherwise. The cast declaration
// is re-queried on every call rather than cached.
func (a *Attributes) storage(field string, e Enumerable) any {
	if a.host.HasIntegerCast(field) {
		return e.Index()
	}
	return e.Value()
}

func (a *Attributes) hostName() string {
	return fmt.Sprintf("%T", a.host)
}
