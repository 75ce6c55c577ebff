package enum

// Record is the host contract the adapter operates through. The host owns
// raw attribute storage and cast metadata; the adapter reads and writes
// through this interface but never manages the record's lifecycle.
type Record interface {
	// RawGet returns the stored primitive for field, or nil when absent.
	RawGet(field string) any

	// RawSet writes a primitive into raw attribute storage.
	RawSet(field string, v any)

	// HasIntegerCast reports whether field is cast to an integer type.
	// An integer-cast field stores the member index; any other field
	// stores the symbolic value.
	HasIntegerCast(field string) bool

	// EnumMapping returns the declared field mapping. It is fixed at
	// record-type definition time and must not change afterwards.
	EnumMapping() map[string]string
}

// Model is a map-backed Record implementation. Concrete record types can
// embed it or use it directly; tests and examples use it as the host.
type Model struct {
	mapping map[string]string
	casts   map[string]struct{}
	attrs   map[string]any
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithIntegerCast declares an integer cast for the given fields.
func WithIntegerCast(fields ...string) ModelOption {
	return func(m *Model) {
		for _, f := range fields {
			m.casts[f] = struct{}{}
		}
	}
}

// WithAttributes seeds raw attribute storage, e.g. with a loaded row.
func WithAttributes(attrs map[string]any) ModelOption {
	return func(m *Model) {
		for f, v := range attrs {
			m.attrs[f] = v
		}
	}
}

// NewModel returns a Model with the given field mapping.
func NewModel(mapping map[string]string, opts ...ModelOption) *Model {
	m := &Model{
		mapping: mapping,
		casts:   make(map[string]struct{}),
		attrs:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RawGet returns the stored primitive for field, or nil when absent.
func (m *Model) RawGet(field string) any {
	return m.attrs[field]
}

// RawSet writes a primitive into raw attribute storage.
func (m *Model) RawSet(field string, v any) {
	m.attrs[field] = v
}

// HasIntegerCast reports whether field is cast to an integer type.
func (m *Model) HasIntegerCast(field string) bool {
	_, ok := m.casts[field]
	return ok
}

// EnumMapping returns the declared field mapping.
func (m *Model) EnumMapping() map[string]string {
	return m.mapping
}
