package enum

import "reflect"

// Builder is the query-builder contract the scope helpers drive. Each
// predicate method takes a field name and the normalized list of storage
// primitives and returns the builder for chaining.
type Builder interface {
	WhereIn(field string, vs ...any) Builder
	WhereNotIn(field string, vs ...any) Builder
	OrWhereIn(field string, vs ...any) Builder
	OrWhereNotIn(field string, vs ...any) Builder
}

// WhereEnum adds an include-list predicate on field to b. Candidates may be
// raw primitives, enum members, or slices of either; every candidate is
// normalized to the exact primitive persisted for the field before the
// builder is touched.
func (a *Attributes) WhereEnum(b Builder, field string, vs ...any) error {
	list, err := a.queryValues(field, vs)
	if err != nil {
		return err
	}
	b.WhereIn(field, list...)
	return nil
}

// WhereNotEnum adds an exclude-list predicate on field to b.
func (a *Attributes) WhereNotEnum(b Builder, field string, vs ...any) error {
	list, err := a.queryValues(field, vs)
	if err != nil {
		return err
	}
	b.WhereNotIn(field, list...)
	return nil
}

// OrWhereEnum adds an or-combined include-list predicate on field to b.
func (a *Attributes) OrWhereEnum(b Builder, field string, vs ...any) error {
	list, err := a.queryValues(field, vs)
	if err != nil {
		return err
	}
	b.OrWhereIn(field, list...)
	return nil
}

// OrWhereNotEnum adds an or-combined exclude-list predicate on field to b.
func (a *Attributes) OrWhereNotEnum(b Builder, field string, vs ...any) error {
	list, err := a.queryValues(field, vs)
	if err != nil {
		return err
	}
	b.OrWhereNotIn(field, list...)
	return nil
}

// queryValues normalizes scope candidates into the list of storage
// primitives for field. The whole list is materialized before any builder
// call, so a failed candidate leaves the builder untouched.
func (a *Attributes) queryValues(field string, vs []any) ([]any, error) {
	if !a.IsEnumAttribute(field) {
		return nil, NewUnknownFieldError(a.hostName(), field)
	}
	t, err := a.EnumType(field)
	if err != nil {
		return nil, err
	}
	flat := flatten(vs)
	out := make([]any, 0, len(flat))
	for _, v := range flat {
		if a.nullableNil(field, v) {
			out = append(out, nil)
			continue
		}
		e, err := a.coerce(t, field, v)
		if err != nil {
			return nil, err
		}
		out = append(out, a.storage(field, e))
	}
	return out, nil
}

// flatten expands slice candidates one level, so callers can pass values
// singly or as a list. Byte slices count as scalars.
func flatten(vs []any) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		if _, ok := v.([]byte); ok {
			out = append(out, v)
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface())
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
