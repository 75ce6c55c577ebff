package enum

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the adapter's failure modes.
var (
	// ErrConfig is returned when a mapping names a type that is not
	// registered or does not implement Type.
	ErrConfig = errors.New("enum: type is not enumerable")

	// ErrNotNullable is returned when a write on a non-nullable field
	// resolves to nil.
	ErrNotNullable = errors.New("enum: field is not nullable")

	// ErrMismatch is returned when a coerced value is not a member of the
	// field's declared enum type.
	ErrMismatch = errors.New("enum: value type mismatch")

	// ErrUnknownField is returned when a scope helper is invoked for a
	// field absent from the mapping.
	ErrUnknownField = errors.New("enum: no such enum field")
)

// ConfigError reports a mapping whose declared type cannot serve as an enum
// type. It is raised on the first access of the field that names the type.
type ConfigError struct {
	name   string
	reason string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("enum: type %q is not enumerable: %s", e.name, e.reason)
}

// Is reports whether the target error matches ConfigError.
// This allows errors.Is(configErr, ErrConfig) to return true.
func (e *ConfigError) Is(err error) bool {
	return err == ErrConfig
}

// TypeName returns the identifier of the offending type.
func (e *ConfigError) TypeName() string {
	return e.name
}

// NewConfigError returns a new ConfigError for the given type identifier.
func NewConfigError(name, reason string) *ConfigError {
	return &ConfigError{name: name, reason: reason}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e) || errors.Is(err, ErrConfig)
}

// NotNullableError reports a nil value written to a field whose mapping does
// not carry the nullable modifier.
type NotNullableError struct {
	host  string
	field string
}

// Error returns the error string.
func (e *NotNullableError) Error() string {
	return fmt.Sprintf("enum: field %q on %s is not nullable", e.field, e.host)
}

// Is reports whether the target error matches NotNullableError.
func (e *NotNullableError) Is(err error) bool {
	return err == ErrNotNullable
}

// Field returns the field name.
func (e *NotNullableError) Field() string {
	return e.field
}

// NewNotNullableError returns a new NotNullableError for the given host
// record type and field.
func NewNotNullableError(host, field string) *NotNullableError {
	return &NotNullableError{host: host, field: field}
}

// IsNotNullable returns true if the error is a NotNullableError.
func IsNotNullable(err error) bool {
	if err == nil {
		return false
	}
	var e *NotNullableError
	return errors.As(err, &e) || errors.Is(err, ErrNotNullable)
}

// MismatchError reports a value whose type is not the enum type declared for
// the field. It carries the host record type, the field name, and the
// expected and actual types for diagnostics.
type MismatchError struct {
	host  string
	field string
	want  string
	got   string
}

// Error returns the error string.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("enum: invalid value for field %q on %s: want %s, got %s", e.field, e.host, e.want, e.got)
}

// Is reports whether the target error matches MismatchError.
func (e *MismatchError) Is(err error) bool {
	return err == ErrMismatch
}

// Field returns the field name.
func (e *MismatchError) Field() string {
	return e.field
}

// Want returns the declared enum type identifier.
func (e *MismatchError) Want() string {
	return e.want
}

// Got returns the actual type of the rejected value.
func (e *MismatchError) Got() string {
	return e.got
}

// NewMismatchError returns a new MismatchError.
func NewMismatchError(host, field, want, got string) *MismatchError {
	return &MismatchError{host: host, field: field, want: want, got: got}
}

// IsMismatch returns true if the error is a MismatchError.
func IsMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *MismatchError
	return errors.As(err, &e) || errors.Is(err, ErrMismatch)
}

// UnknownFieldError reports a scope helper invoked for a field that the host
// record does not declare as enum-mapped.
type UnknownFieldError struct {
	host  string
	field string
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("enum: no enum field %q declared on %s", e.field, e.host)
}

// Is reports whether the target error matches UnknownFieldError.
func (e *UnknownFieldError) Is(err error) bool {
	return err == ErrUnknownField
}

// Field returns the field name.
func (e *UnknownFieldError) Field() string {
	return e.field
}

// NewUnknownFieldError returns a new UnknownFieldError for the given host
// record type and field.
func NewUnknownFieldError(host, field string) *UnknownFieldError {
	return &UnknownFieldError{host: host, field: field}
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownField)
}
