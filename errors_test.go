package enum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enum "github.com/rossjcooper/laravel-enum"
)

func TestConfigError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := enum.NewConfigError("Status", "not registered")
		assert.Equal(t, `enum: type "Status" is not enumerable: not registered`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := enum.NewConfigError("Status", "not registered")
		assert.True(t, errors.Is(err, enum.ErrConfig))
	})

	t.Run("IsConfigError", func(t *testing.T) {
		err := enum.NewConfigError("Status", "not registered")
		assert.True(t, enum.IsConfigError(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, enum.IsConfigError(wrapped))

		// Sentinel error
		assert.True(t, enum.IsConfigError(enum.ErrConfig))

		// Non-matching error
		assert.False(t, enum.IsConfigError(errors.New("other error")))
		assert.False(t, enum.IsConfigError(nil))
	})
}

func TestNotNullableError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := enum.NewNotNullableError("*enum.Model", "status")
		assert.Equal(t, `enum: field "status" on *enum.Model is not nullable`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := enum.NewNotNullableError("*enum.Model", "status")
		assert.True(t, errors.Is(err, enum.ErrNotNullable))
	})

	t.Run("IsNotNullable", func(t *testing.T) {
		err := enum.NewNotNullableError("*enum.Model", "status")
		assert.True(t, enum.IsNotNullable(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, enum.IsNotNullable(wrapped))

		assert.True(t, enum.IsNotNullable(enum.ErrNotNullable))

		assert.False(t, enum.IsNotNullable(errors.New("other error")))
		assert.False(t, enum.IsNotNullable(nil))
	})

	t.Run("Field", func(t *testing.T) {
		err := enum.NewNotNullableError("*enum.Model", "status")
		assert.Equal(t, "status", err.Field())
	})
}

func TestMismatchError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := enum.NewMismatchError("*enum.Model", "status", "Status", "enum_test.Role")
		assert.Equal(t, `enum: invalid value for field "status" on *enum.Model: want Status, got enum_test.Role`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := enum.NewMismatchError("*enum.Model", "status", "Status", "enum_test.Role")
		assert.True(t, errors.Is(err, enum.ErrMismatch))
	})

	t.Run("IsMismatch", func(t *testing.T) {
		err := enum.NewMismatchError("*enum.Model", "status", "Status", "enum_test.Role")
		assert.True(t, enum.IsMismatch(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, enum.IsMismatch(wrapped))

		assert.True(t, enum.IsMismatch(enum.ErrMismatch))

		assert.False(t, enum.IsMismatch(errors.New("other error")))
		assert.False(t, enum.IsMismatch(nil))
	})

	t.Run("Diagnostics", func(t *testing.T) {
		err := enum.NewMismatchError("*enum.Model", "status", "Status", "enum_test.Role")
		assert.Equal(t, "status", err.Field())
		assert.Equal(t, "Status", err.Want())
		assert.Equal(t, "enum_test.Role", err.Got())
	})
}

func TestUnknownFieldError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := enum.NewUnknownFieldError("*enum.Model", "stauts")
		assert.Equal(t, `enum: no enum field "stauts" declared on *enum.Model`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := enum.NewUnknownFieldError("*enum.Model", "stauts")
		assert.True(t, errors.Is(err, enum.ErrUnknownField))
	})

	t.Run("IsUnknownField", func(t *testing.T) {
		err := enum.NewUnknownFieldError("*enum.Model", "stauts")
		assert.True(t, enum.IsUnknownField(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, enum.IsUnknownField(wrapped))

		assert.True(t, enum.IsUnknownField(enum.ErrUnknownField))

		assert.False(t, enum.IsUnknownField(errors.New("other error")))
		assert.False(t, enum.IsUnknownField(nil))
	})
}

func TestErrorKindsAreDistinct(t *testing.T) {
	errs := []error{
		enum.NewConfigError("Status", "not registered"),
		enum.NewNotNullableError("*enum.Model", "status"),
		enum.NewMismatchError("*enum.Model", "status", "Status", "Role"),
		enum.NewUnknownFieldError("*enum.Model", "status"),
	}
	preds := []func(error) bool{
		enum.IsConfigError,
		enum.IsNotNullable,
		enum.IsMismatch,
		enum.IsUnknownField,
	}
	for i, err := range errs {
		for j, pred := range preds {
			require.Equal(t, i == j, pred(err), "errs[%d] vs preds[%d]", i, j)
		}
	}
}
