package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New(ErrCodeNotFound, "no encontrado")
	assert.Equal(t, "[40400] no encontrado", e.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), "error de base de datos")
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
}

func TestGetAppError(t *testing.T) {
	t.Run("passes through AppError", func(t *testing.T) {
		got := GetAppError(ErrForbidden)
		assert.Equal(t, ErrCodeForbidden, got.Code)
	})

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("contexto: %w", ErrProductNotFound)
		got := GetAppError(err)
		assert.Equal(t, ErrCodeProductNotFound, got.Code)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		got := GetAppError(errors.New("algo raro"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		require.NotNil(t, got.Err)
	})
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrUnauthorized))
	assert.True(t, IsAppError(fmt.Errorf("x: %w", ErrUnauthorized)))
	assert.False(t, IsAppError(errors.New("plain")))
}
