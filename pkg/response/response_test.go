package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"unauthorized range", apperrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"expired token", apperrors.ErrCodeTokenExpired, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrCodeForbidden, http.StatusForbidden},
		{"not found", apperrors.ErrCodeProductNotFound, http.StatusNotFound},
		{"business rule", apperrors.ErrCodeInsufficientStock, http.StatusBadRequest},
		{"bind error", apperrors.ErrCodeBindError, http.StatusBadRequest},
		{"internal", apperrors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpStatus(tt.code))
		})
	}
}

func TestNewPageData(t *testing.T) {
	pd := NewPageData(nil, 45, 2, 20)
	assert.Equal(t, 3, pd.TotalPages)

	pd = NewPageData(nil, 40, 1, 20)
	assert.Equal(t, 2, pd.TotalPages)

	pd = NewPageData(nil, 0, 1, 20)
	assert.Equal(t, 0, pd.TotalPages)
}
