package order

import (
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Order domain errors.
var (
	ErrNotFound = apperrors.ErrOrderNotFound

	// ErrCannotCancel is returned when cancelling a shipped, delivered,
	// returned or already-cancelled order.
	ErrCannotCancel = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "la orden no puede cancelarse en su estado actual")

	// ErrUnknownStatus is returned for an unrecognized estado parameter.
	ErrUnknownStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "estado de orden desconocido")

	// ErrEmptyCart is returned when a checkout carries no lines.
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeInvalidParams, "la orden debe tener al menos una línea")

	// ErrInvalidQuantity is returned for a line with quantity below one.
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "la cantidad debe ser mayor a cero")
)
