package product

import (
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Catalog domain errors.
var (
	ErrNotFound = apperrors.ErrProductNotFound
	ErrSKUTaken = apperrors.ErrSKUDuplicate

	// ErrInactive is returned when a deactivated product is put in a cart.
	ErrInactive = apperrors.New(apperrors.ErrCodeProductInactive, "el producto no está disponible")

	// ErrInsufficientStock is returned when a checkout asks for more units
	// than are in stock.
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "stock insuficiente")
)
