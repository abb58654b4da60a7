package category

import (
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Category domain errors.
var (
	ErrNotFound  = apperrors.ErrCategoryNotFound
	ErrSlugTaken = apperrors.ErrSlugDuplicate

	// ErrCycle is returned when a parent assignment would make a category
	// its own ancestor.
	ErrCycle = apperrors.New(apperrors.ErrCodeCategoryCycle, "la categoría no puede ser su propio ancestro")
)
