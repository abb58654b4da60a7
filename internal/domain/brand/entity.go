package brand

import (
	"time"
)

// Brand is a product manufacturer label.
type Brand struct {
	ID     uint
	Name   string
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBrand creates an active brand.
func NewBrand(name string) *Brand {
	now := time.Now()
	return &Brand{
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
