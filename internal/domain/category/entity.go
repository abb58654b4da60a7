package category

import (
	"time"
)

// Category is a node in the catalog tree. ParentID is nil for root
// categories; the tree is kept acyclic on write.
type Category struct {
	ID       uint
	Name     string
	Slug     string
	ParentID *uint
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates an active category.
func NewCategory(name, slug string, parentID *uint) *Category {
	now := time.Now()
	return &Category{
		Name:      name,
		Slug:      slug,
		ParentID:  parentID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
