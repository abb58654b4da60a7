package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/category"
)

// CategoryUseCase manages the catalog tree.
type CategoryUseCase struct {
	categoryRepo category.Repository
	categorySvc  *category.Service
}

func NewCategoryUseCase(categoryRepo category.Repository, categorySvc *category.Service) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, categorySvc: categorySvc}
}

type CategoryInput struct {
	Name     string
	Slug     string
	ParentID *uint
	Active   bool
}

// Create adds a category. An empty slug is derived from the name; a
// duplicate slug surfaces as category.ErrSlugTaken.
func (uc *CategoryUseCase) Create(ctx context.Context, in CategoryInput) (*category.Category, error) {
	if in.ParentID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *in.ParentID); err != nil {
			return nil, err
		}
	}

	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}
	c := category.NewCategory(in.Name, slug, in.ParentID)
	c.Active = in.Active
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update edits a category. Re-parenting is checked against the tree so a
// category can never become its own ancestor.
func (uc *CategoryUseCase) Update(ctx context.Context, id uint, in CategoryInput) (*category.Category, error) {
	c, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.categorySvc.EnsureNoCycle(ctx, id, in.ParentID); err != nil {
		return nil, err
	}

	c.Name = in.Name
	if in.Slug != "" {
		c.Slug = in.Slug
	}
	c.ParentID = in.ParentID
	c.Active = in.Active
	c.UpdatedAt = time.Now()

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id uint) error {
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*category.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// Slugify turns a display name into a URL slug: lowercase, spaces to
// dashes, accents and punctuation stripped.
func Slugify(name string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	)
	name = replacer.Replace(strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
