package category

import (
	"context"
)

// Service enforces the tree rules the repository alone cannot express.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureNoCycle rejects a parent assignment that would make the category its
// own ancestor. It walks the parent chain from the proposed parent up to a
// root; finding the category itself on the way means a cycle.
func (s *Service) EnsureNoCycle(ctx context.Context, id uint, parentID *uint) error {
	for parentID != nil {
		if *parentID == id {
			return ErrCycle
		}
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			return err
		}
		parentID = parent.ParentID
	}
	return nil
}
