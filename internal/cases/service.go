// AngelaMos | 2026
// service.go

package cases

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a case. The author comes from the session, never the payload.
func (s *Service) Create(
	ctx context.Context,
	createdByID int,
	req CreateCaseRequest,
) (*Case, error) {
	c := &Case{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedByID: createdByID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Case, error) {
	return s.repo.List(ctx)
}

// Update merges the non-nil fields over the existing record.
func (s *Service) Update(
	ctx context.Context,
	id int,
	req UpdateCaseRequest,
) (*Case, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.AssignedOfficerID != nil {
		c.AssignedOfficerID = req.AssignedOfficerID
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
