// AngelaMos | 2026
// service.go

package ob

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create books an entry. The recording officer comes from the session.
func (s *Service) Create(
	ctx context.Context,
	recordingOfficerID int,
	req CreateEntryRequest,
) (*Entry, error) {
	e := &Entry{
		Type:               req.Type,
		Description:        req.Description,
		ReportedBy:         req.ReportedBy,
		Location:           req.Location,
		RecordingOfficerID: recordingOfficerID,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(
	ctx context.Context,
	id int,
	req UpdateEntryRequest,
) (*Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.ReportedBy != nil {
		e.ReportedBy = *req.ReportedBy
	}
	if req.Location != nil {
		e.Location = req.Location
	}
	if req.Status != nil {
		e.Status = *req.Status
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
