// AngelaMos | 2026
// service.go

package plates

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a plate. The registering user comes from the session; the
// repository rejects a duplicate plate number.
func (s *Service) Create(
	ctx context.Context,
	addedByID int,
	req CreatePlateRequest,
) (*LicensePlate, error) {
	p := &LicensePlate{
		PlateNumber:    req.PlateNumber,
		OwnerName:      req.OwnerName,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		IDNumber:       req.IDNumber,
		PassportNumber: req.PassportNumber,
		AddedByID:      addedByID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*LicensePlate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByPlateNumber(
	ctx context.Context,
	plateNumber string,
) (*LicensePlate, error) {
	return s.repo.GetByPlateNumber(ctx, plateNumber)
}

func (s *Service) List(ctx context.Context) ([]LicensePlate, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(
	ctx context.Context,
	id int,
	req UpdatePlateRequest,
) (*LicensePlate, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlateNumber != nil {
		p.PlateNumber = *req.PlateNumber
	}
	if req.OwnerName != nil {
		p.OwnerName = *req.OwnerName
	}
	if req.FatherName != nil {
		p.FatherName = req.FatherName
	}
	if req.MotherName != nil {
		p.MotherName = req.MotherName
	}
	if req.IDNumber != nil {
		p.IDNumber = req.IDNumber
	}
	if req.PassportNumber != nil {
		p.PassportNumber = req.PassportNumber
	}
	if req.OwnerImage != nil {
		p.OwnerImage = req.OwnerImage
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
