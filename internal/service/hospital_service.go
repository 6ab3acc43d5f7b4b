package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/repository"
)

// HospitalService manages hospital records.
type HospitalService struct {
	hospitals repository.HospitalRepository
}

// NewHospitalService builds the service.
func NewHospitalService(hospitals repository.HospitalRepository) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

// Create registers a new hospital, rejecting duplicates by name or email.
func (s *HospitalService) Create(ctx context.Context, hospital *domain.Hospital) (*domain.Hospital, error) {
	email := ""
	if hospital.Email != nil {
		email = *hospital.Email
	}
	if _, err := s.hospitals.GetByNameOrEmail(ctx, hospital.Name, email); err == nil {
		return nil, ErrHospitalExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

// Update overwrites an existing hospital.
func (s *HospitalService) Update(ctx context.Context, hospital *domain.Hospital) (*domain.Hospital, error) {
	existing, err := s.hospitals.GetByID(ctx, hospital.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	existing.Name = hospital.Name
	existing.Address = hospital.Address
	existing.Contact = hospital.Contact
	existing.Email = hospital.Email
	if err := s.hospitals.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a hospital.
func (s *HospitalService) Delete(ctx context.Context, id int64) error {
	if err := s.hospitals.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrHospitalNotFound
		}
		return err
	}
	return nil
}

// GetByID fetches one hospital.
func (s *HospitalService) GetByID(ctx context.Context, id int64) (*domain.Hospital, error) {
	hospital, err := s.hospitals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return hospital, nil
}

// List returns all hospitals.
func (s *HospitalService) List(ctx context.Context) ([]domain.Hospital, error) {
	return s.hospitals.List(ctx)
}
