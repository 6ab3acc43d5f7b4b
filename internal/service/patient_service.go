package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/repository"
)

// PatientService manages patient records scoped to a hospital.
type PatientService struct {
	patients  repository.PatientRepository
	hospitals repository.HospitalRepository
}

// NewPatientService builds the service.
func NewPatientService(patients repository.PatientRepository, hospitals repository.HospitalRepository) *PatientService {
	return &PatientService{patients: patients, hospitals: hospitals}
}

// Register admits a patient to a hospital.
func (s *PatientService) Register(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if _, err := s.hospitals.GetByID(ctx, patient.HospitalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Update overwrites a patient's personal details.
func (s *PatientService) Update(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	existing, err := s.patients.GetByID(ctx, patient.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	existing.FirstName = patient.FirstName
	existing.MiddleName = patient.MiddleName
	existing.LastName = patient.LastName
	existing.DOB = patient.DOB
	existing.Gender = patient.Gender
	existing.Contact = patient.Contact
	existing.Address = patient.Address
	if err := s.patients.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a patient record.
func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPatientNotFound
		}
		return err
	}
	return nil
}

// GetByID fetches one patient.
func (s *PatientService) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// ListByHospital pages through a hospital's patients.
func (s *PatientService) ListByHospital(ctx context.Context, hospitalID int64, limit, offset int) ([]domain.Patient, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.patients.ListByHospital(ctx, hospitalID, limit, offset)
}
