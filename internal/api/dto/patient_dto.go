package dto

import (
	"time"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// PatientRequest payload for admission/update.
type PatientRequest struct {
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	DOB        string  `json:"dob"`
	Gender     string  `json:"gender"`
	Contact    string  `json:"contact"`
	Address    string  `json:"address"`
	HospitalID int64   `json:"hospital_id"`
}

// PatientResponse representation returned to clients.
type PatientResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	DOB        string    `json:"dob"`
	Gender     string    `json:"gender"`
	Contact    string    `json:"contact"`
	Address    string    `json:"address"`
	HospitalID int64     `json:"hospital_id"`
	UserID     int64     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPatientResponse maps the domain model.
func NewPatientResponse(patient *domain.Patient) PatientResponse {
	return PatientResponse{
		ID:         patient.ID,
		FirstName:  patient.FirstName,
		MiddleName: patient.MiddleName,
		LastName:   patient.LastName,
		DOB:        patient.DOB.Format("2006-01-02"),
		Gender:     patient.Gender,
		Contact:    patient.Contact,
		Address:    patient.Address,
		HospitalID: patient.HospitalID,
		UserID:     patient.UserID,
		CreatedAt:  patient.CreatedAt,
	}
}
