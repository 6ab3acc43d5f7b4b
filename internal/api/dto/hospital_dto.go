package dto

import (
	"time"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// HospitalRequest payload for create/update.
type HospitalRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Contact string  `json:"contact"`
	Email   *string `json:"email"`
}

// HospitalResponse representation returned to clients.
type HospitalResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHospitalResponse maps the domain model.
func NewHospitalResponse(hospital *domain.Hospital) HospitalResponse {
	return HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Address:   hospital.Address,
		Contact:   hospital.Contact,
		Email:     hospital.Email,
		CreatedAt: hospital.CreatedAt,
		UpdatedAt: hospital.UpdatedAt,
	}
}
