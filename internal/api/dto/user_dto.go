package dto

import (
	"time"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// UserCreateRequest payload for account registration.
type UserCreateRequest struct {
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	DOB        string  `json:"dob"`
	Gender     string  `json:"gender"`
	Contact    string  `json:"contact"`
	Address    string  `json:"address"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	HospitalID *int64  `json:"hospital_id"`
}

// UserResponse is the account representation returned to clients. The
// credential digest never leaves the service.
type UserResponse struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	FirstName       string    `json:"first_name"`
	MiddleName      *string   `json:"middle_name,omitempty"`
	LastName        string    `json:"last_name"`
	DOB             string    `json:"dob"`
	Gender          string    `json:"gender"`
	Contact         string    `json:"contact"`
	Address         string    `json:"address"`
	Email           string    `json:"email"`
	IsAdmin         bool      `json:"is_admin"`
	IsHospitalAdmin bool      `json:"is_hospital_admin"`
	HospitalID      *int64    `json:"hospital_id,omitempty"`
	EmailVerified   bool      `json:"email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewUserResponse maps the domain model.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		FirstName:       user.FirstName,
		MiddleName:      user.MiddleName,
		LastName:        user.LastName,
		DOB:             user.DOB.Format("2006-01-02"),
		Gender:          user.Gender,
		Contact:         user.Contact,
		Address:         user.Address,
		Email:           user.Email,
		IsAdmin:         user.IsAdmin,
		IsHospitalAdmin: user.IsHospitalAdmin,
		HospitalID:      user.HospitalID,
		EmailVerified:   user.EmailVerified,
		CreatedAt:       user.CreatedAt,
	}
}
