package dto

import (
	"time"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// TestCreateRequest payload for ordering a test.
type TestCreateRequest struct {
	Description *string `json:"description"`
}

// TestResultRequest payload for recording a result.
type TestResultRequest struct {
	Result string `json:"result"`
}

// TestResponse representation returned to clients.
type TestResponse struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description,omitempty"`
	Result      *string   `json:"result,omitempty"`
	PatientID   int64     `json:"patient_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTestResponse maps the domain model.
func NewTestResponse(test *domain.MedicalTest) TestResponse {
	return TestResponse{
		ID:          test.ID,
		Description: test.Description,
		Result:      test.Result,
		PatientID:   test.PatientID,
		CreatedAt:   test.CreatedAt,
		UpdatedAt:   test.UpdatedAt,
	}
}

// ImageResponse representation for stored images.
type ImageResponse struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"image_url"`
	TestID    int64     `json:"test_id"`
	PatientID int64     `json:"patient_id"`
	CreatedAt time.Time `json:"created_at"`
}
