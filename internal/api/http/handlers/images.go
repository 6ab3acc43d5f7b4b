package handlers

import (
	"time"

	"github.com/spec-kit/hospital-record-service/internal/api/dto"
)

func newImageResponse(id int64, imageURL string, testID, patientID int64, createdAt time.Time) dto.ImageResponse {
	return dto.ImageResponse{
		ID:        id,
		ImageURL:  imageURL,
		TestID:    testID,
		PatientID: patientID,
		CreatedAt: createdAt,
	}
}
