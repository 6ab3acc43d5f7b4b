package domain

import "time"

// MedicalTest is a test ordered for a patient. Result stays nil until the
// test is read, either manually or by the analysis service.
type MedicalTest struct {
	ID          int64
	Description *string
	Result      *string
	PatientID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TestImage is an uploaded diagnostic image attached to a test.
type TestImage struct {
	ID        int64
	ImageURL  string
	TestID    int64
	PatientID int64
	CreatedAt time.Time
}

// ResultImage is an annotated output image produced for a test result.
type ResultImage struct {
	ID        int64
	ImageURL  string
	TestID    int64
	PatientID int64
	CreatedAt time.Time
}
