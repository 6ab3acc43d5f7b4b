package domain

import "time"

// Patient is an individual receiving care at a hospital. UserID records the
// staff account that registered the patient.
type Patient struct {
	ID         int64
	FirstName  string
	MiddleName *string
	LastName   string
	DOB        time.Time
	Gender     string
	Contact    string
	Address    string
	HospitalID int64
	UserID     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
