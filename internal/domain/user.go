package domain

import "time"

// User is the domain model for system accounts: system admins, hospital
// admins and hospital staff. Staff accounts are scoped to exactly one
// hospital; system admins carry no hospital affiliation.
type User struct {
	ID              int64
	Username        string
	FirstName       string
	MiddleName      *string
	LastName        string
	DOB             time.Time
	Gender          string
	Contact         string
	Address         string
	Email           string
	PasswordHash    string
	IsAdmin         bool
	IsHospitalAdmin bool
	HospitalID      *int64
	EmailVerified   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins the name parts for display.
func (u *User) FullName() string {
	name := u.FirstName
	if u.MiddleName != nil && *u.MiddleName != "" {
		name += " " + *u.MiddleName
	}
	return name + " " + u.LastName
}

// Snapshot captures the account's privilege flags for embedding in an
// access token. The copy is taken at issuance time and is not re-read on
// every request; staleness is bounded by the token lifetime.
func (u *User) Snapshot() PrivilegeSnapshot {
	return PrivilegeSnapshot{
		IsAdmin:         u.IsAdmin,
		IsHospitalAdmin: u.IsHospitalAdmin,
		HospitalID:      u.HospitalID,
	}
}
