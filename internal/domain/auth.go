package domain

// PrivilegeSnapshot is the point-in-time copy of an account's admin and
// hospital-scope flags carried inside an access token.
type PrivilegeSnapshot struct {
	IsAdmin         bool
	IsHospitalAdmin bool
	HospitalID      *int64
}
