package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the upstream token contract: both tokens plus the
// non-secret privilege snapshot for client display.
type LoginResponse struct {
	Message         string `json:"message"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	TokenType       string `json:"token_type"`
	User            string `json:"user"`
	IsAdmin         bool   `json:"is_admin"`
	IsHospitalAdmin bool   `json:"is_hospital_admin"`
	HospitalID      *int64 `json:"hospital_id"`
}

// RefreshRequest payload for token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse carries the newly minted access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordResetRequest payload to start a reset flow.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest payload to finish a reset flow.
type PasswordResetConfirmRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
