package dto

// TokenRequest is the payload for POST /jwt. The role claim is advisory:
// privileged routes re-resolve the role from the user store.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=guest student teacher host admin"`
}

// TokenResponse confirms that the token cookie has been set
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}
