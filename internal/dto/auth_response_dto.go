package dto

// LoginRequest carries cashier/owner credentials. Shift is required for
// cashier sessions; it seeds the shift on every transaction the session opens.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Shift    string `json:"shift" binding:"omitempty,oneof=MORNING NIGHT"`
}

// LoginResponse is the token pair issued for a session.
type LoginResponse struct {
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	Employee     EmployeeResponse `json:"employee"`
}

// RefreshTokenRequest rotates a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
