package dto

// ── auth module requests ──

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterRequest creates an account from an invitation token.
type RegisterRequest struct {
	InvitationToken string `json:"invitation_token" binding:"required"`
	FullName        string `json:"full_name"        binding:"required,min=2,max=150"`
	Password        string `json:"password"         binding:"required,min=8,max=72"`
	Phone           string `json:"phone"            binding:"omitempty,max=50"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest updates the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// ── auth module responses ──

// TokenResponse is an access/refresh token pair.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}
