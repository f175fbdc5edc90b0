package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/identity"
)

// SignUpInput contains registration data
type SignUpInput struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// SignUpResult is returned after a successful registration
type SignUpResult struct {
	User UserInfo `json:"user"`
	// ConfirmationRequired tells the client the account cannot sign in
	// until the email is confirmed
	ConfirmationRequired bool `json:"confirmation_required"`
}

// SignInInput contains login credentials
type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IP       string `json:"-"` // Set from the request, not the body
}

// SignInResult is returned after a successful login
type SignInResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResult is returned after a successful token refresh
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ConfirmEmailInput carries an email confirmation token
type ConfirmEmailInput struct {
	Token string `json:"token" binding:"required"`
}

// ResendConfirmationInput identifies the account to re-send the
// confirmation link to
type ResendConfirmationInput struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordResetInput identifies the account requesting a reset
type RequestPasswordResetInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput carries a reset token and the new password
type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserInfo represents the authenticated user in API responses
type UserInfo struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	EmailConfirmed bool       `json:"email_confirmed"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToUserInfo converts a domain User to UserInfo
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:             u.ID,
		Email:          u.Email,
		Status:         string(u.Status),
		EmailConfirmed: u.IsEmailConfirmed(),
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
	}
}
