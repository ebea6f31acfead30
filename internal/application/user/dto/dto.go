package dto

import (
	"time"

	"codergrounds/internal/domain/user"
)

// RegisterRequest represents the request to register with email and password
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=39"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the request to log in with password.
// Identifier accepts either email or username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the request to change the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UserResponse is the public projection of a user. Password hash and token
// version never leave the application layer.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse carries the public user and the access token. The refresh
// token travels separately as an HttpOnly cookie.
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
}

// OAuthURLResponse carries the provider consent URL for the client redirect
type OAuthURLResponse struct {
	URL string `json:"url"`
}

// ToUserResponse converts a domain user to its public projection
func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.AvatarURL != nil {
		resp.AvatarURL = *u.AvatarURL
	}
	return resp
}
