// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterRequest carries the registration field set. Username, password,
// first name, last name, phone number and billing address are all required;
// email is optional and stored empty when absent.
type RegisterRequest struct {
	Username       string `json:"username"        validate:"required,min=1,max=150"`
	Password       string `json:"password"        validate:"required,min=8,max=128"`
	FirstName      string `json:"first_name"      validate:"required,min=1,max=100"`
	LastName       string `json:"last_name"       validate:"required,min=1,max=100"`
	PhoneNumber    string `json:"phone_number"    validate:"required,min=1,max=20"`
	BillingAddress string `json:"billing_address" validate:"required,min=1,max=500"`
	Email          string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsAdmin        bool   `json:"is_admin,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsAdmin     bool   `json:"is_admin"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// RegisterResponse acknowledges account creation without echoing tokens or
// any credential material.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionsResponse struct {
	Sessions []SessionInfo `json:"sessions"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}
