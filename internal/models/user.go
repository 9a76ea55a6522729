package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User is session-scoped: created by any auth submission, destroyed by
// logout. Cart and orders are deliberately not scoped to it.
type User struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

// AuthRequest covers both login and signup; there is no credential
// verification, any submission establishes the session user.
type AuthRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
	User      *User  `json:"user,omitempty"`
	Message   string `json:"message,omitempty"`
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
