package model

import "time"

// AdminIdentity is what a verified credential, session or token proves. It never carries the password hash.
type AdminIdentity struct {
	Id       int32  `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthCheckResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *AdminIdentity `json:"user,omitempty"`
}
