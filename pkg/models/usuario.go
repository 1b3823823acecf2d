package models

// Usuario represents a credential record. The service never exposes it
// over CRUD endpoints; it exists only for login verification.
type Usuario struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // hex SHA-256 digest, never serialized
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token   string `json:"token"`
	Mensaje string `json:"mensaje"`
}
