package dto

import "time"

// RegisterRequest entrada para registrar un usuario. Email y Role son opcionales;
// sin Role se asigna "Usuario".
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Cpf      string `json:"cpf" validate:"required"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginRequest entrada para login. Username acepta username o email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	Cpf       string    `json:"cpf"`
	Role      string    `json:"role"`
	RoleLevel int       `json:"role_level"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
