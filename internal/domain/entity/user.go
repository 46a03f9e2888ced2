package entity

import "time"

// User representa un usuario del catálogo. Username y Cpf son únicos;
// Email es opcional pero único cuando está presente. Nunca se elimina.
type User struct {
	ID           string
	Username     string
	Email        *string
	Cpf          string // 11 dígitos, normalizado sin puntuación
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       string

	// Campos del join con roles, poblados en lecturas.
	RoleName  string
	RoleLevel int

	CreatedAt time.Time
	UpdatedAt time.Time
}
