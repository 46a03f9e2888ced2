package entity

import "time"

// Niveles de permiso. La autorización compara siempre el nivel numérico,
// nunca el nombre del role: un role nuevo con Level 3 es tan admin como "Admin".
const (
	LevelUsuario     = 1
	LevelFuncionario = 2
	LevelAdmin       = 3
)

// Nombres de los roles sembrados al iniciar la aplicación.
const (
	RoleUsuario     = "Usuario"
	RoleFuncionario = "Funcionario"
	RoleAdmin       = "Admin"
)

// Role representa un nivel de permiso con nombre. ParentRoleID es solo
// jerarquía para mostrar; las decisiones de acceso usan Level.
type Role struct {
	ID           string
	Name         string // único
	Level        int
	ParentRoleID *string
	CreatedAt    time.Time
}
