package auth

import "github.com/jhoicas/catalogo-api/pkg/jwt"

// Principal es la identidad autenticada de una petición, derivada de los claims
// del token. Se pasa explícitamente por toda la cadena de llamadas; nunca se
// lee de estado global.
type Principal struct {
	UserID    string
	Name      string
	RoleName  string
	RoleLevel int
}

// FromClaims construye el principal desde los claims ya validados del JWT.
func FromClaims(c *jwt.Claims) Principal {
	return Principal{
		UserID:    c.Subject,
		Name:      c.Name,
		RoleName:  c.Role,
		RoleLevel: c.RoleLevel,
	}
}

// HasLevel decide si el principal alcanza el nivel mínimo requerido.
// Deniega por defecto: un principal vacío tiene nivel 0 y no pasa ningún check.
func (p Principal) HasLevel(minLevel int) bool {
	return p.RoleLevel >= minLevel
}
