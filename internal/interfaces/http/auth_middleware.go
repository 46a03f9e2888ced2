package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// Local key para el principal en Fiber.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, auth.FromClaims(claims))
		return c.Next()
	}
}

// RequireLevel autoriza el acceso por nivel mínimo de role. Deniega por
// defecto: sin claim de nivel (o nivel 0) la respuesta es 401; con nivel
// insuficiente, 403 sin detallar el motivo.
func RequireLevel(minLevel int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.RoleLevel <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin nivel de role"})
		}
		if !p.HasLevel(minLevel) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes para esta acción"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de
// auth). Un contexto sin principal devuelve el valor cero, que no pasa ningún
// check de nivel.
func GetPrincipal(c *fiber.Ctx) auth.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return auth.Principal{}
	}
	p, _ := v.(auth.Principal)
	return p
}
