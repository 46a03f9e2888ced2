package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrRoleNotFound    = errors.New("role no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")

	// Registro de usuarios: cada campo único reporta su propio conflicto.
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrCpfAlreadyExists      = errors.New("el CPF ya está registrado")
	ErrInvalidCredentials    = errors.New("usuario o contraseña inválidos")
	ErrWeakPassword          = errors.New("contraseña débil: mínimo 6 caracteres, con letras y números")
	ErrInvalidCpf            = errors.New("CPF inválido")
	ErrInvalidEmail          = errors.New("email inválido")

	// Ciclo de vida de productos y compras.
	ErrProductUnavailable = errors.New("producto no disponible para compra")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPendingDeletion    = errors.New("producto pendiente de eliminación; no puede editarse")
	ErrNotPendingDeletion = errors.New("el producto no está pendiente de eliminación")
)
