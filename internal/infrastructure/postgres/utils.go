package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueViolationError mapea una violación 23505 al error de dominio del campo
// afectado, según el nombre del constraint (users_username_key, etc.).
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	constraint := ""
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
	}
	switch {
	case strings.Contains(constraint, "username"):
		return domain.ErrUsernameAlreadyExists
	case strings.Contains(constraint, "email"):
		return domain.ErrEmailAlreadyExists
	case strings.Contains(constraint, "cpf"):
		return domain.ErrCpfAlreadyExists
	default:
		return domain.ErrDuplicate
	}
}
