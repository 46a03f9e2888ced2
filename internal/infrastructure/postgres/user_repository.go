package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las lecturas traen role_name y role_level con un join a roles.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userSelect = `
	SELECT u.id, u.username, u.email, u.cpf, u.password_hash, u.role_id,
	       COALESCE(r.name, ''), COALESCE(r.level, 0), u.created_at, u.updated_at
	FROM users u
	LEFT JOIN roles r ON r.id = u.role_id`

// Create persiste un nuevo usuario. Violaciones de unicidad se mapean al
// error de dominio del campo afectado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, cpf, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.Cpf, user.PasswordHash, user.RoleID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.id = $1`, id)
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.username = $1`, username)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.email = $1`, email)
}

// GetByCpf obtiene un usuario por CPF (ya normalizado a 11 dígitos).
func (r *UserRepo) GetByCpf(cpf string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.cpf = $1`, cpf)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Cpf, &u.PasswordHash, &u.RoleID,
		&u.RoleName, &u.RoleLevel, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
