package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Create persiste un nuevo role.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, level, parent_role_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		role.ID, role.Name, role.Level, role.ParentRoleID, role.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un role por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, level, parent_role_id, created_at FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un role por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, level, parent_role_id, created_at FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) getOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.Level, &role.ParentRoleID, &role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List lista todos los roles ordenados por nivel ascendente.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `SELECT id, name, level, parent_role_id, created_at FROM roles ORDER BY level, name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Level, &role.ParentRoleID, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// EnsureDefaults siembra los roles Usuario(1), Funcionario(2) y Admin(3).
// ON CONFLICT (name) DO NOTHING la hace idempotente entre arranques.
func (r *RoleRepo) EnsureDefaults() error {
	defaults := []struct {
		name  string
		level int
	}{
		{entity.RoleUsuario, entity.LevelUsuario},
		{entity.RoleFuncionario, entity.LevelFuncionario},
		{entity.RoleAdmin, entity.LevelAdmin},
	}
	for _, d := range defaults {
		_, err := r.pool.Exec(context.Background(), `
			INSERT INTO roles (id, name, level, created_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), d.name, d.level,
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", d.name, err)
		}
	}
	return nil
}
