package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	// EnsureDefaults siembra Usuario(1), Funcionario(2) y Admin(3) si no existen.
	EnsureDefaults() error
}
