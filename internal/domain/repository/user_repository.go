package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven el usuario con RoleName y RoleLevel resueltos.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByCpf(cpf string) (*entity.User, error)
}
