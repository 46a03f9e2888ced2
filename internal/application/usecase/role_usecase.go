package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// RoleUseCase gestión de roles. La jerarquía parent/child es informativa;
// la autorización usa únicamente el nivel numérico.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List lista todos los roles. Requiere nivel Funcionario o superior.
func (uc *RoleUseCase) List(p auth.Principal) ([]dto.RoleResponse, error) {
	if !p.HasLevel(entity.LevelFuncionario) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.RoleResponse{
			ID:           r.ID,
			Name:         r.Name,
			Level:        r.Level,
			ParentRoleID: r.ParentRoleID,
			CreatedAt:    r.CreatedAt,
		})
	}
	return items, nil
}

// Add crea un role nuevo con nivel arbitrario. Solo admins.
func (uc *RoleUseCase) Add(p auth.Principal, in dto.AddRoleRequest) (*dto.RoleResponse, error) {
	if !p.HasLevel(entity.LevelAdmin) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Level < 1 {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentRoleID != nil {
		parent, err := uc.repo.GetByID(*in.ParentRoleID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrRoleNotFound
		}
	}
	role := &entity.Role{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Level:        in.Level,
		ParentRoleID: in.ParentRoleID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{
		ID:           role.ID,
		Name:         role.Name,
		Level:        role.Level,
		ParentRoleID: role.ParentRoleID,
		CreatedAt:    role.CreatedAt,
	}, nil
}

// Seed siembra los tres roles fijos (Usuario, Funcionario, Admin) si faltan.
// Se invoca al arrancar la aplicación; es idempotente.
func (uc *RoleUseCase) Seed() error {
	return uc.repo.EnsureDefaults()
}
