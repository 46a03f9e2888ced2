package auth

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

var (
	emailRe     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hasLetterRe = regexp.MustCompile(`[A-Za-z]`)
	hasDigitRe  = regexp.MustCompile(`\d`)
	nonDigitsRe = regexp.MustCompile(`\D`)
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// NormalizeCpf elimina puntuación del CPF. Devuelve ErrInvalidCpf si no quedan
// exactamente 11 dígitos.
func NormalizeCpf(cpf string) (string, error) {
	digits := nonDigitsRe.ReplaceAllString(cpf, "")
	if len(digits) != 11 {
		return "", domain.ErrInvalidCpf
	}
	return digits, nil
}

// ValidPassword exige mínimo 6 caracteres con al menos una letra y un número.
func ValidPassword(password string) bool {
	return len(password) >= 6 && hasLetterRe.MatchString(password) && hasDigitRe.MatchString(password)
}

// Register valida y crea un usuario: username/email/cpf únicos, contraseña con
// política mínima, hash bcrypt. Role por nombre; sin role se asigna "Usuario".
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Cpf == "" {
		return nil, domain.ErrInvalidInput
	}
	if !ValidPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}
	cpf, err := NormalizeCpf(in.Cpf)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}

	var email *string
	if in.Email != "" {
		if !emailRe.MatchString(in.Email) {
			return nil, domain.ErrInvalidEmail
		}
		if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		email = &in.Email
	}

	if existing, err := uc.userRepo.GetByCpf(cpf); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrCpfAlreadyExists
	}

	roleName := in.Role
	if roleName == "" {
		roleName = entity.RoleUsuario
	}
	role, err := uc.roleRepo.GetByName(roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        email,
		Cpf:          cpf,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.Name,
		RoleLevel:    role.Level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales (por username o email), genera JWT con el nivel
// de role en los claims y retorna token + usuario. Cualquier fallo de
// credenciales responde lo mismo: no se revela si el usuario existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.userRepo.GetByEmail(in.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, user.Username, user.RoleName, user.RoleLevel,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CurrentUser resuelve el usuario de base de datos detrás de un principal.
// Devuelve ErrUserNotFound si el claim no apunta a un usuario existente.
func (uc *AuthUseCase) CurrentUser(p Principal) (*dto.UserResponse, error) {
	if p.UserID == "" {
		return nil, domain.ErrUserNotFound
	}
	user, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Cpf:       u.Cpf,
		Role:      u.RoleName,
		RoleLevel: u.RoleLevel,
		CreatedAt: u.CreatedAt,
	}
}
