package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.UserRepository = (*memUserRepo)(nil)
	_ repository.RoleRepository = (*memRoleRepo)(nil)
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByCpf(cpf string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Cpf == cpf {
			return u, nil
		}
	}
	return nil, nil
}

type memRoleRepo struct {
	roles map[string]*entity.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[string]*entity.Role{
		entity.RoleUsuario:     {ID: "r-usuario", Name: entity.RoleUsuario, Level: entity.LevelUsuario},
		entity.RoleFuncionario: {ID: "r-funcionario", Name: entity.RoleFuncionario, Level: entity.LevelFuncionario},
		entity.RoleAdmin:       {ID: "r-admin", Name: entity.RoleAdmin, Level: entity.LevelAdmin},
	}}
}

func (r *memRoleRepo) Create(role *entity.Role) error {
	r.roles[role.Name] = role
	return nil
}

func (r *memRoleRepo) GetByID(id string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.roles[name], nil
}

func (r *memRoleRepo) List() ([]*entity.Role, error) {
	var list []*entity.Role
	for _, role := range r.roles {
		list = append(list, role)
	}
	return list, nil
}

func (r *memRoleRepo) EnsureDefaults() error { return nil }

const testSecret = "super-secret-para-tests-123"

func buildAuthUseCase(users ...*entity.User) (*auth.AuthUseCase, *memUserRepo) {
	userRepo := newMemUserRepo(users...)
	uc := auth.NewAuthUseCase(userRepo, newMemRoleRepo(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "catalogo-api-test",
	})
	return uc, userRepo
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "maria",
		Password: "clave123",
		Cpf:      "529.982.247-25",
		Email:    "maria@example.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolePorDefecto(t *testing.T) {
	uc, userRepo := buildAuthUseCase()

	out, err := uc.Register(validRegister())
	require.NoError(t, err)

	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleUsuario, out.Role, "sin role explícito se asigna Usuario")
	assert.Equal(t, entity.LevelUsuario, out.RoleLevel)
	assert.Equal(t, "52998224725", out.Cpf, "el CPF se normaliza sin puntuación")

	stored, _ := userRepo.GetByUsername("maria")
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "la contraseña nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestRegister_CpfDuplicado(t *testing.T) {
	uc, _ := buildAuthUseCase(&entity.User{
		ID: "u1", Username: "otra", Cpf: "52998224725",
	})

	_, err := uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrCpfAlreadyExists,
		"el mismo CPF con puntuación distinta sigue siendo duplicado")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := buildAuthUseCase(&entity.User{
		ID: "u1", Username: "maria", Cpf: "11144477735",
	})

	_, err := uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	email := "maria@example.com"
	uc, _ := buildAuthUseCase(&entity.User{
		ID: "u1", Username: "otra", Cpf: "11144477735", Email: &email,
	})

	_, err := uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_ValidaCpf(t *testing.T) {
	uc, _ := buildAuthUseCase()

	for _, cpf := range []string{"", "123", "123456789012"} {
		in := validRegister()
		in.Cpf = cpf
		_, err := uc.Register(in)
		if cpf == "" {
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidCpf, "cpf %q debe rechazarse", cpf)
		}
	}
}

func TestRegister_PoliticaDeContrasena(t *testing.T) {
	uc, _ := buildAuthUseCase()

	for _, pwd := range []string{"corta", "soloLetras", "123456"} {
		in := validRegister()
		in.Password = pwd
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrWeakPassword, "contraseña %q debe rechazarse", pwd)
	}
}

func TestRegister_EmailInvalido(t *testing.T) {
	uc, _ := buildAuthUseCase()

	in := validRegister()
	in.Email = "no-es-email"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestRegister_RoleInexistente(t *testing.T) {
	uc, _ := buildAuthUseCase()

	in := validRegister()
	in.Role = "SuperJefe"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func registeredUser(t *testing.T) (*auth.AuthUseCase, dto.RegisterRequest) {
	t.Helper()
	uc, _ := buildAuthUseCase()
	in := validRegister()
	_, err := uc.Register(in)
	require.NoError(t, err)
	return uc, in
}

func TestLogin_EmiteTokenConNivel(t *testing.T) {
	uc, in := registeredUser(t)

	out, err := uc.Login(dto.LoginRequest{Username: in.Username, Password: in.Password})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "maria", out.User.Username)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUsuario, claims.Role)
	assert.Equal(t, entity.LevelUsuario, claims.RoleLevel,
		"el nivel viaja en el token para autorizar sin consultar la DB")
}

func TestLogin_PorEmail(t *testing.T) {
	uc, in := registeredUser(t)

	out, err := uc.Login(dto.LoginRequest{Username: in.Email, Password: in.Password})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.User.Username, "el login debe aceptar email en lugar de username")
}

func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	uc, in := registeredUser(t)

	_, errBadPassword := uc.Login(dto.LoginRequest{Username: in.Username, Password: "incorrecta1"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "incorrecta1"})

	assert.ErrorIs(t, errBadPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errBadPassword.Error(), errNoUser.Error(),
		"no se revela si el usuario existe o no")
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_ClaimSinUsuario(t *testing.T) {
	uc, _ := buildAuthUseCase()

	_, err := uc.CurrentUser(auth.Principal{UserID: "borrado"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.CurrentUser(auth.Principal{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeCpf(t *testing.T) {
	got, err := auth.NormalizeCpf("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", got)

	_, err = auth.NormalizeCpf("529.982.247")
	assert.ErrorIs(t, err, domain.ErrInvalidCpf)
}

func TestValidPassword(t *testing.T) {
	assert.True(t, auth.ValidPassword("clave123"))
	assert.True(t, auth.ValidPassword("corta1"), "6 caracteres con letra y dígito es el mínimo aceptado")
	assert.False(t, auth.ValidPassword("cort1"), "menos de 6 caracteres")
	assert.False(t, auth.ValidPassword("soloLetras"), "sin dígito")
	assert.False(t, auth.ValidPassword("123456789"), "sin letra")
}
