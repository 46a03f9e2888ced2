package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Reimplementan los puertos con mapas;
// los tests de integración contra PostgreSQL quedan fuera del alcance unitario.

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.PurchaseRepository = (*fakePurchaseRepo)(nil)
	_ repository.RoleRepository     = (*fakeRoleRepo)(nil)
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByCpf(cpf string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Cpf == cpf {
			return u, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(includeHidden bool) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if !includeHidden && (!p.IsActive || p.PendingDeletion()) {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *fakeProductRepo) ListPendingDeletion() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.PendingDeletion() {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Deletion.RequestedAt.Before(list[j].Deletion.RequestedAt)
	})
	return list, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	if p, ok := r.products[productID]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func newFakePurchaseRepo(purchases ...*entity.Purchase) *fakePurchaseRepo {
	r := &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}}
	for _, p := range purchases {
		r.purchases[p.ID] = p
	}
	return r
}

func (r *fakePurchaseRepo) Create(purchase *entity.Purchase) error {
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) ListByUser(userID string) ([]*entity.Purchase, error) {
	var list []*entity.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].PurchasedAt.After(list[j].PurchasedAt)
	})
	return list, nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: map[string]*entity.Role{}}
	for _, role := range roles {
		r.roles[role.ID] = role
	}
	return r
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.roles[id], nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	var list []*entity.Role
	for _, role := range r.roles {
		list = append(list, role)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Level != list[j].Level {
			return list[i].Level < list[j].Level
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *fakeRoleRepo) EnsureDefaults() error {
	defaults := []struct {
		name  string
		level int
	}{
		{entity.RoleUsuario, entity.LevelUsuario},
		{entity.RoleFuncionario, entity.LevelFuncionario},
		{entity.RoleAdmin, entity.LevelAdmin},
	}
	for _, d := range defaults {
		if existing, _ := r.GetByName(d.name); existing != nil {
			continue
		}
		r.roles[d.name] = &entity.Role{ID: d.name, Name: d.name, Level: d.level}
	}
	return nil
}

// fakeTxRunner ejecuta la función directamente contra los repos en memoria.
// No hay transacción real: los tests verifican semántica, no atomicidad de BD.
type fakeTxRunner struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return fn(r.productRepo, r.purchaseRepo)
}
