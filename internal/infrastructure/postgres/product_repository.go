package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). El estado de eliminación se persiste como
// pending_deletion + columnas nullable; al leer se reconstruye el puntero
// Deletion del dominio.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.is_active,
	       p.created_by_user_id, p.created_at, p.updated_at,
	       p.pending_deletion, p.requested_deletion_by, p.deletion_requested_at,
	       cu.username, du.username
	FROM products p
	LEFT JOIN users cu ON cu.id = p.created_by_user_id
	LEFT JOIN users du ON du.id = p.requested_deletion_by`

// Create persiste un nuevo producto (siempre nace activo y sin solicitud).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, is_active, created_by_user_id,
		                      pending_deletion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.IsActive, product.CreatedByUserID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(productSelect+` WHERE p.id = $1`, id)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
// para serializar compras concurrentes. Solo dentro de una transacción.
// El bloqueo es sobre products; el join de usernames se omite porque
// FOR UPDATE no admite los LEFT JOIN del select de lectura.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, is_active,
		       created_by_user_id, created_at, updated_at,
		       pending_deletion, requested_deletion_by, deletion_requested_at
		FROM products WHERE id = $1 FOR UPDATE`
	var p entity.Product
	var pending bool
	var reqBy *string
	var reqAt *time.Time
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.IsActive,
		&p.CreatedByUserID, &p.CreatedAt, &p.UpdatedAt,
		&pending, &reqBy, &reqAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	applyDeletion(&p, pending, reqBy, reqAt)
	return &p, nil
}

// List lista productos por creación descendente. Con includeHidden en false
// filtra a activos sin solicitud de eliminación (vista de no-admins).
func (r *ProductRepo) List(includeHidden bool) ([]*entity.Product, error) {
	query := productSelect
	if !includeHidden {
		query += ` WHERE p.is_active AND NOT p.pending_deletion`
	}
	query += ` ORDER BY p.created_at DESC`
	return r.list(query)
}

// ListPendingDeletion lista las solicitudes abiertas, más antigua primero.
func (r *ProductRepo) ListPendingDeletion() ([]*entity.Product, error) {
	return r.list(productSelect + ` WHERE p.pending_deletion ORDER BY p.deletion_requested_at`)
}

func (r *ProductRepo) list(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanProduct(rows)
}

func scanProduct(rows pgx.Rows) (*entity.Product, error) {
	var p entity.Product
	var pending bool
	var reqBy *string
	var reqAt *time.Time
	if err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.IsActive,
		&p.CreatedByUserID, &p.CreatedAt, &p.UpdatedAt,
		&pending, &reqBy, &reqAt,
		&p.CreatedByUsername, &p.RequestedDeletionByUsername,
	); err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	applyDeletion(&p, pending, reqBy, reqAt)
	return &p, nil
}

// applyDeletion reconstruye el puntero Deletion desde las columnas planas.
func applyDeletion(p *entity.Product, pending bool, reqBy *string, reqAt *time.Time) {
	if pending && reqBy != nil {
		at := time.Time{}
		if reqAt != nil {
			at = *reqAt
		}
		p.Deletion = &entity.DeletionRequest{RequestedByUserID: *reqBy, RequestedAt: at}
	}
}

// Update actualiza el producto completo, incluido el estado de eliminación.
func (r *ProductRepo) Update(product *entity.Product) error {
	var reqBy *string
	var reqAt *time.Time
	if product.Deletion != nil {
		reqBy = &product.Deletion.RequestedByUserID
		at := product.Deletion.RequestedAt
		reqAt = &at
	}
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, is_active = $6,
		    pending_deletion = $7, requested_deletion_by = $8, deletion_requested_at = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.IsActive, product.Deletion != nil, reqBy, reqAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock (usado por la compra dentro de la tx).
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Las compras existentes se conservan:
// user_products.product_id queda en NULL (ON DELETE SET NULL) y el historial
// mantiene precio y cantidad.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
