package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL
// (usable con pool o tx). Tabla user_products; product_id admite NULL para
// conservar el historial cuando el producto se elimina.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO user_products (id, user_id, product_id, quantity, purchase_price, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.ProductID, purchase.Quantity,
		purchase.PurchasePrice, purchase.PurchasedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID con el nombre del producto resuelto.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT up.id, up.user_id, COALESCE(up.product_id, ''), up.quantity,
		       up.purchase_price, up.purchased_at, p.name
		FROM user_products up
		LEFT JOIN products p ON p.id = up.product_id
		WHERE up.id = $1`
	var pu entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&pu.ID, &pu.UserID, &pu.ProductID, &pu.Quantity,
		&pu.PurchasePrice, &pu.PurchasedAt, &pu.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &pu, nil
}

// ListByUser lista las compras de un usuario, más reciente primero.
func (r *PurchaseRepo) ListByUser(userID string) ([]*entity.Purchase, error) {
	query := `
		SELECT up.id, up.user_id, COALESCE(up.product_id, ''), up.quantity,
		       up.purchase_price, up.purchased_at, p.name
		FROM user_products up
		LEFT JOIN products p ON p.id = up.product_id
		WHERE up.user_id = $1
		ORDER BY up.purchased_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var pu entity.Purchase
		if err := rows.Scan(&pu.ID, &pu.UserID, &pu.ProductID, &pu.Quantity,
			&pu.PurchasePrice, &pu.PurchasedAt, &pu.ProductName); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &pu)
	}
	return list, rows.Err()
}
