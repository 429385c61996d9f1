package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.StockProductRepository = (*StockProductRepo)(nil)

// StockProductRepo implementación del puerto StockProductRepository sobre PostgreSQL
// (usable con pool o tx).
type StockProductRepo struct {
	q Querier
}

// NewStockProductRepository construye el adaptador de posiciones. Pasar pool o tx (Querier).
func NewStockProductRepository(q Querier) *StockProductRepo {
	return &StockProductRepo{q: q}
}

// GetByStockAndProduct obtiene la posición del par (stock, producto), o (nil, nil) si no hay.
func (r *StockProductRepo) GetByStockAndProduct(stockID, productID string) (*entity.StockProduct, error) {
	query := `
		SELECT id, stock_id, product_id, quantity, price, created_at, updated_at
		FROM stock_products WHERE stock_id = $1 AND product_id = $2`
	var sp entity.StockProduct
	err := r.q.QueryRow(context.Background(), query, stockID, productID).Scan(
		&sp.ID, &sp.StockID, &sp.ProductID, &sp.Quantity, &sp.Price, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &sp, nil
}

// ListByStock devuelve las posiciones del stock ordenadas por fecha de creación.
func (r *StockProductRepo) ListByStock(stockID string) ([]*entity.StockProduct, error) {
	query := `
		SELECT id, stock_id, product_id, quantity, price, created_at, updated_at
		FROM stock_products WHERE stock_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, stockID)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockProduct
	for rows.Next() {
		var sp entity.StockProduct
		if err := rows.Scan(&sp.ID, &sp.StockID, &sp.ProductID, &sp.Quantity, &sp.Price,
			&sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &sp)
	}
	return list, rows.Err()
}

// Create persiste una nueva posición. UNIQUE(stock_id, product_id) respalda el
// invariante de una posición por par; la FK a products la integridad referencial.
func (r *StockProductRepo) Create(position *entity.StockProduct) error {
	query := `
		INSERT INTO stock_products (id, stock_id, product_id, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.StockID, position.ProductID, position.Quantity, position.Price,
		position.CreatedAt, position.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicatePositionError{StockID: position.StockID, ProductID: position.ProductID}
		}
		if isForeignKeyViolation(err) {
			return &domain.ProductMissingError{ProductID: position.ProductID}
		}
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// Update sobreescribe cantidad y precio de una posición existente.
func (r *StockProductRepo) Update(position *entity.StockProduct) error {
	query := `
		UPDATE stock_products SET quantity = $2, price = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.Quantity, position.Price, position.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	return nil
}

// DeleteByStock elimina todas las posiciones del stock.
func (r *StockProductRepo) DeleteByStock(stockID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_products WHERE stock_id = $1`, stockID)
	if err != nil {
		return fmt.Errorf("delete positions: %w", err)
	}
	return nil
}
