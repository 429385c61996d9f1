package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para stocks. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un nuevo stock.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Address, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `
		SELECT id, address, created_at, updated_at
		FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetByAddress busca un stock por dirección exacta. La dirección no es única;
// si hubiera varias filas devuelve la más antigua (orden por created_at).
func (r *StockRepo) GetByAddress(address string) (*entity.Stock, error) {
	query := `
		SELECT id, address, created_at, updated_at
		FROM stocks WHERE address = $1
		ORDER BY created_at ASC LIMIT 1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, address).Scan(
		&s.ID, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by address: %w", err)
	}
	return &s, nil
}

// Update actualiza un stock existente.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET address = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Address, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista stocks con paginación (orden por fecha de creación).
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, address, created_at, updated_at
		FROM stocks ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// ListByProduct devuelve los stocks que tienen una posición del producto dado.
func (r *StockRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT s.id, s.address, s.created_at, s.updated_at
		FROM stocks s
		JOIN stock_products sp ON sp.stock_id = s.id
		WHERE sp.product_id = $1
		ORDER BY s.created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks by product: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// SearchByPositionText devuelve, sin duplicados, los stocks con al menos una posición
// cuyo producto contiene el texto en title o description (ILIKE, unión de ambos campos).
func (r *StockRepo) SearchByPositionText(text string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT DISTINCT s.id, s.address, s.created_at, s.updated_at
		FROM stocks s
		JOIN stock_products sp ON sp.stock_id = s.id
		JOIN products p ON p.id = sp.product_id
		WHERE p.title ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%'
		ORDER BY s.created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, text, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search stocks: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// Delete elimina un stock por ID (las posiciones caen por ON DELETE CASCADE).
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func scanStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
