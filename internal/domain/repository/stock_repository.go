package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para Stock (DIP).
// GetByID y GetByAddress devuelven (nil, nil) cuando no hay fila.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	// GetByAddress busca por dirección exacta (la dirección no es única a nivel
	// de esquema; si hubiera varias devuelve la más antigua).
	GetByAddress(address string) (*entity.Stock, error)
	Update(stock *entity.Stock) error
	List(limit, offset int) ([]*entity.Stock, error)
	// ListByProduct devuelve los stocks que tienen una posición del producto dado.
	ListByProduct(productID string, limit, offset int) ([]*entity.Stock, error)
	// SearchByPositionText devuelve, sin duplicados, los stocks con al menos una
	// posición cuyo producto contiene el texto en title o description (ILIKE).
	SearchByPositionText(text string, limit, offset int) ([]*entity.Stock, error)
	Delete(id string) error
}
