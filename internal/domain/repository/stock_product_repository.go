package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// StockProductRepository define el puerto para las posiciones (stock, producto).
// Usado dentro de transacciones para la sincronización anidada de un Stock.
type StockProductRepository interface {
	// GetByStockAndProduct devuelve (nil, nil) si el par no tiene posición.
	GetByStockAndProduct(stockID, productID string) (*entity.StockProduct, error)
	// ListByStock devuelve las posiciones del stock ordenadas por fecha de creación.
	ListByStock(stockID string) ([]*entity.StockProduct, error)
	Create(position *entity.StockProduct) error
	Update(position *entity.StockProduct) error
	// DeleteByStock elimina todas las posiciones del stock (delete explícito
	// además del ON DELETE CASCADE del esquema).
	DeleteByStock(stockID string) error
}
