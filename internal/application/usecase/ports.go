package usecase

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad en las escrituras multi-paso (batch de
// productos, stock + posiciones).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		positionRepo repository.StockProductRepository,
	) error) error
}
