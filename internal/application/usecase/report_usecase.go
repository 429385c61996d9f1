package usecase

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// StockReportRow una fila del reporte: la posición y su producto ya resuelto.
type StockReportRow struct {
	Position *entity.StockProduct
	Product  *entity.Product
}

// StockReportGenerator puerto de generación del reporte PDF de inventario de un stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, stock *entity.Stock, rows []StockReportRow) ([]byte, error)
}

// StockReportUseCase arma los datos del reporte (stock + posiciones + productos)
// y delega la generación del PDF.
type StockReportUseCase struct {
	stockRepo    repository.StockRepository
	positionRepo repository.StockProductRepository
	productRepo  repository.ProductRepository
	generator    StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	stockRepo repository.StockRepository,
	positionRepo repository.StockProductRepository,
	productRepo repository.ProductRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		stockRepo:    stockRepo,
		positionRepo: positionRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate devuelve los bytes del PDF. domain.ErrNotFound si el stock no existe.
func (uc *StockReportUseCase) Generate(ctx context.Context, stockID string) ([]byte, error) {
	stock, err := uc.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	positions, err := uc.positionRepo.ListByStock(stockID)
	if err != nil {
		return nil, err
	}
	rows := make([]StockReportRow, 0, len(positions))
	for _, sp := range positions {
		product, err := uc.productRepo.GetByID(sp.ProductID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StockReportRow{Position: sp, Product: product})
	}
	return uc.generator.GenerateStockReport(ctx, stock, rows)
}
