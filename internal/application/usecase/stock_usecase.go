package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// StockUseCase casos de uso para stocks y la sincronización anidada de sus
// posiciones (StockProduct). Toda escritura multi-paso corre dentro de una
// transacción vía TxRunner.
type StockUseCase struct {
	stockRepo    repository.StockRepository
	positionRepo repository.StockProductRepository
	txRunner     TxRunner
}

// NewStockUseCase construye el caso de uso. stockRepo y positionRepo se usan
// para lecturas fuera de transacción.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	positionRepo repository.StockProductRepository,
	txRunner TxRunner,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:    stockRepo,
		positionRepo: positionRepo,
		txRunner:     txRunner,
	}
}

// Create busca o crea el stock por dirección (idempotente sobre address) y crea
// sus posiciones. Para cada posición verifica que el producto exista y que el
// stock no tenga ya una posición de ese producto (incluye repetidos dentro del
// mismo payload). Devuelve created=true si el stock fue recién creado.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (out *dto.StockResponse, created bool, err error) {
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		positionRepo repository.StockProductRepository,
	) error {
		stock, err := stockRepo.GetByAddress(in.Address)
		if err != nil {
			return err
		}
		if stock == nil {
			now := time.Now()
			stock = &entity.Stock{
				ID:        uuid.New().String(),
				Address:   in.Address,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := stockRepo.Create(stock); err != nil {
				return err
			}
			created = true
		}

		if err := syncPositions(productRepo, positionRepo, stock.ID, in.Positions, true); err != nil {
			return err
		}

		out, err = buildStockResponse(positionRepo, stock)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

// GetByID obtiene un stock con su lista completa de posiciones. Devuelve (nil, nil) si no existe.
func (uc *StockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return buildStockResponse(uc.positionRepo, stock)
}

// List lista stocks. Si productID no es vacío filtra por stocks que tienen una
// posición de ese producto; si no y search no es vacío, busca por texto en
// title/description de los productos de las posiciones (unión sin duplicados);
// si no, lista paginada por defecto.
func (uc *StockUseCase) List(productID, search string, page dto.PageRequest) (*dto.StockListResponse, error) {
	var (
		stocks []*entity.Stock
		err    error
	)
	switch {
	case productID != "":
		stocks, err = uc.stockRepo.ListByProduct(productID, page.Limit, page.Offset)
	case search != "":
		stocks, err = uc.stockRepo.SearchByPositionText(search, page.Limit, page.Offset)
	default:
		stocks, err = uc.stockRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		resp, err := buildStockResponse(uc.positionRepo, s)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza la dirección y sincroniza las posiciones por clave
// (stock, producto): sobreescribe cantidad/precio si el par existe, crea la
// posición si no. Las posiciones ausentes del payload no se tocan.
// Devuelve domain.ErrNotFound si el stock no existe.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (out *dto.StockResponse, err error) {
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		positionRepo repository.StockProductRepository,
	) error {
		stock, err := stockRepo.GetByID(id)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}

		stock.Address = in.Address
		stock.UpdatedAt = time.Now()
		if err := stockRepo.Update(stock); err != nil {
			return err
		}

		if err := syncPositions(productRepo, positionRepo, stock.ID, in.Positions, false); err != nil {
			return err
		}

		out, err = buildStockResponse(positionRepo, stock)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Patch actualiza la dirección si viene y sincroniza las posiciones recibidas
// por clave (stock, producto), igual que Update. Devuelve domain.ErrNotFound si
// el stock no existe.
func (uc *StockUseCase) Patch(ctx context.Context, id string, in dto.PatchStockRequest) (out *dto.StockResponse, err error) {
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		positionRepo repository.StockProductRepository,
	) error {
		stock, err := stockRepo.GetByID(id)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}

		if in.Address != nil {
			stock.Address = *in.Address
		}
		stock.UpdatedAt = time.Now()
		if err := stockRepo.Update(stock); err != nil {
			return err
		}

		if err := syncPositions(productRepo, positionRepo, stock.ID, in.Positions, false); err != nil {
			return err
		}

		out, err = buildStockResponse(positionRepo, stock)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el stock y sus posiciones en una transacción.
// Devuelve domain.ErrNotFound si el stock no existe.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
		positionRepo repository.StockProductRepository,
	) error {
		stock, err := stockRepo.GetByID(id)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		// Delete explícito de posiciones además del ON DELETE CASCADE del esquema.
		if err := positionRepo.DeleteByStock(id); err != nil {
			return err
		}
		return stockRepo.Delete(id)
	})
}

// syncPositions reconcilia las posiciones recibidas contra las persistidas,
// emparejando por clave (stock, producto) — nunca por índice posicional.
// Para cada entrada: el producto debe existir (ProductMissingError si no);
// si la posición existe, con rejectExisting se rechaza como duplicado
// (DuplicatePositionError, política de create) y sin él se sobreescriben
// cantidad y precio (política de update); si no existe, se crea.
// Un producto repetido dentro del mismo payload cae como duplicado: la primera
// entrada crea la posición y la segunda la encuentra en la misma tx.
func syncPositions(
	productRepo repository.ProductRepository,
	positionRepo repository.StockProductRepository,
	stockID string,
	entries []dto.PositionRequest,
	rejectExisting bool,
) error {
	now := time.Now()
	for _, entry := range entries {
		product, err := productRepo.GetByID(entry.Product)
		if err != nil {
			return err
		}
		if product == nil {
			return &domain.ProductMissingError{ProductID: entry.Product}
		}

		existing, err := positionRepo.GetByStockAndProduct(stockID, entry.Product)
		if err != nil {
			return err
		}
		if existing != nil {
			if rejectExisting {
				return &domain.DuplicatePositionError{StockID: stockID, ProductID: entry.Product}
			}
			existing.Quantity = *entry.Quantity
			existing.Price = *entry.Price
			existing.UpdatedAt = now
			if err := positionRepo.Update(existing); err != nil {
				return err
			}
			continue
		}

		if err := positionRepo.Create(&entity.StockProduct{
			ID:        uuid.New().String(),
			StockID:   stockID,
			ProductID: entry.Product,
			Quantity:  *entry.Quantity,
			Price:     *entry.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
	}
	return nil
}

// buildStockResponse arma la respuesta con la lista completa de posiciones.
func buildStockResponse(positionRepo repository.StockProductRepository, stock *entity.Stock) (*dto.StockResponse, error) {
	positions, err := positionRepo.ListByStock(stock.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PositionResponse, 0, len(positions))
	for _, sp := range positions {
		items = append(items, dto.PositionResponse{
			Product:  sp.ProductID,
			Quantity: sp.Quantity,
			Price:    sp.Price,
		})
	}
	return &dto.StockResponse{
		ID:        stock.ID,
		Address:   stock.Address,
		Positions: items,
		CreatedAt: stock.CreatedAt,
		UpdatedAt: stock.UpdatedAt,
	}, nil
}
