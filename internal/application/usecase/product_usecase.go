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

// ProductUseCase casos de uso para productos: batch create atómico + CRUD.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// BulkCreate crea todos los productos del batch en una sola transacción.
// La entrada llega ya validada campo a campo; si cualquier inserción falla no se crea nada.
func (uc *ProductUseCase) BulkCreate(ctx context.Context, in dto.BulkCreateProductsRequest) (*dto.BulkCreateProductsResponse, error) {
	now := time.Now()
	products := make([]*entity.Product, 0, len(in.Products))
	for _, p := range in.Products {
		products = append(products, &entity.Product{
			ID:          uuid.New().String(),
			Title:       p.Title,
			Description: p.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockRepository,
		_ repository.StockProductRepository,
	) error {
		for _, p := range products {
			if err := productRepo.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.BulkCreateProductsResponse{Products: items}, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update reemplaza title y description (PUT).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Title = in.Title
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Patch actualiza solo los campos presentes (campos omitidos se conservan).
func (uc *ProductUseCase) Patch(id string, in dto.PatchProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda de texto libre, orden por id y paginación.
func (uc *ProductUseCase) List(search, ordering string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(search, ordering, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto por ID. Las posiciones que lo referencian caen por
// ON DELETE CASCADE (mismo comportamiento que el borrado de un stock).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
