package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List busca por texto libre en title/description (ILIKE, vacío = sin filtro),
	// ordena por id asc ("id") o desc ("-id") y pagina con limit/offset.
	List(search, ordering string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
