package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ProductMissingError indica que una posición referencia un producto inexistente.
type ProductMissingError struct {
	ProductID string
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("el producto %s no existe", e.ProductID)
}

// DuplicatePositionError indica que el stock ya tiene una posición para el producto.
type DuplicatePositionError struct {
	StockID   string
	ProductID string
}

func (e *DuplicatePositionError) Error() string {
	return fmt.Sprintf("el stock %s ya tiene el producto %s", e.StockID, e.ProductID)
}
