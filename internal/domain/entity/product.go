package entity

import "time"

// Product representa un producto del catálogo logístico.
// El stock por bodega se modela en StockProduct (posiciones de un Stock).
type Product struct {
	ID          string
	Title       string // nombre corto, obligatorio
	Description string // texto libre, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
