package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockProduct es la posición que asocia un producto a un stock con cantidad y precio.
// Invariante: a lo sumo una posición por par (StockID, ProductID), respaldada por
// UNIQUE(stock_id, product_id) en el esquema.
type StockProduct struct {
	ID        string
	StockID   string
	ProductID string
	Quantity  int64           // unidades, >= 0
	Price     decimal.Decimal // precio por unidad, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
