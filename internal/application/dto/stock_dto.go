package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const maxAddressLen = 300

// PositionRequest una posición del payload de un stock. Quantity y Price son
// punteros para distinguir "omitido" de cero: toda posición debe traer los tres
// campos explícitos (una posición sin quantity o price es error de validación,
// nunca sobreescritura silenciosa con cero).
type PositionRequest struct {
	Product  string           `json:"product"`
	Quantity *int64           `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// validateInto valida una posición; prefix identifica la posición en el mensaje.
func (p PositionRequest) validateInto(errs FieldErrors, prefix string) {
	if p.Product == "" {
		errs.Add(prefix+".product", "requerido")
	}
	if p.Quantity == nil {
		errs.Add(prefix+".quantity", "requerido")
	} else if *p.Quantity < 0 {
		errs.Add(prefix+".quantity", "debe ser >= 0")
	}
	if p.Price == nil {
		errs.Add(prefix+".price", "requerido")
	} else if p.Price.IsNegative() {
		errs.Add(prefix+".price", "debe ser >= 0")
	}
}

func validatePositions(errs FieldErrors, positions []PositionRequest) {
	for i, p := range positions {
		p.validateInto(errs, fmt.Sprintf("positions[%d]", i))
	}
}

// CreateStockRequest entrada para crear un stock con sus posiciones.
type CreateStockRequest struct {
	Address   string            `json:"address"`
	Positions []PositionRequest `json:"positions"`
}

// Validate valida la entrada. Devuelve nil si no hay errores.
func (r CreateStockRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Address == "" {
		errs.Add("address", "requerido")
	}
	if len(r.Address) > maxAddressLen {
		errs.Add("address", "máximo 300 caracteres")
	}
	validatePositions(errs, r.Positions)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateStockRequest entrada para reemplazo completo (PUT): address obligatorio,
// posiciones sincronizadas por clave (stock, producto).
type UpdateStockRequest struct {
	Address   string            `json:"address"`
	Positions []PositionRequest `json:"positions"`
}

// Validate valida el reemplazo completo.
func (r UpdateStockRequest) Validate() FieldErrors {
	return CreateStockRequest(r).Validate()
}

// PatchStockRequest entrada para actualización parcial: address opcional,
// posiciones (si vienen) se sincronizan por clave igual que en PUT.
type PatchStockRequest struct {
	Address   *string           `json:"address"`
	Positions []PositionRequest `json:"positions"`
}

// Validate valida los campos presentes.
func (r PatchStockRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Address != nil && *r.Address == "" {
		errs.Add("address", "no puede ser vacío")
	}
	if r.Address != nil && len(*r.Address) > maxAddressLen {
		errs.Add("address", "máximo 300 caracteres")
	}
	validatePositions(errs, r.Positions)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// PositionResponse salida de una posición (siempre completa: producto, cantidad, precio).
type PositionResponse struct {
	Product  string          `json:"product"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// StockResponse salida de un stock con su lista completa de posiciones
// (nunca una proyección parcial, tanto en lecturas como en el eco de escrituras).
type StockResponse struct {
	ID        string             `json:"id"`
	Address   string             `json:"address"`
	Positions []PositionResponse `json:"positions"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// StockListResponse lista paginada de stocks.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
