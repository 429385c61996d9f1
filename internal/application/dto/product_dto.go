package dto

import "time"

const maxTitleLen = 200

// CreateProductRequest entrada para crear un producto (una entrada del batch).
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate valida la entrada. Devuelve nil si no hay errores.
func (r CreateProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Title == "" {
		errs.Add("title", "requerido")
	}
	if len(r.Title) > maxTitleLen {
		errs.Add("title", "máximo 200 caracteres")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// BulkCreateProductsRequest entrada para crear productos en batch atómico.
type BulkCreateProductsRequest struct {
	Products []CreateProductRequest `json:"products"`
}

// Validate valida el batch completo. Devuelve un mapa de errores por entrada
// (vacío para entradas válidas) y true si todo el batch es válido.
func (r BulkCreateProductsRequest) Validate() ([]FieldErrors, bool) {
	ok := true
	detail := make([]FieldErrors, len(r.Products))
	for i, p := range r.Products {
		if errs := p.Validate(); errs != nil {
			detail[i] = errs
			ok = false
		} else {
			detail[i] = FieldErrors{}
		}
	}
	return detail, ok
}

// UpdateProductRequest entrada para reemplazo completo (PUT).
type UpdateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate valida el reemplazo completo (title obligatorio).
func (r UpdateProductRequest) Validate() FieldErrors {
	return CreateProductRequest(r).Validate()
}

// PatchProductRequest entrada para actualización parcial (campos omitidos se conservan).
type PatchProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Validate valida los campos presentes.
func (r PatchProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Title != nil && *r.Title == "" {
		errs.Add("title", "no puede ser vacío")
	}
	if r.Title != nil && len(*r.Title) > maxTitleLen {
		errs.Add("title", "máximo 200 caracteres")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BulkCreateProductsResponse batch creado.
type BulkCreateProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
