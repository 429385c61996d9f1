package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y topes si Limit/Offset están fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// FieldErrors mapea nombre de campo -> mensajes de validación.
type FieldErrors map[string][]string

// Add agrega un mensaje de validación para un campo.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// ErrorResponse cuerpo de error HTTP.
// Fields lleva errores de validación por campo; Detail lleva errores por entrada
// en operaciones batch (un mapa por entrada, vacío si la entrada es válida).
type ErrorResponse struct {
	Error  string        `json:"error"`
	Fields FieldErrors   `json:"fields,omitempty"`
	Detail []FieldErrors `json:"detail,omitempty"`
}
