package entity

import "time"

// Stock representa una bodega/almacén identificado por su dirección.
// La dirección no es única a nivel de esquema; la creación busca por dirección
// exacta antes de insertar (idempotencia a nivel de caso de uso).
type Stock struct {
	ID        string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
