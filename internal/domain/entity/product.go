package entity

import "time"

// Product es el registro canónico de un producto en la cadena de custodia.
// ID es secuencial (asignado por el ledger, nunca por el caller) e inmutable.
// CurrentOwner es siempre la identidad receptora de la última transición
// exitosa, o el fabricante creador si aún no hubo transición.
type Product struct {
	ID           uint64
	Name         string
	BatchID      string
	CurrentOwner string // identidad custodio actual
	Manufacturer string // identidad que creó el producto (no cambia)
	Status       Status
	CreatedAt    time.Time
}
