package entity

import "time"

// HistoryRecord es una entrada del historial de auditoría de un producto.
// El historial es append-only: una entrada por operación exitosa (creación y
// cada transferencia), nunca se edita ni se elimina. Actor es quien inició la
// operación, no el receptor.
type HistoryRecord struct {
	ID         string // uuid
	ProductID  uint64
	Seq        int // posición en el historial del producto, desde 1
	Actor      string
	Status     Status
	RecordedAt time.Time
}
