package repository

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// HistoryRepository define el puerto del historial de auditoría append-only.
// Append se invoca únicamente desde el motor de transiciones, dentro de la
// misma transacción que la mutación que lo origina; no existe escritura
// pública independiente. ListByProduct devuelve las entradas ordenadas por seq.
type HistoryRepository interface {
	Append(record *entity.HistoryRecord) error
	ListByProduct(productID uint64) ([]*entity.HistoryRecord, error)
}
