package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación del puerto HistoryRepository sobre PostgreSQL
// (usable con pool o tx). Tabla append-only clave (product_id, seq): solo
// INSERT y lectura por rango, nunca UPDATE ni DELETE.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Append inserta una entrada del historial. La restricción UNIQUE(product_id, seq)
// rechaza cualquier doble escritura del mismo paso.
func (r *HistoryRepo) Append(record *entity.HistoryRecord) error {
	query := `
		INSERT INTO history (id, product_id, seq, actor, status, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.Seq, record.Actor,
		int16(record.Status), record.RecordedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidState
		}
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de un producto ordenado por seq.
func (r *HistoryRepo) ListByProduct(productID uint64) ([]*entity.HistoryRecord, error) {
	query := `
		SELECT id, product_id, seq, actor, status, recorded_at
		FROM history WHERE product_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryRecord
	for rows.Next() {
		var rec entity.HistoryRecord
		var status int16
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Seq, &rec.Actor, &status, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.Status = entity.Status(status)
		list = append(list, &rec)
	}
	return list, rows.Err()
}
