package custody

import (
	"context"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las escrituras de una transición
// (producto + datos de etapa + historial) se apliquen todas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stageRepo repository.StageDataRepository,
		historyRepo repository.HistoryRepository,
	) error) error
}
