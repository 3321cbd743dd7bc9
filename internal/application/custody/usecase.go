package custody

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	domcustody "github.com/jhoicas/Trazabilidad-api/internal/domain/custody"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
	"github.com/jhoicas/Trazabilidad-api/pkg/metrics"
)

// UseCase es el motor de transiciones: el único componente que muta el ledger,
// los datos de etapa y el historial. Cada operación valida rol y estado antes
// de mutar, y aplica sus escrituras dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE) para serializar transiciones sobre el mismo producto.
type UseCase struct {
	txRunner TxRunner
	roleRepo repository.RoleRepository
}

// NewUseCase construye el motor de transiciones.
func NewUseCase(txRunner TxRunner, roleRepo repository.RoleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, roleRepo: roleRepo}
}

// CreateProduct crea un producto con estado Created. Solo fabricantes.
// Escribe producto + datos de fabricante + primera entrada del historial en
// una sola transacción y devuelve el ID secuencial asignado.
func (uc *UseCase) CreateProduct(ctx context.Context, actor string, in dto.CreateProductRequest) (uint64, error) {
	if actor == "" || in.Name == "" || in.BatchID == "" || in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	actorRole, err := uc.roleRepo.GetRole(actor)
	if err != nil {
		return 0, err
	}
	if err := domcustody.ValidateCreate(actorRole); err != nil {
		metrics.TransitionObserved("create", err)
		return 0, err
	}

	now := time.Now()
	var productID uint64
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stageRepo repository.StageDataRepository,
		historyRepo repository.HistoryRepository,
	) error {
		product := &entity.Product{
			Name:         in.Name,
			BatchID:      in.BatchID,
			CurrentOwner: actor,
			Manufacturer: actor,
			Status:       entity.StatusCreated,
			CreatedAt:    now,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		productID = product.ID
		data := &entity.ManufacturerData{
			ProductID:         product.ID,
			Quantity:          in.Quantity,
			Origin:            in.Origin,
			ManufacturingDate: time.Unix(in.ManufacturingDate, 0).UTC(),
			QualityStandard:   in.QualityStandard,
			Manufacturer:      actor,
			CapturedAt:        now,
		}
		if err := stageRepo.CreateManufacturerData(data); err != nil {
			return err
		}
		return historyRepo.Append(&entity.HistoryRecord{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Seq:        1,
			Actor:      actor,
			Status:     entity.StatusCreated,
			RecordedAt: now,
		})
	})
	metrics.TransitionObserved("create", err)
	if err != nil {
		return 0, err
	}
	metrics.ProductCreated()
	return productID, nil
}

// TransferToDistributor ejecuta la transición Created → InTransit.
// Precondiciones: el actor es fabricante y custodio actual, el producto está
// en Created y el destinatario tiene rol distribuidor. El historial registra
// al iniciador de la transferencia, no al receptor (convención de auditoría:
// queda quién ejecutó la acción).
func (uc *UseCase) TransferToDistributor(ctx context.Context, actor string, productID uint64, in dto.TransferToDistributorRequest) error {
	if actor == "" || in.Distributor == "" {
		return domain.ErrInvalidInput
	}
	err := uc.transfer(ctx, actor, productID, domcustody.ToDistributor, in.Distributor,
		func(stageRepo repository.StageDataRepository, now time.Time) error {
			return stageRepo.CreateDistributorData(&entity.DistributorData{
				ProductID:            productID,
				Temperature:          in.Temperature,
				Humidity:             in.Humidity,
				Location:             in.Location,
				TransportationMode:   in.TransportationMode,
				ExpectedDeliveryDate: time.Unix(in.ExpectedDeliveryDate, 0).UTC(),
				Distributor:          in.Distributor,
				CapturedAt:           now,
			})
		})
	metrics.TransitionObserved("to_distributor", err)
	return err
}

// TransferToRetailer ejecuta la transición InTransit → Delivered (terminal).
func (uc *UseCase) TransferToRetailer(ctx context.Context, actor string, productID uint64, in dto.TransferToRetailerRequest) error {
	if actor == "" || in.Retailer == "" {
		return domain.ErrInvalidInput
	}
	err := uc.transfer(ctx, actor, productID, domcustody.ToRetailer, in.Retailer,
		func(stageRepo repository.StageDataRepository, now time.Time) error {
			return stageRepo.CreateRetailerData(&entity.RetailerData{
				ProductID:         productID,
				StorageCondition:  in.StorageCondition,
				ExpiryDate:        time.Unix(in.ExpiryDate, 0).UTC(),
				Price:             in.Price,
				VerificationNotes: in.VerificationNotes,
				Retailer:          in.Retailer,
				CapturedAt:        now,
			})
		})
	metrics.TransitionObserved("to_retailer", err)
	return err
}

// transfer aplica la mecánica común de ambas transiciones: lectura de roles,
// transacción con bloqueo de fila, revalidación bajo el lock, y las tres
// escrituras (custodia, datos de etapa, historial). Un perdedor concurrente
// revalida dentro del lock y observa ErrUnauthorized o ErrInvalidState en
// lugar de pisar la custodia del ganador.
func (uc *UseCase) transfer(
	ctx context.Context,
	actor string,
	productID uint64,
	t domcustody.Transition,
	recipient string,
	writeStageData func(stageRepo repository.StageDataRepository, now time.Time) error,
) error {
	actorRole, err := uc.roleRepo.GetRole(actor)
	if err != nil {
		return err
	}
	recipientRole, err := uc.roleRepo.GetRole(recipient)
	if err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stageRepo repository.StageDataRepository,
		historyRepo repository.HistoryRepository,
	) error {
		// Bloquea la fila del producto: cualquier transición concurrente sobre
		// el mismo ID espera aquí y revalida contra el estado ya mutado.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := t.Validate(product, actor, actorRole, recipient, recipientRole); err != nil {
			return err
		}
		if err := productRepo.UpdateCustody(productID, recipient, t.To); err != nil {
			return err
		}
		if err := writeStageData(stageRepo, now); err != nil {
			return err
		}
		return historyRepo.Append(&entity.HistoryRecord{
			ID:         uuid.New().String(),
			ProductID:  productID,
			Seq:        int(t.To) + 1,
			Actor:      actor,
			Status:     t.To,
			RecordedAt: now,
		})
	})
}
