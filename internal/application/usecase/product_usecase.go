package usecase

import (
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura sobre el ledger: producto canónico,
// datos de etapa e historial. Toda mutación pasa por el motor de transiciones.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stageRepo   repository.StageDataRepository
	historyRepo repository.HistoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	stageRepo repository.StageDataRepository,
	historyRepo repository.HistoryRepository,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stageRepo: stageRepo, historyRepo: historyRepo}
}

// GetByID obtiene el registro canónico de un producto.
func (uc *ProductUseCase) GetByID(id uint64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetDetail obtiene el producto junto con los datos de las etapas ya
// alcanzadas. Las etapas pendientes van como nil.
func (uc *ProductUseCase) GetDetail(id uint64) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.ProductDetailResponse{Product: *toProductResponse(product)}

	mfr, err := uc.stageRepo.GetManufacturerData(id)
	if err != nil {
		return nil, err
	}
	out.ManufacturerData = toManufacturerDataResponse(mfr)

	dist, err := uc.stageRepo.GetDistributorData(id)
	if err != nil {
		return nil, err
	}
	out.DistributorData = toDistributorDataResponse(dist)

	ret, err := uc.stageRepo.GetRetailerData(id)
	if err != nil {
		return nil, err
	}
	out.RetailerData = toRetailerDataResponse(ret)
	return out, nil
}

// List lista productos con paginación; owner opcional filtra por custodio actual.
func (uc *ProductUseCase) List(owner string, limit, offset int) (*dto.ProductListResponse, error) {
	var list []*entity.Product
	var err error
	if owner != "" {
		list, err = uc.productRepo.ListByOwner(owner, limit, offset)
	} else {
		list, err = uc.productRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// History devuelve el historial de auditoría de un producto, ordenado por
// inserción. Para un ID desconocido responde ErrNotFound.
func (uc *ProductUseCase) History(id uint64) (*dto.HistoryResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.historyRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out := &dto.HistoryResponse{ProductID: id, Records: make([]dto.HistoryRecordResponse, 0, len(records))}
	for _, r := range records {
		out.Records = append(out.Records, dto.HistoryRecordResponse{
			Actor:      r.Actor,
			Status:     r.Status.String(),
			RecordedAt: r.RecordedAt,
		})
	}
	return out, nil
}

// ManufacturerData devuelve los datos de fabricación (nil si no existen aún).
func (uc *ProductUseCase) ManufacturerData(id uint64) (*dto.ManufacturerDataResponse, error) {
	if err := uc.ensureExists(id); err != nil {
		return nil, err
	}
	data, err := uc.stageRepo.GetManufacturerData(id)
	if err != nil {
		return nil, err
	}
	return toManufacturerDataResponse(data), nil
}

// DistributorData devuelve los datos de transporte (nil antes de InTransit).
func (uc *ProductUseCase) DistributorData(id uint64) (*dto.DistributorDataResponse, error) {
	if err := uc.ensureExists(id); err != nil {
		return nil, err
	}
	data, err := uc.stageRepo.GetDistributorData(id)
	if err != nil {
		return nil, err
	}
	return toDistributorDataResponse(data), nil
}

// RetailerData devuelve los datos de venta (nil antes de Delivered).
func (uc *ProductUseCase) RetailerData(id uint64) (*dto.RetailerDataResponse, error) {
	if err := uc.ensureExists(id); err != nil {
		return nil, err
	}
	data, err := uc.stageRepo.GetRetailerData(id)
	if err != nil {
		return nil, err
	}
	return toRetailerDataResponse(data), nil
}

func (uc *ProductUseCase) ensureExists(id uint64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		BatchID:      p.BatchID,
		CurrentOwner: p.CurrentOwner,
		Manufacturer: p.Manufacturer,
		Status:       p.Status.String(),
		CreatedAt:    p.CreatedAt,
	}
}

func toManufacturerDataResponse(d *entity.ManufacturerData) *dto.ManufacturerDataResponse {
	if d == nil {
		return nil
	}
	return &dto.ManufacturerDataResponse{
		ProductID:         d.ProductID,
		Quantity:          d.Quantity,
		Origin:            d.Origin,
		ManufacturingDate: d.ManufacturingDate,
		QualityStandard:   d.QualityStandard,
		Manufacturer:      d.Manufacturer,
		CapturedAt:        d.CapturedAt,
	}
}

func toDistributorDataResponse(d *entity.DistributorData) *dto.DistributorDataResponse {
	if d == nil {
		return nil
	}
	return &dto.DistributorDataResponse{
		ProductID:            d.ProductID,
		Temperature:          d.Temperature,
		Humidity:             d.Humidity,
		Location:             d.Location,
		TransportationMode:   d.TransportationMode,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		Distributor:          d.Distributor,
		CapturedAt:           d.CapturedAt,
	}
}

func toRetailerDataResponse(d *entity.RetailerData) *dto.RetailerDataResponse {
	if d == nil {
		return nil
	}
	return &dto.RetailerDataResponse{
		ProductID:         d.ProductID,
		StorageCondition:  d.StorageCondition,
		ExpiryDate:        d.ExpiryDate,
		Price:             d.Price,
		VerificationNotes: d.VerificationNotes,
		Retailer:          d.Retailer,
		CapturedAt:        d.CapturedAt,
	}
}
