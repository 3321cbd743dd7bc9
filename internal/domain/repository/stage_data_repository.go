package repository

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// StageDataRepository define el puerto para los datos de etapa (tres tablas
// laterales por product_id). Cada Create se ejecuta exactamente una vez, en la
// misma transacción que la transición correspondiente; los Get devuelven nil
// sin error mientras la etapa no haya ocurrido.
type StageDataRepository interface {
	CreateManufacturerData(data *entity.ManufacturerData) error
	CreateDistributorData(data *entity.DistributorData) error
	CreateRetailerData(data *entity.RetailerData) error
	GetManufacturerData(productID uint64) (*entity.ManufacturerData, error)
	GetDistributorData(productID uint64) (*entity.DistributorData, error)
	GetRetailerData(productID uint64) (*entity.RetailerData, error)
}
