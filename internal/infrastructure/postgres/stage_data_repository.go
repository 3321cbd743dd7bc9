package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.StageDataRepository = (*StageDataRepo)(nil)

// StageDataRepo implementación del puerto StageDataRepository sobre PostgreSQL
// (usable con pool o tx). Tres tablas laterales con product_id como clave
// primaria: la unicidad de la BD garantiza la escritura única por etapa.
type StageDataRepo struct {
	q Querier
}

// NewStageDataRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStageDataRepository(q Querier) *StageDataRepo {
	return &StageDataRepo{q: q}
}

// CreateManufacturerData persiste los datos de fabricación (una sola vez, al crear).
func (r *StageDataRepo) CreateManufacturerData(data *entity.ManufacturerData) error {
	query := `
		INSERT INTO manufacturer_data (product_id, quantity, origin, manufacturing_date, quality_standard, manufacturer, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		data.ProductID, data.Quantity, data.Origin, data.ManufacturingDate,
		data.QualityStandard, data.Manufacturer, data.CapturedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidState
		}
		return fmt.Errorf("insert manufacturer data: %w", err)
	}
	return nil
}

// CreateDistributorData persiste los datos de transporte (una sola vez, en Created → InTransit).
func (r *StageDataRepo) CreateDistributorData(data *entity.DistributorData) error {
	query := `
		INSERT INTO distributor_data (product_id, temperature, humidity, location, transportation_mode, expected_delivery_date, distributor, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		data.ProductID, data.Temperature, data.Humidity, data.Location,
		data.TransportationMode, data.ExpectedDeliveryDate, data.Distributor, data.CapturedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidState
		}
		return fmt.Errorf("insert distributor data: %w", err)
	}
	return nil
}

// CreateRetailerData persiste los datos de venta (una sola vez, en InTransit → Delivered).
func (r *StageDataRepo) CreateRetailerData(data *entity.RetailerData) error {
	query := `
		INSERT INTO retailer_data (product_id, storage_condition, expiry_date, price, verification_notes, retailer, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		data.ProductID, data.StorageCondition, data.ExpiryDate, data.Price,
		data.VerificationNotes, data.Retailer, data.CapturedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidState
		}
		return fmt.Errorf("insert retailer data: %w", err)
	}
	return nil
}

// GetManufacturerData obtiene los datos de fabricación; nil si la etapa no ocurrió.
func (r *StageDataRepo) GetManufacturerData(productID uint64) (*entity.ManufacturerData, error) {
	query := `
		SELECT product_id, quantity, origin, manufacturing_date, quality_standard, manufacturer, captured_at
		FROM manufacturer_data WHERE product_id = $1`
	var d entity.ManufacturerData
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&d.ProductID, &d.Quantity, &d.Origin, &d.ManufacturingDate,
		&d.QualityStandard, &d.Manufacturer, &d.CapturedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer data: %w", err)
	}
	return &d, nil
}

// GetDistributorData obtiene los datos de transporte; nil antes de InTransit.
func (r *StageDataRepo) GetDistributorData(productID uint64) (*entity.DistributorData, error) {
	query := `
		SELECT product_id, temperature, humidity, location, transportation_mode, expected_delivery_date, distributor, captured_at
		FROM distributor_data WHERE product_id = $1`
	var d entity.DistributorData
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&d.ProductID, &d.Temperature, &d.Humidity, &d.Location,
		&d.TransportationMode, &d.ExpectedDeliveryDate, &d.Distributor, &d.CapturedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor data: %w", err)
	}
	return &d, nil
}

// GetRetailerData obtiene los datos de venta; nil antes de Delivered.
func (r *StageDataRepo) GetRetailerData(productID uint64) (*entity.RetailerData, error) {
	query := `
		SELECT product_id, storage_condition, expiry_date, price, verification_notes, retailer, captured_at
		FROM retailer_data WHERE product_id = $1`
	var d entity.RetailerData
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&d.ProductID, &d.StorageCondition, &d.ExpiryDate, &d.Price,
		&d.VerificationNotes, &d.Retailer, &d.CapturedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retailer data: %w", err)
	}
	return &d, nil
}
