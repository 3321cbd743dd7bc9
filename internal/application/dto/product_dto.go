package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El actor sale del token;
// las fechas llegan en segundos unix (convención de los colaboradores).
type CreateProductRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	BatchID           string `json:"batch_id" validate:"required,min=1,max=100"`
	Quantity          int64  `json:"quantity" validate:"required,min=1"`
	Origin            string `json:"origin"`
	ManufacturingDate int64  `json:"manufacturing_date"` // unix seconds
	QualityStandard   string `json:"quality_standard"`
}

// CreateProductResponse ID asignado al nuevo producto.
type CreateProductResponse struct {
	ID uint64 `json:"id"`
}

// ProductResponse salida del registro canónico de un producto.
type ProductResponse struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	BatchID      string    `json:"batch_id"`
	CurrentOwner string    `json:"current_owner"`
	Manufacturer string    `json:"manufacturer"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductDetailResponse producto con los datos de etapa que ya existan.
// Las etapas no alcanzadas van como null.
type ProductDetailResponse struct {
	Product          ProductResponse           `json:"product"`
	ManufacturerData *ManufacturerDataResponse `json:"manufacturer_data,omitempty"`
	DistributorData  *DistributorDataResponse  `json:"distributor_data,omitempty"`
	RetailerData     *RetailerDataResponse     `json:"retailer_data,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ManufacturerDataResponse datos capturados en la creación.
type ManufacturerDataResponse struct {
	ProductID         uint64    `json:"product_id"`
	Quantity          int64     `json:"quantity"`
	Origin            string    `json:"origin"`
	ManufacturingDate time.Time `json:"manufacturing_date"`
	QualityStandard   string    `json:"quality_standard"`
	Manufacturer      string    `json:"manufacturer"`
	CapturedAt        time.Time `json:"captured_at"`
}

// DistributorDataResponse datos capturados al pasar a InTransit.
type DistributorDataResponse struct {
	ProductID            uint64    `json:"product_id"`
	Temperature          int32     `json:"temperature"`
	Humidity             int32     `json:"humidity"`
	Location             string    `json:"location"`
	TransportationMode   string    `json:"transportation_mode"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	Distributor          string    `json:"distributor"`
	CapturedAt           time.Time `json:"captured_at"`
}

// RetailerDataResponse datos capturados al pasar a Delivered.
type RetailerDataResponse struct {
	ProductID         uint64          `json:"product_id"`
	StorageCondition  string          `json:"storage_condition"`
	ExpiryDate        time.Time       `json:"expiry_date"`
	Price             decimal.Decimal `json:"price"`
	VerificationNotes string          `json:"verification_notes"`
	Retailer          string          `json:"retailer"`
	CapturedAt        time.Time       `json:"captured_at"`
}

// HistoryRecordResponse una entrada del historial de auditoría.
type HistoryRecordResponse struct {
	Actor      string    `json:"actor"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

// HistoryResponse historial completo de un producto, ordenado por inserción.
type HistoryResponse struct {
	ProductID uint64                  `json:"product_id"`
	Records   []HistoryRecordResponse `json:"records"`
}
