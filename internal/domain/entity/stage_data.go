package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Datos de etapa: hechos capturados exactamente una vez cuando el producto
// entra a cada etapa. Inmutables después de escritos; ausentes antes de que
// la etapa ocurra.

// ManufacturerData se escribe al crear el producto.
type ManufacturerData struct {
	ProductID         uint64
	Quantity          int64
	Origin            string
	ManufacturingDate time.Time
	QualityStandard   string
	Manufacturer      string // identidad del fabricante
	CapturedAt        time.Time
}

// DistributorData se escribe en la transición Created → InTransit.
type DistributorData struct {
	ProductID            uint64
	Temperature          int32 // °C durante transporte
	Humidity             int32 // % humedad relativa
	Location             string
	TransportationMode   string
	ExpectedDeliveryDate time.Time
	Distributor          string // identidad del distribuidor receptor
	CapturedAt           time.Time
}

// RetailerData se escribe en la transición InTransit → Delivered.
type RetailerData struct {
	ProductID         uint64
	StorageCondition  string
	ExpiryDate        time.Time
	Price             decimal.Decimal
	VerificationNotes string
	Retailer          string // identidad del minorista receptor
	CapturedAt        time.Time
}
