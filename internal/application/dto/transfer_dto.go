package dto

import "github.com/shopspring/decimal"

// TransferToDistributorRequest entrada para la transición Created → InTransit.
// El iniciador (fabricante custodio) sale del token; Distributor es la
// identidad nominada como nuevo custodio.
type TransferToDistributorRequest struct {
	Distributor          string `json:"distributor" validate:"required"`
	Temperature          int32  `json:"temperature"`
	Humidity             int32  `json:"humidity"`
	Location             string `json:"location"`
	TransportationMode   string `json:"transportation_mode"`
	ExpectedDeliveryDate int64  `json:"expected_delivery_date"` // unix seconds
}

// TransferToRetailerRequest entrada para la transición InTransit → Delivered.
type TransferToRetailerRequest struct {
	Retailer          string          `json:"retailer" validate:"required"`
	StorageCondition  string          `json:"storage_condition"`
	ExpiryDate        int64           `json:"expiry_date"` // unix seconds
	Price             decimal.Decimal `json:"price"`
	VerificationNotes string          `json:"verification_notes"`
}
