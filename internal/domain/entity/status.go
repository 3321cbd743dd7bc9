package entity

// Status es la etapa de custodia de un producto. Solo avanza hacia adelante:
// Created → InTransit → Delivered. Delivered es terminal.
type Status uint8

const (
	StatusCreated Status = iota
	StatusInTransit
	StatusDelivered
)

// String devuelve el nombre de la etapa para respuestas y logs.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusInTransit:
		return "in_transit"
	case StatusDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Next devuelve la etapa siguiente y ok=false si la etapa es terminal.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusCreated:
		return StatusInTransit, true
	case StatusInTransit:
		return StatusDelivered, true
	default:
		return s, false
	}
}

// Terminal indica si la etapa no admite más transiciones.
func (s Status) Terminal() bool {
	return s == StatusDelivered
}
