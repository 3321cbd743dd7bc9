package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("producto no encontrado")
	ErrUnauthorized         = errors.New("el actor no tiene el rol requerido para esta operación")
	ErrInvalidState         = errors.New("el producto no está en el estado requerido para la transición")
	ErrInvalidRecipientRole = errors.New("el destinatario no tiene el rol esperado")
	ErrInvalidInput         = errors.New("entrada inválida")
)
