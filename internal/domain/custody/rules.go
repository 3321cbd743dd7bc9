// Package custody contiene las reglas puras de la máquina de estados de
// custodia: qué rol puede ejecutar cada transición y en qué estado debe estar
// el producto. Sin dependencias de infraestructura.
package custody

import (
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// Transition describe una transición legal de la cadena: quién la inicia,
// qué rol debe tener el receptor y entre qué estados mueve el producto.
type Transition struct {
	From          entity.Status
	To            entity.Status
	InitiatorRole entity.Role
	RecipientRole entity.Role
}

// Las dos únicas transiciones legales. El pipeline es fijo y lineal;
// agregar una etapa es un cambio verificado en compilación, no un dato.
var (
	ToDistributor = Transition{
		From:          entity.StatusCreated,
		To:            entity.StatusInTransit,
		InitiatorRole: entity.RoleManufacturer,
		RecipientRole: entity.RoleDistributor,
	}
	ToRetailer = Transition{
		From:          entity.StatusInTransit,
		To:            entity.StatusDelivered,
		InitiatorRole: entity.RoleDistributor,
		RecipientRole: entity.RoleRetailer,
	}
)

// ValidateCreate verifica que el actor pueda crear productos.
func ValidateCreate(actorRole entity.Role) error {
	if actorRole != entity.RoleManufacturer {
		return domain.ErrUnauthorized
	}
	return nil
}

// Validate aplica todas las precondiciones de una transición sobre un producto.
// Se evalúa completo antes de cualquier mutación. Un producto en estado
// terminal se rechaza con ErrInvalidState sin importar quién lo intente:
// Delivered no admite ninguna operación más. Después se verifican rol del
// iniciador, custodia actual, estado de origen y rol del receptor; se devuelve
// el error de dominio de la primera violación.
func (t Transition) Validate(p *entity.Product, actor string, actorRole entity.Role, recipient string, recipientRole entity.Role) error {
	if recipient == "" {
		return domain.ErrInvalidInput
	}
	if p.Status.Terminal() {
		return domain.ErrInvalidState
	}
	if actorRole != t.InitiatorRole {
		return domain.ErrUnauthorized
	}
	if p.CurrentOwner != actor {
		return domain.ErrUnauthorized
	}
	if p.Status != t.From {
		return domain.ErrInvalidState
	}
	if recipientRole != t.RecipientRole {
		return domain.ErrInvalidRecipientRole
	}
	return nil
}
