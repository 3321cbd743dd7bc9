package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/custody"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
)

// CustodyHandler maneja las transferencias de custodia. El actor siempre sale
// del token; la API nunca acepta un "from" del cliente.
type CustodyHandler struct {
	uc *custody.UseCase
}

// NewCustodyHandler construye el handler.
func NewCustodyHandler(uc *custody.UseCase) *CustodyHandler {
	return &CustodyHandler{uc: uc}
}

// TransferToDistributor godoc
// @Summary      Transferir producto a un distribuidor (Created → InTransit)
// @Tags         custody
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.TransferToDistributorRequest  true  "Destinatario y condiciones de transporte"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transfer/distributor [post]
func (h *CustodyHandler) TransferToDistributor(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	var in dto.TransferToDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.TransferToDistributor(c.Context(), GetActor(c), id, in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TransferToRetailer godoc
// @Summary      Transferir producto a un minorista (InTransit → Delivered)
// @Tags         custody
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.TransferToRetailerRequest  true  "Destinatario y condiciones de venta"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transfer/retailer [post]
func (h *CustodyHandler) TransferToRetailer(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	var in dto.TransferToRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.TransferToRetailer(c.Context(), GetActor(c), id, in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
