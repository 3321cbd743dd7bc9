package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP del registro de roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Assign godoc
// @Summary      Asignar rol a una identidad (sobrescribe el anterior)
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRoleRequest  true  "Identidad y rol"
// @Success      200   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Assign(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RoleOf godoc
// @Summary      Consultar el rol de una identidad (none si es desconocida)
// @Tags         roles
// @Produce      json
// @Param        address  path  string  true  "Identidad"
// @Success      200  {object}  dto.RoleResponse
// @Router       /api/roles/{address} [get]
func (h *RoleHandler) RoleOf(c *fiber.Ctx) error {
	address := c.Params("address")
	out, err := h.uc.RoleOf(address)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
