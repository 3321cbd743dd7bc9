package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/custody"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del ledger de productos:
// creación (vía el motor de transiciones) y lecturas.
type ProductHandler struct {
	custodyUC *custody.UseCase
	productUC *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(custodyUC *custody.UseCase, productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{custodyUC: custodyUC, productUC: productUC}
}

// parseProductID lee el :id de la ruta como uint64.
func parseProductID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Crear producto (solo fabricantes)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.BatchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y batch_id son requeridos"})
	}
	id, err := h.custodyUC.CreateProduct(c.Context(), actor, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{ID: id})
}

// GetByID godoc
// @Summary      Obtener producto con sus datos de etapa
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.productUC.GetDetail(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        owner   query  string  false  "Filtrar por custodio actual"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.productUC.List(c.Query("owner"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de auditoría del producto (ordenado por inserción)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *ProductHandler) History(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.productUC.History(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ManufacturerData godoc
// @Summary      Datos de fabricación del producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ManufacturerDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/manufacturer-data [get]
func (h *ProductHandler) ManufacturerData(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.productUC.ManufacturerData(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DistributorData godoc
// @Summary      Datos de transporte del producto (null antes de InTransit)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.DistributorDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/distributor-data [get]
func (h *ProductHandler) DistributorData(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.productUC.DistributorData(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RetailerData godoc
// @Summary      Datos de venta del producto (null antes de Delivered)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.RetailerDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/retailer-data [get]
func (h *ProductHandler) RetailerData(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.productUC.RetailerData(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
