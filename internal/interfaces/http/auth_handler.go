package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/Trazabilidad-api/pkg/jwt"
)

// AuthHandler emite tokens de desarrollo. En producción la capa colaboradora
// autentica la identidad (ej. firma de wallet) y emite el JWT; este endpoint
// existe para pruebas locales y scripts.
type AuthHandler struct {
	jwtSecret  string
	issuer     string
	expMinutes int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(jwtSecret, issuer string, expMinutes int) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, issuer: issuer, expMinutes: expMinutes}
}

// Token godoc
// @Summary      Emitir token de desarrollo para una identidad
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "Identidad y flag admin"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "address es requerido"})
	}
	token, exp, err := pkgjwt.Generate(h.jwtSecret, in.Address, in.Admin, h.issuer, h.expMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir el token"})
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresAt: exp})
}
