package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/pkg/jwt"
)

// Locals keys para la identidad del actor y el flag admin en Fiber.
const (
	LocalActor = "actor"
	LocalAdmin = "admin"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad del actor a c.Locals.
// El actor autenticado es quien ejecuta las operaciones de escritura; el core
// nunca lo infiere de otro lado.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		address, admin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || address == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalActor, address)
		c.Locals(LocalAdmin, admin)
		return c.Next()
	}
}

// RequireAdmin bloquea la ruta si el token no trae el flag admin. Es la puerta
// externa de assignRole: el core no decide quién administra roles, lo decide
// el emisor del token. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetActor(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "actor no encontrado en el token"})
		}
		if !isAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere un token de administrador"})
		}
		return c.Next()
	}
}

// GetActor devuelve la identidad del actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) string {
	v := c.Locals(LocalActor)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func isAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
