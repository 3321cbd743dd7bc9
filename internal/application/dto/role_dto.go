package dto

import "time"

// AssignRoleRequest entrada para asignar un rol a una identidad.
// Una nueva asignación sobrescribe la anterior.
type AssignRoleRequest struct {
	Address string `json:"address" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=none manufacturer distributor retailer"`
}

// RoleResponse rol actual de una identidad. Las identidades desconocidas
// responden role=none, nunca 404.
type RoleResponse struct {
	Address string `json:"address"`
	Role    string `json:"role"`
}

// TokenRequest entrada para emitir un token de desarrollo.
// La autenticación real de identidades es responsabilidad del colaborador.
type TokenRequest struct {
	Address string `json:"address" validate:"required"`
	Admin   bool   `json:"admin"`
}

// TokenResponse token JWT emitido.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
