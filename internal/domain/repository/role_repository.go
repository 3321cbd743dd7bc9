package repository

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para el registro de roles (DIP).
// Upsert sobrescribe cualquier asignación previa; GetRole devuelve RoleNone para
// identidades desconocidas (la ausencia es una respuesta válida, no un error).
type RoleRepository interface {
	Upsert(assignment *entity.RoleAssignment) error
	GetRole(address string) (entity.Role, error)
}
