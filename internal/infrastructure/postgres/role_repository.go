package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Upsert persiste la asignación identidad → rol, sobrescribiendo la anterior.
func (r *RoleRepo) Upsert(assignment *entity.RoleAssignment) error {
	query := `
		INSERT INTO roles (address, role, updated_at)
		VALUES ($1, $2, to_timestamp($3))
		ON CONFLICT (address) DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		assignment.Address, int16(assignment.Role), assignment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}

// GetRole devuelve el rol de una identidad. Identidades sin fila responden RoleNone.
func (r *RoleRepo) GetRole(address string) (entity.Role, error) {
	var role int16
	err := r.q.QueryRow(context.Background(),
		`SELECT role FROM roles WHERE address = $1`, address,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RoleNone, nil
		}
		return entity.RoleNone, fmt.Errorf("get role: %w", err)
	}
	return entity.Role(role), nil
}
