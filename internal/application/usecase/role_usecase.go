package usecase

import (
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// RoleUseCase administra el registro identidad → rol. La autorización de quién
// puede asignar roles es una puerta del entorno (middleware admin en HTTP),
// no una invariante de este componente.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Assign asigna un rol a una identidad, sobrescribiendo el anterior.
// Varias identidades pueden compartir rol; no hay unicidad entre identidades.
func (uc *RoleUseCase) Assign(in dto.AssignRoleRequest) (*dto.RoleResponse, error) {
	if in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	assignment := &entity.RoleAssignment{
		Address:   in.Address,
		Role:      role,
		UpdatedAt: time.Now().Unix(),
	}
	if err := uc.repo.Upsert(assignment); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Address: in.Address, Role: role.String()}, nil
}

// RoleOf devuelve el rol de una identidad. Identidades desconocidas responden
// none; la ausencia es una respuesta válida, nunca un error.
func (uc *RoleUseCase) RoleOf(address string) (*dto.RoleResponse, error) {
	if address == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.repo.GetRole(address)
	if err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Address: address, Role: role.String()}, nil
}
