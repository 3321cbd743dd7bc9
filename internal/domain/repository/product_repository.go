package repository

import "github.com/jhoicas/Trazabilidad-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create asigna el ID secuencial (el caller nunca lo provee) y lo deja en
// product.ID. GetByID devuelve nil sin error si el ID no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id uint64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto dentro de la transacción
	// actual (SELECT FOR UPDATE); serializa transiciones sobre el mismo ID.
	GetForUpdate(id uint64) (*entity.Product, error)
	// UpdateCustody aplica el efecto de una transición: nuevo custodio y nuevo
	// estado. Nunca toca ID, nombre, lote ni fabricante.
	UpdateCustody(id uint64, owner string, status entity.Status) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByOwner(owner string, limit, offset int) ([]*entity.Product, error)
}
