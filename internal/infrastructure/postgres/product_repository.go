package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, batch_id, current_owner, manufacturer, status, created_at`

// Create persiste un nuevo producto; el ID secuencial lo asigna la BD (BIGSERIAL)
// y queda en product.ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, batch_id, current_owner, manufacturer, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.BatchID, product.CurrentOwner, product.Manufacturer,
		int16(product.Status), product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id uint64) (*entity.Product, error) {
	return r.get(id, `SELECT `+productColumns+` FROM products WHERE id = $1`)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; serializa transiciones
// concurrentes sobre el mismo ID.
func (r *ProductRepo) GetForUpdate(id uint64) (*entity.Product, error) {
	return r.get(id, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`)
}

func (r *ProductRepo) get(id uint64, query string) (*entity.Product, error) {
	var p entity.Product
	var status int16
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.BatchID, &p.CurrentOwner, &p.Manufacturer, &status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Status = entity.Status(status)
	return &p, nil
}

// UpdateCustody aplica el efecto de una transición: nuevo custodio y nuevo estado.
// No toca ID, nombre, lote ni fabricante.
func (r *ProductRepo) UpdateCustody(id uint64, owner string, status entity.Status) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_owner = $2, status = $3 WHERE id = $1`,
		id, owner, int16(status),
	)
	if err != nil {
		return fmt.Errorf("update custody: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update custody: producto %d no existe", id)
	}
	return nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// ListByOwner lista los productos cuyo custodio actual es owner.
func (r *ProductRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE current_owner = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, owner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by owner: %w", err)
	}
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var status int16
		if err := rows.Scan(&p.ID, &p.Name, &p.BatchID, &p.CurrentOwner, &p.Manufacturer, &status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Status = entity.Status(status)
		list = append(list, &p)
	}
	return list, rows.Err()
}
