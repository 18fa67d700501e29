package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
// Las etiquetas de categoría se guardan como JSONB.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo y asigna su id.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	tags, err := json.Marshal(s.Categories)
	if err != nil {
		return fmt.Errorf("marshal supplier categories: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO suppliers (name, contact_person, phone, email, address, categories, last_order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, tags, s.LastOrderDate,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var tags []byte
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address, &tags, &s.LastOrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &s.Categories); err != nil {
			return nil, fmt.Errorf("unmarshal supplier categories: %w", err)
		}
	}
	return &s, nil
}

// GetByID obtiene un proveedor por id (nil si no existe).
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `
		SELECT id, name, contact_person, phone, email, address, categories, last_order_date
		FROM suppliers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update reescribe los campos editables del proveedor. No toca
// last_order_date: eso es territorio de RecordOrder.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	tags, err := json.Marshal(s.Categories)
	if err != nil {
		return fmt.Errorf("marshal supplier categories: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		UPDATE suppliers
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, categories = $7
		WHERE id = $1`,
		s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, tags,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, contact_person, phone, email, address, categories, last_order_date
		FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var tags []byte
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address, &tags, &s.LastOrderDate); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &s.Categories); err != nil {
				return nil, fmt.Errorf("unmarshal supplier categories: %w", err)
			}
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina el proveedor por id.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// RecordOrder fija last_order_date. Lo invoca el ledger al registrar una
// reposición, dentro de la misma transacción.
func (r *SupplierRepo) RecordOrder(ctx context.Context, supplierID int64, when time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE suppliers SET last_order_date = $2 WHERE id = $1`, supplierID, when)
	if err != nil {
		return fmt.Errorf("record supplier order: %w", err)
	}
	return nil
}
