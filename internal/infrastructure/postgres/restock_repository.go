package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

var _ repository.RestockRepository = (*RestockRepo)(nil)

// RestockRepo implementación de RestockRepository sobre PostgreSQL.
// Mismo esquema que las ventas: fila append-only con líneas en JSONB.
type RestockRepo struct {
	q Querier
}

// NewRestockRepository construye el adaptador de reposiciones.
func NewRestockRepository(q Querier) *RestockRepo {
	return &RestockRepo{q: q}
}

// Create persiste la reposición y asigna su id. Solo se invoca dentro de la
// transacción del ledger.
func (r *RestockRepo) Create(ctx context.Context, re *entity.Restock) error {
	items, err := json.Marshal(re.Items)
	if err != nil {
		return fmt.Errorf("marshal restock items: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO restocks (reference, date, supplier_id, items, total, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		re.Reference, re.Date, re.SupplierID, items, re.Total, re.UserID,
	).Scan(&re.ID)
	if err != nil {
		return fmt.Errorf("insert restock: %w", err)
	}
	return nil
}

// GetByID obtiene una reposición por id (nil si no existe).
func (r *RestockRepo) GetByID(ctx context.Context, id int64) (*entity.Restock, error) {
	var re entity.Restock
	var items []byte
	err := r.q.QueryRow(ctx, `
		SELECT id, reference, date, supplier_id, items, total, user_id
		FROM restocks WHERE id = $1`, id,
	).Scan(&re.ID, &re.Reference, &re.Date, &re.SupplierID, &items, &re.Total, &re.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restock: %w", err)
	}
	if err := json.Unmarshal(items, &re.Items); err != nil {
		return nil, fmt.Errorf("unmarshal restock items: %w", err)
	}
	return &re, nil
}

// List devuelve el ledger completo de reposiciones, más recientes primero.
func (r *RestockRepo) List(ctx context.Context) ([]*entity.Restock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, reference, date, supplier_id, items, total, user_id
		FROM restocks ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list restocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restock
	for rows.Next() {
		var re entity.Restock
		var items []byte
		if err := rows.Scan(&re.ID, &re.Reference, &re.Date, &re.SupplierID, &items, &re.Total, &re.UserID); err != nil {
			return nil, fmt.Errorf("scan restock: %w", err)
		}
		if err := json.Unmarshal(items, &re.Items); err != nil {
			return nil, fmt.Errorf("unmarshal restock items: %w", err)
		}
		list = append(list, &re)
	}
	return list, rows.Err()
}
