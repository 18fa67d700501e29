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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. Las líneas se
// guardan como JSONB en la misma fila: el ledger es append-only y las líneas
// nunca se consultan sueltas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y asigna su id. Solo se invoca dentro de la
// transacción del ledger.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO sales (reference, date, total, items, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.Reference, s.Date, s.Total, items, s.UserID,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(&s.ID, &s.Reference, &s.Date, &s.Total, &items, &s.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una venta por id (nil si no existe).
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `
		SELECT id, reference, date, total, items, user_id
		FROM sales WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *SaleRepo) collect(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var items []byte
		if err := rows.Scan(&s.ID, &s.Reference, &s.Date, &s.Total, &items, &s.UserID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// List devuelve el ledger completo, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, reference, date, total, items, user_id
		FROM sales ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return r.collect(rows)
}

// ListSince devuelve las ventas con fecha ≥ since (consulta del dashboard).
func (r *SaleRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, reference, date, total, items, user_id
		FROM sales WHERE date >= $1 ORDER BY id DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("list sales since: %w", err)
	}
	return r.collect(rows)
}
