package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool (and pgx.Tx) the repository uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const clothColumns = `id, created_at, trending_score, data`

// ClothRepository persists clothes in the "clothes" table.
type ClothRepository struct {
	db DBTX
}

func NewClothRepository(db DBTX) *ClothRepository {
	return &ClothRepository{db: db}
}

// orderColumns whitelists the columns clothes may be sorted by.
var orderColumns = map[cloth.Order]string{
	cloth.OrderNewest:   "created_at",
	cloth.OrderTrending: "trending_score",
}

func notFound() error {
	code := "CLOTH_NOT_FOUND"
	return errs.NewNotFoundError("Cloth not found", true, &code)
}

func collectClothes(rows pgx.Rows) ([]cloth.Cloth, error) {
	clothes, err := pgx.CollectRows(rows, pgx.RowToStructByName[cloth.Cloth])
	if err != nil {
		return nil, err
	}
	if clothes == nil {
		clothes = []cloth.Cloth{}
	}
	return clothes, nil
}

// List returns up to limit clothes in store order. A nil limit means
// LIMIT NULL, which Postgres treats as no limit.
func (r *ClothRepository) List(ctx context.Context, limit *int) ([]cloth.Cloth, error) {
	stmt := `SELECT ` + clothColumns + ` FROM clothes LIMIT $1`

	rows, err := r.db.Query(ctx, stmt, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list clothes query: %w", err)
	}

	clothes, err := collectClothes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:clothes: %w", err)
	}
	return clothes, nil
}

// ListOrdered returns up to limit clothes sorted descending by order.
func (r *ClothRepository) ListOrdered(ctx context.Context, order cloth.Order, limit *int) ([]cloth.Cloth, error) {
	column, ok := orderColumns[order]
	if !ok {
		return nil, fmt.Errorf("unsupported cloth order %q", order)
	}

	stmt := `SELECT ` + clothColumns + ` FROM clothes ORDER BY ` + column + ` DESC, id LIMIT $1`

	rows, err := r.db.Query(ctx, stmt, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ordered clothes query: %w", err)
	}

	clothes, err := collectClothes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:clothes: %w", err)
	}
	return clothes, nil
}

func (r *ClothRepository) GetByID(ctx context.Context, id uuid.UUID) (*cloth.Cloth, error) {
	stmt := `SELECT ` + clothColumns + ` FROM clothes WHERE id = $1`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get cloth query for id=%s: %w", id, err)
	}

	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[cloth.Cloth])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to collect row from table:clothes for id=%s: %w", id, err)
	}
	return &c, nil
}

// Create inserts a cloth; the store assigns id and created_at.
func (r *ClothRepository) Create(ctx context.Context, data cloth.Data) (*cloth.Cloth, error) {
	stmt := `INSERT INTO clothes (data) VALUES ($1) RETURNING ` + clothColumns

	rows, err := r.db.Query(ctx, stmt, data)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create cloth query: %w", err)
	}

	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[cloth.Cloth])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:clothes: %w", err)
	}
	return &c, nil
}

// Update replaces the whole data payload and reports the affected rows.
func (r *ClothRepository) Update(ctx context.Context, id uuid.UUID, data cloth.Data) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE clothes SET data = $2 WHERE id = $1`, id, data)
	if err != nil {
		return 0, fmt.Errorf("failed to execute update cloth query for id=%s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a cloth and reports the affected rows.
func (r *ClothRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clothes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete cloth query for id=%s: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
