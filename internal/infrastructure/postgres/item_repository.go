package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// La clave primaria es el par (category, name).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Upsert inserta o actualiza un artículo.
func (r *ItemRepo) Upsert(item *entity.Item) error {
	query := `
		INSERT INTO items (category, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (category, name)
		DO UPDATE SET description = EXCLUDED.description, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, item.Category, item.Name, item.Description)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// Get obtiene un artículo por (categoría, nombre); nil si no existe.
func (r *ItemRepo) Get(category, name string) (*entity.Item, error) {
	query := `
		SELECT category, name, description, created_at, updated_at
		FROM items WHERE category = $1 AND name = $2`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, category, name).Scan(
		&it.Category, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByCategory devuelve los artículos de una categoría ordenados por nombre.
func (r *ItemRepo) ListByCategory(category string) ([]*entity.Item, error) {
	query := `
		SELECT category, name, description, created_at, updated_at
		FROM items WHERE category = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Category, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
