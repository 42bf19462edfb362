package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Upsert inserta o actualiza una categoría por nombre canónico.
func (r *CategoryRepo) Upsert(category *entity.Category) error {
	query := `
		INSERT INTO categories (name, display_name, description, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name)
		DO UPDATE SET display_name = EXCLUDED.display_name, description = EXCLUDED.description`
	_, err := r.q.Exec(context.Background(), query,
		category.Name, category.DisplayName, category.Description,
	)
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

// GetByName obtiene una categoría por nombre canónico; nil si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT name, display_name, description, created_at
		FROM categories WHERE name = $1`
	var cat entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&cat.Name, &cat.DisplayName, &cat.Description, &cat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

// List devuelve todas las categorías ordenadas por nombre mostrado.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `
		SELECT name, display_name, description, created_at
		FROM categories ORDER BY display_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var cat entity.Category
		if err := rows.Scan(&cat.Name, &cat.DisplayName, &cat.Description, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &cat)
	}
	return list, rows.Err()
}
