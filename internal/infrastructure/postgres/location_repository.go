package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Upsert inserta o actualiza una ubicación por código. El código es inmutable;
// renombrar es solo cambiar display_name.
func (r *LocationRepo) Upsert(location *entity.Location) error {
	query := `
		INSERT INTO locations (code, display_name, address, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (code)
		DO UPDATE SET display_name = EXCLUDED.display_name, address = EXCLUDED.address,
		              postal_code = EXCLUDED.postal_code, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		location.Code, location.DisplayName, location.Address, location.PostalCode,
	)
	if err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

// GetByCode obtiene una ubicación por código; nil si no existe.
func (r *LocationRepo) GetByCode(code string) (*entity.Location, error) {
	query := `
		SELECT code, display_name, address, postal_code, created_at, updated_at
		FROM locations WHERE code = $1`
	var loc entity.Location
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&loc.Code, &loc.DisplayName, &loc.Address, &loc.PostalCode, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// List devuelve todas las ubicaciones ordenadas por nombre mostrado.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT code, display_name, address, postal_code, created_at, updated_at
		FROM locations ORDER BY display_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(
			&loc.Code, &loc.DisplayName, &loc.Address, &loc.PostalCode, &loc.CreatedAt, &loc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}
