package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL, con un
// registro por (categoría, artículo, ubicación). overall no se persiste:
// siempre se deriva de available + reserved.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `category, item_name, location_code, available, reserved, updated_at`

// Get obtiene el registro de la clave; nil si no existe (stock cero).
func (r *LedgerRepo) Get(category, itemName, locationCode string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_records
		WHERE category = $1 AND item_name = $2 AND location_code = $3`
	return r.scanOne(query, category, itemName, locationCode)
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE):
// los escritores concurrentes de la misma clave serializan; los de claves
// distintas no se estorban.
func (r *LedgerRepo) GetForUpdate(category, itemName, locationCode string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_records
		WHERE category = $1 AND item_name = $2 AND location_code = $3
		FOR UPDATE`
	return r.scanOne(query, category, itemName, locationCode)
}

// Upsert inserta o reemplaza atómicamente el registro de la clave.
func (r *LedgerRepo) Upsert(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (category, item_name, location_code, available, reserved, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (category, item_name, location_code)
		DO UPDATE SET available = EXCLUDED.available, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		record.Category, record.ItemName, record.LocationCode, record.Available, record.Reserved,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

// ListByItem devuelve los registros de un artículo en todas las ubicaciones.
func (r *LedgerRepo) ListByItem(category, itemName string) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_records
		WHERE category = $1 AND item_name = $2
		ORDER BY location_code`
	return r.scanMany(query, category, itemName)
}

// ListByCategory devuelve los registros de todos los artículos de la categoría.
func (r *LedgerRepo) ListByCategory(category string) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_records
		WHERE category = $1
		ORDER BY item_name, location_code`
	return r.scanMany(query, category)
}

// ListByLocation devuelve todos los registros de una ubicación.
func (r *LedgerRepo) ListByLocation(locationCode string) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_records
		WHERE location_code = $1
		ORDER BY category, item_name`
	return r.scanMany(query, locationCode)
}

func (r *LedgerRepo) scanOne(query string, args ...any) (*entity.StockRecord, error) {
	var rec entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&rec.Category, &rec.ItemName, &rec.LocationCode, &rec.Available, &rec.Reserved, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &rec, nil
}

func (r *LedgerRepo) scanMany(query string, args ...any) ([]*entity.StockRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(
			&rec.Category, &rec.ItemName, &rec.LocationCode, &rec.Available, &rec.Reserved, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
