package repository

import "github.com/aoz-zh/supply-api/internal/domain/entity"

// LedgerRepository define el puerto del ledger de stock, con un registro por
// (categoría, artículo, ubicación). Get devuelve nil si no existe registro
// (stock cero). Upsert reemplaza el registro de esa clave de forma atómica.
type LedgerRepository interface {
	Get(category, itemName, locationCode string) (*entity.StockRecord, error)
	Upsert(record *entity.StockRecord) error
	ListByItem(category, itemName string) ([]*entity.StockRecord, error)
	ListByCategory(category string) ([]*entity.StockRecord, error)
	ListByLocation(locationCode string) ([]*entity.StockRecord, error)
	// GetForUpdate bloquea la clave para escritura dentro de una transacción
	// (SELECT FOR UPDATE en PostgreSQL). Devuelve nil si no existe registro.
	GetForUpdate(category, itemName, locationCode string) (*entity.StockRecord, error)
}
