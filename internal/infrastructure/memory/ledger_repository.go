package memory

import (
	"sort"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación en memoria del puerto LedgerRepository.
type LedgerRepo struct {
	store *Store
}

// NewLedgerRepository construye el adaptador sobre el almacén compartido.
func NewLedgerRepository(store *Store) *LedgerRepo {
	return &LedgerRepo{store: store}
}

// Get devuelve una copia del registro; nil si la clave no existe (stock cero).
func (r *LedgerRepo) Get(category, itemName, locationCode string) (*entity.StockRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if rec, ok := r.store.ledger[ledgerKey{category, itemName, locationCode}]; ok {
		return &rec, nil
	}
	return nil, nil
}

// GetForUpdate fuera de una transacción equivale a Get; dentro de una
// transacción el TxRunner ya serializa a los escritores.
func (r *LedgerRepo) GetForUpdate(category, itemName, locationCode string) (*entity.StockRecord, error) {
	return r.Get(category, itemName, locationCode)
}

// Upsert reemplaza el registro de la clave de forma atómica.
func (r *LedgerRepo) Upsert(record *entity.StockRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ledger[ledgerKey{record.Category, record.ItemName, record.LocationCode}] = *record
	return nil
}

// ListByItem devuelve los registros de un artículo en todas las ubicaciones.
func (r *LedgerRepo) ListByItem(category, itemName string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool {
		return k.category == category && k.item == itemName
	}), nil
}

// ListByCategory devuelve todos los registros de una categoría.
func (r *LedgerRepo) ListByCategory(category string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool { return k.category == category }), nil
}

// ListByLocation devuelve todos los registros de una ubicación.
func (r *LedgerRepo) ListByLocation(locationCode string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool { return k.location == locationCode }), nil
}

func (r *LedgerRepo) list(match func(ledgerKey) bool) []*entity.StockRecord {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*entity.StockRecord
	for k, rec := range r.store.ledger {
		if match(k) {
			cp := rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].ItemName != out[j].ItemName {
			return out[i].ItemName < out[j].ItemName
		}
		return out[i].LocationCode < out[j].LocationCode
	})
	return out
}
