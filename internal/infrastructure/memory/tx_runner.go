package memory

import (
	"context"
	"sort"

	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como transacciones sobre el almacén en memoria.
// Toma el lock de escritura del Store durante todo el callback, con lo que
// los escritores concurrentes quedan serializados igual que con SELECT FOR
// UPDATE en el driver PostgreSQL (aquí la granularidad es el almacén entero,
// suficiente para desarrollo y tests). Las escrituras se acumulan en un
// overlay y solo se aplican al almacén si fn termina sin error.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados a la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledger repository.LedgerRepository,
	orders repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &txState{
		store:  r.store,
		ledger: make(map[ledgerKey]entity.StockRecord),
		orders: make(map[string]entity.OrderTicket),
	}
	if err := fn(&txLedgerRepo{tx: tx}, &txOrderRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// txState acumula las escrituras pendientes de una transacción.
type txState struct {
	store  *Store
	ledger map[ledgerKey]entity.StockRecord
	orders map[string]entity.OrderTicket
}

func (t *txState) commit() {
	for k, rec := range t.ledger {
		t.store.ledger[k] = rec
	}
	for id, ticket := range t.orders {
		t.store.orders[id] = ticket
	}
}

type txLedgerRepo struct {
	tx *txState
}

var _ repository.LedgerRepository = (*txLedgerRepo)(nil)

func (r *txLedgerRepo) Get(category, itemName, locationCode string) (*entity.StockRecord, error) {
	k := ledgerKey{category, itemName, locationCode}
	if rec, ok := r.tx.ledger[k]; ok {
		return &rec, nil
	}
	if rec, ok := r.tx.store.ledger[k]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (r *txLedgerRepo) GetForUpdate(category, itemName, locationCode string) (*entity.StockRecord, error) {
	// El lock del Store ya está tomado por la transacción.
	return r.Get(category, itemName, locationCode)
}

func (r *txLedgerRepo) Upsert(record *entity.StockRecord) error {
	r.tx.ledger[ledgerKey{record.Category, record.ItemName, record.LocationCode}] = *record
	return nil
}

func (r *txLedgerRepo) ListByItem(category, itemName string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool {
		return k.category == category && k.item == itemName
	}), nil
}

func (r *txLedgerRepo) ListByCategory(category string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool { return k.category == category }), nil
}

func (r *txLedgerRepo) ListByLocation(locationCode string) ([]*entity.StockRecord, error) {
	return r.list(func(k ledgerKey) bool { return k.location == locationCode }), nil
}

// list fusiona el almacén base con el overlay de la transacción.
func (r *txLedgerRepo) list(match func(ledgerKey) bool) []*entity.StockRecord {
	merged := make(map[ledgerKey]entity.StockRecord)
	for k, rec := range r.tx.store.ledger {
		if match(k) {
			merged[k] = rec
		}
	}
	for k, rec := range r.tx.ledger {
		if match(k) {
			merged[k] = rec
		}
	}
	out := make([]*entity.StockRecord, 0, len(merged))
	for _, rec := range merged {
		cp := rec
		out = append(out, &cp)
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

type txOrderRepo struct {
	tx *txState
}

var _ repository.OrderRepository = (*txOrderRepo)(nil)

func (r *txOrderRepo) Create(ticket *entity.OrderTicket) error {
	if existing, _ := r.GetByID(ticket.ID); existing != nil {
		return domain.ErrDuplicate
	}
	r.tx.orders[ticket.ID] = *ticket
	return nil
}

func (r *txOrderRepo) GetByID(id string) (*entity.OrderTicket, error) {
	if t, ok := r.tx.orders[id]; ok {
		return &t, nil
	}
	if t, ok := r.tx.store.orders[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *txOrderRepo) GetForUpdate(id string) (*entity.OrderTicket, error) {
	return r.GetByID(id)
}

func (r *txOrderRepo) Update(ticket *entity.OrderTicket) error {
	if t, err := r.GetByID(ticket.ID); err != nil {
		return err
	} else if t == nil {
		return domain.ErrNotFound
	}
	r.tx.orders[ticket.ID] = *ticket
	return nil
}
