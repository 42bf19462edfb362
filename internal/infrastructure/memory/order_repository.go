package memory

import (
	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria del puerto OrderRepository.
type OrderRepo struct {
	store *Store
}

// NewOrderRepository construye el adaptador sobre el almacén compartido.
func NewOrderRepository(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// Create persiste un ticket nuevo.
func (r *OrderRepo) Create(ticket *entity.OrderTicket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.orders[ticket.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.orders[ticket.ID] = *ticket
	return nil
}

// GetByID devuelve una copia del ticket; nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.OrderTicket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if t, ok := r.store.orders[id]; ok {
		return &t, nil
	}
	return nil, nil
}

// GetForUpdate fuera de una transacción equivale a GetByID.
func (r *OrderRepo) GetForUpdate(id string) (*entity.OrderTicket, error) {
	return r.GetByID(id)
}

// Update actualiza un ticket existente.
func (r *OrderRepo) Update(ticket *entity.OrderTicket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.orders[ticket.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.orders[ticket.ID] = *ticket
	return nil
}
