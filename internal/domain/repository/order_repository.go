package repository

import "github.com/aoz-zh/supply-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para OrderTicket (DIP).
// GetByID devuelve nil si no existe el ticket.
type OrderRepository interface {
	Create(ticket *entity.OrderTicket) error
	GetByID(id string) (*entity.OrderTicket, error)
	Update(ticket *entity.OrderTicket) error
	// GetForUpdate bloquea el ticket dentro de una transacción para que la
	// transición de estado y la mutación del ledger sean atómicas.
	GetForUpdate(id string) (*entity.OrderTicket, error)
}
