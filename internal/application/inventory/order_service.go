package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

// OrderService administra tickets de pedido. Solicitar un pedido registra la
// intención y emite un evento; el ledger queda intacto hasta que el proceso
// logístico externo marca el ticket como cumplido.
type OrderService struct {
	tx     TxRunner
	res    *resolver.Resolver
	items  repository.ItemRepository
	events OrderEvents // opcional, nil = sin notificaciones
}

// NewOrderService construye el servicio de pedidos. events puede ser nil.
func NewOrderService(tx TxRunner, res *resolver.Resolver, items repository.ItemRepository, events OrderEvents) *OrderService {
	return &OrderService{tx: tx, res: res, items: items, events: events}
}

// Request crea un ticket en estado Requested hacia la ubicación destino.
// Rechaza quantity <= 0 antes de tocar el almacén. No muta el ledger.
func (s *OrderService) Request(ctx context.Context, category, itemName, location string, quantity int) (*entity.OrderTicket, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	canonical, err := s.res.ResolveCategory(category)
	if err != nil {
		return nil, err
	}
	code, err := s.res.ResolveLocation(location)
	if err != nil {
		return nil, err
	}
	item, err := s.items.Get(canonical, itemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	ticket := &entity.OrderTicket{
		ID:           uuid.New().String(),
		Category:     canonical,
		ItemName:     itemName,
		LocationCode: code,
		Quantity:     quantity,
		Status:       entity.TicketRequested,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.tx.Run(ctx, func(_ repository.LedgerRepository, orders repository.OrderRepository) error {
		return orders.Create(ticket)
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.OrderRequested(ticket)
	}
	return ticket, nil
}

// Get devuelve un ticket por id.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.OrderTicket, error) {
	var ticket *entity.OrderTicket
	err := s.tx.Run(ctx, func(_ repository.LedgerRepository, orders repository.OrderRepository) error {
		t, err := orders.GetByID(id)
		if err != nil {
			return err
		}
		ticket = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return ticket, nil
}

// Fulfill marca el ticket como cumplido y, en la misma transacción, ingresa
// la cantidad en la ubicación destino.
//
// Política de cumplimiento (el backend original no la define): el ingreso
// suma a available. Un pedido cumplido ya llegó y está en estantería;
// reserved registra artículos apartados en la ubicación, cosa que una
// entrega entrante no es.
func (s *OrderService) Fulfill(ctx context.Context, id string) (*entity.OrderTicket, error) {
	ticket, err := s.transition(ctx, id, entity.TicketFulfilled)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.OrderFulfilled(ticket)
	}
	return ticket, nil
}

// Cancel marca el ticket como cancelado. No toca el ledger.
func (s *OrderService) Cancel(ctx context.Context, id string) (*entity.OrderTicket, error) {
	ticket, err := s.transition(ctx, id, entity.TicketCancelled)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.OrderCancelled(ticket)
	}
	return ticket, nil
}

// transition aplica la máquina de estados Requested → {Fulfilled, Cancelled}.
// Fulfilled y Cancelled son terminales: cualquier otra transición es conflicto.
func (s *OrderService) transition(ctx context.Context, id, next string) (*entity.OrderTicket, error) {
	var updated *entity.OrderTicket
	run := func() error {
		return s.tx.Run(ctx, func(ledger repository.LedgerRepository, orders repository.OrderRepository) error {
			ticket, err := orders.GetForUpdate(id)
			if err != nil {
				return err
			}
			if ticket == nil {
				return domain.ErrNotFound
			}
			if !ticket.CanTransition(next) {
				return domain.ErrConflict
			}

			if next == entity.TicketFulfilled {
				rec, err := ledger.GetForUpdate(ticket.Category, ticket.ItemName, ticket.LocationCode)
				if err != nil {
					return err
				}
				if rec == nil {
					rec = &entity.StockRecord{
						Category:     ticket.Category,
						ItemName:     ticket.ItemName,
						LocationCode: ticket.LocationCode,
					}
				}
				rec.Available += ticket.Quantity
				rec.UpdatedAt = time.Now()
				if err := ledger.Upsert(rec); err != nil {
					return err
				}
			}

			ticket.Status = next
			ticket.UpdatedAt = time.Now()
			if err := orders.Update(ticket); err != nil {
				return err
			}
			updated = ticket
			return nil
		})
	}

	err := run()
	if errors.Is(err, domain.ErrConflict) && updated == nil {
		// Un conflicto de serialización del almacén se reintenta una vez;
		// un conflicto de la máquina de estados volverá a fallar igual.
		err = run()
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}
