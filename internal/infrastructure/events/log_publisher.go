// Package events publica las notificaciones de tickets de pedido. La única
// implementación actual escribe al log estructurado; el puerto existe para
// poder conectar un broker sin tocar el núcleo.
package events

import (
	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/pkg/logger"
)

var _ inventory.OrderEvents = (*LogPublisher)(nil)

// LogPublisher emite los eventos de pedido como entradas de log.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) OrderRequested(ticket *entity.OrderTicket) {
	p.event("order_requested", ticket)
}

func (p *LogPublisher) OrderFulfilled(ticket *entity.OrderTicket) {
	p.event("order_fulfilled", ticket)
}

func (p *LogPublisher) OrderCancelled(ticket *entity.OrderTicket) {
	p.event("order_cancelled", ticket)
}

func (p *LogPublisher) event(name string, t *entity.OrderTicket) {
	p.log.Info().
		Str("event", name).
		Str("ticket_id", t.ID).
		Str("category", t.Category).
		Str("item", t.ItemName).
		Str("location", t.LocationCode).
		Int("quantity", t.Quantity).
		Str("status", t.Status).
		Msg("evento de pedido")
}
