package entity

import "time"

// Estados válidos de un OrderTicket.
// Máquina de estados: Requested → {Fulfilled, Cancelled}. Fulfilled y
// Cancelled son terminales; no existe ninguna otra transición.
const (
	TicketRequested = "requested"
	TicketFulfilled = "fulfilled"
	TicketCancelled = "cancelled"
)

// OrderTicket registra la intención de mover stock hacia una ubicación.
// Crear el ticket NO muta el ledger: solo la transición a Fulfilled provoca
// el ingreso posterior en la ubicación destino.
type OrderTicket struct {
	ID           string
	Category     string
	ItemName     string
	LocationCode string // destino
	Quantity     int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Terminal indica si el ticket está en un estado final.
func (t *OrderTicket) Terminal() bool {
	return t.Status == TicketFulfilled || t.Status == TicketCancelled
}

// CanTransition valida una transición de estado del ticket.
func (t *OrderTicket) CanTransition(next string) bool {
	if t.Status != TicketRequested {
		return false
	}
	return next == TicketFulfilled || next == TicketCancelled
}
