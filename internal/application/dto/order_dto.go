package dto

import "time"

// CreateOrderRequest entrada para solicitar un pedido hacia una ubicación.
type CreateOrderRequest struct {
	Category string `json:"category" validate:"required"`
	Item     string `json:"item" validate:"required"`
	Location string `json:"location" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// OrderTicketResponse salida de un ticket de pedido.
type OrderTicketResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Item      string    `json:"item"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
