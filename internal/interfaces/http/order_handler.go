package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
)

// OrderHandler maneja los tickets de pedido.
type OrderHandler struct {
	svc *inventory.OrderService
}

// NewOrderHandler construye el handler.
func NewOrderHandler(svc *inventory.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create godoc
// @Summary      Solicitar un pedido hacia una ubicación
// @Description  Crea un ticket en estado requested. No muta el stock: el
// @Description  ingreso ocurre recién cuando el ticket se marca como cumplido.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "category, item, location, quantity"
// @Success      201  {object}  dto.OrderTicketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ticket, err := h.svc.Request(c.Context(), in.Category, in.Item, in.Location, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(ticket))
}

// GetByID godoc
// @Summary      Consultar un ticket de pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.OrderTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	ticket, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(ticket))
}

// Fulfill godoc
// @Summary      Marcar un ticket como cumplido
// @Description  Transición requested → fulfilled. Ingresa la cantidad del
// @Description  ticket en la ubicación destino en la misma transacción.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.OrderTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/fulfill [post]
func (h *OrderHandler) Fulfill(c *fiber.Ctx) error {
	ticket, err := h.svc.Fulfill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(ticket))
}

// Cancel godoc
// @Summary      Cancelar un ticket de pedido
// @Description  Transición requested → cancelled. No toca el stock.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.OrderTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	ticket, err := h.svc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(ticket))
}

func toOrderResponse(t *entity.OrderTicket) dto.OrderTicketResponse {
	return dto.OrderTicketResponse{
		ID:        t.ID,
		Category:  t.Category,
		Item:      t.ItemName,
		Location:  t.LocationCode,
		Quantity:  t.Quantity,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
