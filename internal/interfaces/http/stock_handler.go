package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
)

// StockHandler maneja las mutaciones del ledger de stock.
type StockHandler struct {
	svc *inventory.StockService
}

// NewStockHandler construye el handler.
func NewStockHandler(svc *inventory.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Adjust godoc
// @Summary      Fijar el total de un artículo en una ubicación
// @Description  Fija overall = new_overall. El delta se aplica a available
// @Description  con piso en 0; reserved no se toca.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "category, item, location, new_overall"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock [put]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.AdjustTotal(c.Context(), in.Category, in.Item, in.Location, in.NewOverall)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponse(rec))
}

// Increment godoc
// @Summary      Paso +1/−1 de un artículo en una ubicación
// @Description  step debe ser 1 o -1. El -1 con available en 0 es un no-op.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IncrementStockRequest  true  "category, item, location, step"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/increment [post]
func (h *StockHandler) Increment(c *fiber.Ctx) error {
	var in dto.IncrementStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Increment(c.Context(), in.Category, in.Item, in.Location, in.Step)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponse(rec))
}

func toStockResponse(rec *entity.StockRecord) dto.StockRecordResponse {
	return dto.StockRecordResponse{
		Category:  rec.Category,
		Item:      rec.ItemName,
		Location:  rec.LocationCode,
		Available: rec.Available,
		Reserved:  rec.Reserved,
		Overall:   rec.Overall(),
	}
}
