package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP de ubicaciones.
type LocationHandler struct {
	uc  *usecase.LocationUseCase
	agg *aggregate.UseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase, agg *aggregate.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc, agg: agg}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ItemsByLocation godoc
// @Summary      Stock de una ubicación agrupado por categoría
// @Description  Acepta el nombre mostrado actual, un alias legado o el código loc_*.
// @Tags         locations
// @Produce      json
// @Param        location  query  string  true  "Nombre o código de la ubicación"
// @Success      200  {object}  dto.LocationDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/by_location [get]
func (h *LocationHandler) ItemsByLocation(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el parámetro location"})
	}
	out, err := h.agg.LocationDetail(c.Context(), location)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
