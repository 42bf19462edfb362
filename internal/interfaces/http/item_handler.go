package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

// ItemHandler maneja las vistas agregadas de artículos.
type ItemHandler struct {
	agg *aggregate.UseCase
	res *resolver.Resolver
}

// NewItemHandler construye el handler.
func NewItemHandler(agg *aggregate.UseCase, res *resolver.Resolver) *ItemHandler {
	return &ItemHandler{agg: agg, res: res}
}

// CategorySummary godoc
// @Summary      Resumen de una categoría
// @Description  Total por artículo de la categoría sumado sobre todas las
// @Description  ubicaciones, envuelto como {"<categoria>_summary": {...}} por
// @Description  compatibilidad con el cliente existente. Una categoría
// @Description  desconocida devuelve el resumen vacío, no 404. Cuando el
// @Description  almacén no responde y se sirve la última copia conocida, la
// @Description  respuesta lleva "degraded": true.
// @Tags         items
// @Produce      json
// @Param        category  path  string  true  "Nombre o alias de la categoría"
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/{category} [get]
func (h *ItemHandler) CategorySummary(c *fiber.Ctx) error {
	category := pathParam(c, "category")

	canonical, err := h.res.ResolveCategory(category)
	if err != nil {
		// Categoría desconocida: resumen vacío bajo la clave derivada, igual
		// que el backend original.
		return c.JSON(fiber.Map{strings.ToLower(category) + "_summary": fiber.Map{}})
	}

	summary, degraded, err := h.agg.CategorySummary(c.Context(), canonical)
	if err != nil {
		return respondError(c, err)
	}
	body := fiber.Map{canonical + "_summary": summary}
	if degraded {
		body["degraded"] = true
	}
	return c.JSON(body)
}

// ItemDetail godoc
// @Summary      Detalle de un artículo
// @Description  Totales agregados y desglose por ubicación (per_location solo
// @Description  incluye ubicaciones con registro de stock).
// @Tags         items
// @Produce      json
// @Param        category  path  string  true  "Nombre o alias de la categoría"
// @Param        item      path  string  true  "Nombre del artículo"
// @Success      200  {object}  dto.ItemDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/items/{category}/{item} [get]
func (h *ItemHandler) ItemDetail(c *fiber.Ctx) error {
	category := pathParam(c, "category")
	item := pathParam(c, "item")

	out, err := h.agg.ItemDetail(c.Context(), category, item)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// pathParam devuelve el parámetro de ruta decodificado (los nombres alemanes
// llegan URL-encoded).
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
