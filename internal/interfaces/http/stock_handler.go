package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/inventory"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// StockHandler consulta y ajuste manual del inventario.
type StockHandler struct {
	uc *inventory.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List GET /api/admin/stock. Filas en el orden canónico de grupos.
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Set godoc
// @Summary      Fijar cantidades de stock
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SetStockRequest  true  "grupo -> cantidad"
// @Success      200   {array}  entity.BloodStock
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/stock [put]
func (h *StockHandler) Set(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	targets := make(map[entity.BloodGroup]int, len(in.Quantities))
	for g, q := range in.Quantities {
		targets[entity.BloodGroup(g)] = q
	}
	list, err := h.uc.SetQuantities(c.Context(), targets)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Delta godoc
// @Summary      Ajustar stock de un grupo
// @Description  Suma delta a la cantidad del grupo; el resultado nunca baja de 0.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        group  path  string                 true  "grupo sanguíneo (URL-encoded, ej. A%2B)"
// @Param        body   body  dto.StockDeltaRequest  true  "delta"
// @Success      200    {object}  entity.BloodStock
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/stock/{group}/delta [post]
func (h *StockHandler) Delta(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("group"))
	if err != nil {
		return writeError(c, domain.Invalid("group", "grupo mal codificado"))
	}
	var in dto.StockDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	row, err := h.uc.ApplyDelta(c.Context(), entity.BloodGroup(raw), in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(row)
}
