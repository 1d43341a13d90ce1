package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
)

// SupplyHandler entregas y comprobantes.
type SupplyHandler struct {
	uc *usecase.SupplyUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(uc *usecase.SupplyUseCase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// List GET /api/admin/supplies
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Receipt godoc
// @Summary      Comprobante de entrega en PDF
// @Tags         admin
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/supplies/{id}/receipt [get]
func (h *SupplyHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.ReceiptPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=entrega-%s.pdf", id))
	return c.Send(pdf)
}
