package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
)

// DonationHandler registro y baja de donaciones.
type DonationHandler struct {
	uc *usecase.DonationUseCase
}

// NewDonationHandler construye el handler.
func NewDonationHandler(uc *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// List GET /api/admin/donations
func (h *DonationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Record godoc
// @Summary      Registrar donación
// @Description  Suma la cantidad al stock del grupo del donante.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecordDonationInput  true  "donante, fecha, centro, cantidad"
// @Success      201   {object}  entity.Donation
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/donations [post]
func (h *DonationHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordDonationInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// Delete DELETE /api/admin/donations/:id. Resta la cantidad del stock.
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
