package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del panel de administración.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin godoc
// @Summary      Resumen del banco de sangre
// @Description  Totales de donantes, receptores y donaciones, stock por grupo, donaciones de los últimos 6 meses y solicitudes pendientes.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminDashboardDTO
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	summary, err := h.uc.Admin(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
