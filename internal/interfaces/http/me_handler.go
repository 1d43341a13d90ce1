package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/analytics"
	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/fulfillment"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
)

// MeHandler endpoints del usuario autenticado. El actor sale siempre del token.
type MeHandler struct {
	dashboard     *analytics.DashboardUseCase
	requests      *fulfillment.RequestUseCase
	donations     *usecase.DonationUseCase
	supplies      *usecase.SupplyUseCase
	notifications *usecase.NotificationUseCase
}

// NewMeHandler construye el handler.
func NewMeHandler(
	dashboard *analytics.DashboardUseCase,
	requests *fulfillment.RequestUseCase,
	donations *usecase.DonationUseCase,
	supplies *usecase.SupplyUseCase,
	notifications *usecase.NotificationUseCase,
) *MeHandler {
	return &MeHandler{
		dashboard:     dashboard,
		requests:      requests,
		donations:     donations,
		supplies:      supplies,
		notifications: notifications,
	}
}

// Dashboard godoc
// @Summary      Resumen del usuario
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserDashboardDTO
// @Router       /api/me/dashboard [get]
func (h *MeHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.User(c.Context(), GetSubjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Requests lista las solicitudes propias.
// GET /api/me/requests
func (h *MeHandler) Requests(c *fiber.Ctx) error {
	list, err := h.requests.ListByUser(c.Context(), GetSubjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// SubmitRequest godoc
// @Summary      Crear solicitud de sangre
// @Tags         me
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitRequestInput  true  "grupo, cantidad, urgencia, hospital, motivo"
// @Success      201   {object}  entity.BloodRequest
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/me/requests [post]
func (h *MeHandler) SubmitRequest(c *fiber.Ctx) error {
	var in dto.SubmitRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, err := h.requests.Submit(c.Context(), GetSubjectID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// Donations donaciones propias más la elegibilidad.
// GET /api/me/donations
func (h *MeHandler) Donations(c *fiber.Ctx) error {
	userID := GetSubjectID(c)
	list, err := h.donations.ListByUser(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	el, err := h.donations.Eligibility(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"donations": list, "eligibility": el})
}

// Supplies entregas propias.
// GET /api/me/supplies
func (h *MeHandler) Supplies(c *fiber.Ctx) error {
	list, err := h.supplies.ListByUser(c.Context(), GetSubjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Notifications notificaciones propias, más recientes primero.
// GET /api/me/notifications
func (h *MeHandler) Notifications(c *fiber.Ctx) error {
	userID := GetSubjectID(c)
	list, err := h.notifications.ListForUser(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	unread, err := h.notifications.UnreadCount(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"notifications": list, "unread": unread})
}

// MarkRead marca una notificación propia como leída.
// PATCH /api/me/notifications/:id/read
func (h *MeHandler) MarkRead(c *fiber.Ctx) error {
	n, err := h.notifications.MarkReadFor(c.Context(), GetSubjectID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(n)
}

// MarkAllRead marca todas las notificaciones propias.
// PATCH /api/me/notifications/read-all
func (h *MeHandler) MarkAllRead(c *fiber.Ctx) error {
	n, err := h.notifications.MarkAllRead(c.Context(), GetSubjectID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}
