package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
)

// NotificationHandler notificaciones desde el panel de administración.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/admin/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Post godoc
// @Summary      Enviar notificación a un usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PostNotificationInput  true  "destinatario, título, mensaje, tipo"
// @Success      201   {object}  entity.Notification
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/notifications [post]
func (h *NotificationHandler) Post(c *fiber.Ctx) error {
	var in dto.PostNotificationInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	n, err := h.uc.Post(c.Context(), in.UserID, in.Title, in.Message, in.Type)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}
