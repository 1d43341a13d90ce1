package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/fulfillment"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// RequestHandler revisión de solicitudes por el admin.
type RequestHandler struct {
	uc *fulfillment.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *fulfillment.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Pending | Approved | Rejected | Fulfilled"
// @Success      200  {array}  entity.BloodRequest
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	status := entity.RequestStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		return writeError(c, domain.Invalid("status", "estado desconocido"))
	}
	list, err := h.uc.List(c.Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Description  Requiere estado Pending y stock suficiente; descuenta el stock y notifica al receptor.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  entity.BloodRequest
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK incluye available"
// @Router       /api/admin/requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	req, err := h.uc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(req)
}

// Reject POST /api/admin/requests/:id/reject
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	req, err := h.uc.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(req)
}

// Fulfill godoc
// @Summary      Entregar solicitud aprobada
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "ID de la solicitud"
// @Param        body  body  dto.FulfillInput   true  "centro de recolección y fecha"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/requests/{id}/fulfill [post]
func (h *RequestHandler) Fulfill(c *fiber.Ctx) error {
	var in dto.FulfillInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, supply, err := h.uc.Fulfill(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"request": req, "supply": supply})
}
