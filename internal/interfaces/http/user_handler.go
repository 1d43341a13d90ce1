package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
)

// UserHandler CRUD de usuarios para el admin.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "filtro por nombre, email o grupo"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToUserResponses(list))
}

// Create godoc
// @Summary      Crear usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UserInput  true  "datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserResponse(u))
}

// GetByID GET /api/admin/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	u, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if u == nil {
		return writeError(c, domain.ErrUserNotFound)
	}
	return c.JSON(dto.ToUserResponse(u))
}

// Update PUT /api/admin/users/:id. Un password vacío conserva el actual.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToUserResponse(u))
}

// Delete DELETE /api/admin/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
