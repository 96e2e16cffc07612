package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/facade"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

// UsersHandler proxies user CRUD onto the users microservice.
type UsersHandler struct {
	facades *facade.Factory
}

// NewUsersHandler constructs handler.
func NewUsersHandler(facades *facade.Factory) *UsersHandler {
	return &UsersHandler{facades: facades}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	users, err := fac.Users().List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": users})
}

// Get handles GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	user, err := fac.Users().GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": user})
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var user domain.User
	if err := c.BodyParser(&user); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Users().Create(c.UserContext(), &user)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Update handles PUT /api/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var user domain.User
	if err := c.BodyParser(&user); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Users().Update(c.UserContext(), id, &user)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	deleted := fac.Users().Delete(c.UserContext(), id)
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}
