package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/api/dto"
	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/facade"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

// ClientsHandler proxies client CRUD onto the clients microservice and
// hosts the register-membership workflow.
type ClientsHandler struct {
	facades *facade.Factory
}

// NewClientsHandler constructs handler.
func NewClientsHandler(facades *facade.Factory) *ClientsHandler {
	return &ClientsHandler{facades: facades}
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	clients, err := fac.Clients().List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": clients})
}

// Get handles GET /api/clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	client, err := fac.Clients().GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": client})
}

// Create handles POST /api/clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var client domain.Client
	if err := c.BodyParser(&client); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Clients().Create(c.UserContext(), &client)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Update handles PUT /api/clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var client domain.Client
	if err := c.BodyParser(&client); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Clients().Update(c.UserContext(), id, &client)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	deleted := fac.Clients().Delete(c.UserContext(), id)
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}

// RegisterMembership handles POST /api/clients/:id/memberships.
func (h *ClientsHandler) RegisterMembership(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.RegisterMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.RegisterMembership(c.UserContext(), id, &req.Membership)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}
