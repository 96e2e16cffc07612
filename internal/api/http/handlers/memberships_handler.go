package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/facade"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

// MembershipsHandler proxies membership CRUD onto the memberships
// microservice and hosts the renew workflow.
type MembershipsHandler struct {
	facades *facade.Factory
}

// NewMembershipsHandler constructs handler.
func NewMembershipsHandler(facades *facade.Factory) *MembershipsHandler {
	return &MembershipsHandler{facades: facades}
}

// List handles GET /api/memberships.
func (h *MembershipsHandler) List(c *fiber.Ctx) error {
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	memberships, err := fac.Memberships().List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": memberships})
}

// Get handles GET /api/memberships/:id.
func (h *MembershipsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	m, err := fac.Memberships().GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// Create handles POST /api/memberships.
func (h *MembershipsHandler) Create(c *fiber.Ctx) error {
	var m domain.Membership
	if err := c.BodyParser(&m); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Memberships().Create(c.UserContext(), &m)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Update handles PUT /api/memberships/:id.
func (h *MembershipsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var m domain.Membership
	if err := c.BodyParser(&m); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Memberships().Update(c.UserContext(), id, &m)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}

// Delete handles DELETE /api/memberships/:id.
func (h *MembershipsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	deleted := fac.Memberships().Delete(c.UserContext(), id)
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}

// Renew handles POST /api/memberships/:id/renew.
func (h *MembershipsHandler) Renew(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.RenewMembership(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return renderResult(c, result)
}
