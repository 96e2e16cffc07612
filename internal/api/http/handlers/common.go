package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/facade"
	"github.com/spec-kit/gym-portal/internal/session"
	"github.com/spec-kit/gym-portal/internal/upstream"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

// requestFacade builds the facade for this request, bound to the
// request's credential bridge.
func requestFacade(c *fiber.Ctx, factory *facade.Factory) (*facade.GymFacade, error) {
	bridge, ok := session.BridgeFromContext(c)
	if !ok {
		return nil, apperrors.NewInternalError(nil)
	}
	return factory.ForRequest(bridge), nil
}

// renderResult writes a mutating operation's envelope: the entity on
// success, the upstream message on failure.
func renderResult[T any](c *fiber.Ctx, result upstream.Result[T]) error {
	if result.OK() {
		return c.JSON(fiber.Map{"data": result.Value()})
	}
	return apperrors.NewUpstreamRejected(http.StatusUnprocessableEntity, result.Message())
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}
