package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/gym-portal/internal/upstream"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

func TestRequestTimeoutReachesHandlerContext(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 50*time.Millisecond)

	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.True(t, hasDeadline, "handler context must carry the request deadline")
}

func TestRequestTimeoutCancelsUpstreamCall(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 50*time.Millisecond)

	clients := upstream.NewClientsClient(slow.URL, nil)
	app.Get("/clients", func(c *fiber.Ctx) error {
		if _, err := clients.List(c.UserContext()); err != nil {
			return apperrors.MapError(err)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil), 3000)
	require.NoError(t, err)
	require.Less(t, time.Since(start), 2*time.Second, "the deadline must cut the call short")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "UPSTREAM_UNAVAILABLE", body.Error.Code)
}
