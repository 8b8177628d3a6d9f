package controllers

import (
	"go-order-relay/src/controllers/models"
	"go-order-relay/src/services/order/domain"
	"time"

	"github.com/gofiber/fiber/v2"
)

const serviceBanner = "ShopEasy API - Google Sheets & Telegram Integration"

type SystemController struct {
	orderService domain.OrderService
	now          func() time.Time
}

func NewSystemController(orderService domain.OrderService) *SystemController {
	return &SystemController{
		orderService: orderService,
		now:          time.Now,
	}
}

func (c *SystemController) Route(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/", c.Root)
	api.Get("/health", c.Health)
	api.Get("/test-connections", c.TestConnections)
}

// Root godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.BannerResponse
// @Router       /api/ [get]
func (c *SystemController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(models.BannerResponse{Message: serviceBanner})
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the ledger and notifier are configured. Performs no outbound calls.
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /api/health [get]
func (c *SystemController) Health(ctx *fiber.Ctx) error {
	health := c.orderService.Health()
	return ctx.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: c.now().UTC(),
		Services: models.ServicesStatus{
			GoogleSheets: health.Ledger,
			Telegram:     health.Notifier,
		},
	})
}

// TestConnections godoc
// @Summary      Test external connections
// @Description  Provisions the ledger header row and calls Telegram getMe
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.TestConnectionsResponse
// @Router       /api/test-connections [get]
func (c *SystemController) TestConnections(ctx *fiber.Ctx) error {
	return ctx.JSON(models.NewTestConnectionsResponse(c.orderService.Diagnose(ctx.UserContext())))
}
