package controllers

import (
	"errors"
	"go-order-relay/src/controllers/models"
	"go-order-relay/src/infrastructure/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

type Router interface {
	Route(app *fiber.App)
}

// NewApp builds the fiber application with the shared middleware chain
// and registers every router.
func NewApp(logger log.Logger, routers ...Router) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  81920,
		WriteBufferSize: 81920,
		ServerHeader:    "Order-Relay-Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			detail := "Internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				detail = fe.Message
			} else {
				logger.Exception(c.UserContext(), "Unhandled HTTP request error", err)
			}
			return c.Status(code).JSON(models.NewErrorResponse(detail))
		},
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(log.RequestLogger(logger))
	app.Use(recover.New())

	app.Get("/api/swagger/*", fiberSwagger.WrapHandler)
	for _, router := range routers {
		router.Route(app)
	}
	return app
}
