package controllers

import (
	"errors"
	"go-order-relay/src/controllers/models"
	"go-order-relay/src/services/status"

	"github.com/gofiber/fiber/v2"
)

type StatusController struct {
	statusService status.StatusService
}

func NewStatusController(statusService status.StatusService) *StatusController {
	return &StatusController{
		statusService: statusService,
	}
}

func (c *StatusController) Route(app *fiber.App) {
	api := app.Group("/api/status")
	api.Post("/", c.CreateStatusCheck)
	api.Get("/", c.GetStatusChecks)
}

// CreateStatusCheck godoc
// @Summary      Record a status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        check  body      models.StatusCheckRequest  true  "Status check"
// @Success      200    {object}  status.StatusCheck
// @Failure      422    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/status [post]
func (c *StatusController) CreateStatusCheck(ctx *fiber.Ctx) error {
	var request models.StatusCheckRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(models.NewErrorResponse(invalidBodyDetail))
	}

	check, err := c.statusService.Create(ctx.UserContext(), request.ClientName)
	if errors.Is(err, status.ErrClientNameRequired) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(models.NewErrorResponse(err.Error()))
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse("Failed to create status check"))
	}
	return ctx.JSON(check)
}

// GetStatusChecks godoc
// @Summary      List status checks
// @Tags         status
// @Produce      json
// @Success      200  {array}   status.StatusCheck
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/status [get]
func (c *StatusController) GetStatusChecks(ctx *fiber.Ctx) error {
	checks, err := c.statusService.List(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse("Failed to retrieve status checks"))
	}
	return ctx.JSON(checks)
}
