package controllers

import (
	"errors"
	"go-order-relay/src/controllers/models"
	"go-order-relay/src/services/order/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	orderPlacedMessage    = "Order placed successfully! You will receive a confirmation email shortly."
	rateLimitedDetail     = "Too many requests. Please wait before placing another order."
	orderFailedDetail     = "Failed to process order. Please try again or contact support."
	invalidBodyDetail     = "Invalid request body"
	validationDetail      = "Invalid order details"
	ordersRetrievalDetail = "Failed to retrieve orders"
)

type OrderController struct {
	domain.OrderService
}

func NewOrderController(orderService domain.OrderService) *OrderController {
	return &OrderController{
		OrderService: orderService,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/orders")
	api.Post("/", c.CreateOrder)
	api.Get("/", c.GetOrders)
}

// CreateOrder godoc
// @Summary      Place a new order
// @Description  Validates the order, appends it to the Google Sheets ledger and alerts the shop owner on Telegram
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      models.OrderRequest  true  "Order payload"
// @Success      200    {object}  models.OrderResponse
// @Failure      422    {object}  models.ErrorResponse
// @Failure      429    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/orders [post]
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var request models.OrderRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(models.NewErrorResponse(invalidBodyDetail))
	}

	placed, err := c.OrderService.PlaceOrder(ctx.UserContext(), ctx.IP(), request.ToSubmission())
	if err != nil {
		return orderError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(models.OrderResponse{
		ID:        placed.OrderID,
		Status:    "success",
		Message:   orderPlacedMessage,
		OrderID:   placed.OrderID,
		Timestamp: placed.Timestamp,
	})
}

func orderError(ctx *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := models.NewErrorResponse(validationDetail)
		body.Errors = validationErr.Fields
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(body)
	case errors.Is(err, domain.ErrRateLimited):
		return ctx.Status(fiber.StatusTooManyRequests).JSON(models.NewErrorResponse(rateLimitedDetail))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(orderFailedDetail))
	}
}

// GetOrders godoc
// @Summary      List recent orders
// @Description  Returns backed-up orders, most recent first
// @Tags         orders
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of orders (default 50, max 1000)"
// @Success      200    {object}  models.OrdersResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/orders [get]
func (c *OrderController) GetOrders(ctx *fiber.Ctx) error {
	orders, err := c.OrderService.RecentOrders(ctx.UserContext(), ctx.QueryInt("limit", 0))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(ordersRetrievalDetail))
	}
	return ctx.JSON(models.OrdersResponse{Orders: orders})
}
