package handler

import (
	"errors"

	"storefront-client/internal/core/httpclient"
	addressdomain "storefront-client/internal/features/addresses/domain"
	"storefront-client/internal/features/checkout/service"
	orderstore "storefront-client/internal/features/orders/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler exposes order placement and order history over the session
// surface.
type CheckoutHandler struct {
	checkout *service.Service
	orders   *orderstore.OrderStore
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *service.Service, orders *orderstore.OrderStore) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, orders: orders, validate: validator.New()}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// checkoutBody carries a checkout submission.
type checkoutBody struct {
	UserID      string                `json:"user" validate:"required"`
	UserEmail   string                `json:"email" validate:"required,email"`
	Address     addressdomain.Address `json:"address" validate:"required"`
	PaymentMode string                `json:"paymentMode" validate:"required,oneof=COD CARD"`
}

func statusFor(err error) int {
	switch httpclient.KindOf(err) {
	case httpclient.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case httpclient.KindApplication:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *CheckoutHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

// PlaceOrder runs the checkout flow for the current cart.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var body checkoutBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	order, err := h.checkout.PlaceOrder(c.Context(), service.CheckoutRequest{
		UserID:      body.UserID,
		UserEmail:   body.UserEmail,
		Address:     body.Address,
		PaymentMode: body.PaymentMode,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return h.fail(c, fiber.StatusBadRequest, err)
		}
		return h.fail(c, statusFor(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListUserOrders refreshes and returns one user's order history.
func (h *CheckoutHandler) ListUserOrders(c *fiber.Ctx) error {
	if err := h.orders.FetchByUser(c.Context(), c.Params("userId")); err != nil {
		return h.fail(c, statusFor(err), err)
	}

	orders, _ := h.orders.Orders()
	return c.JSON(orders)
}
