package handler

import (
	"storefront-client/internal/core/config"
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/cart/domain"
	"storefront-client/internal/features/cart/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler exposes the cart store over the session surface.
type CartHandler struct {
	store    *store.CartStore
	cfg      config.CheckoutConfig
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(store *store.CartStore, cfg config.CheckoutConfig) *CartHandler {
	return &CartHandler{store: store, cfg: cfg, validate: validator.New()}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// cartResponse is the cart lines with their derived pricing snapshot.
type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
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

func (h *CartHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

// snapshot renders the current cart with fresh totals.
func (h *CartHandler) snapshot(c *fiber.Ctx) error {
	return c.JSON(cartResponse{
		Items:  h.store.Items(),
		Totals: h.store.Totals(h.cfg.FreeDeliveryThreshold, h.cfg.DeliveryFee),
	})
}

// GetCart refreshes and returns one user's cart.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	if err := h.store.FetchByUser(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return h.snapshot(c)
}

// AddItem validates and adds one cart line.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var input domain.CartItemInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.AddItem(c.Context(), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return h.snapshot(c)
}

// quantityBody carries a quantity change.
type quantityBody struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// UpdateQuantity changes the unit count of one cart line.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var body quantityBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.UpdateQuantity(c.Context(), c.Params("id"), body.Quantity); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return h.snapshot(c)
}

// RemoveItem deletes one cart line.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.store.RemoveItem(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return h.snapshot(c)
}
