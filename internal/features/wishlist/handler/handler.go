package handler

import (
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/wishlist/domain"
	"storefront-client/internal/features/wishlist/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler exposes the wishlist store over the session surface.
type WishlistHandler struct {
	store    *store.WishlistStore
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(store *store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{store: store, validate: validator.New()}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
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

func (h *WishlistHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

// GetWishlist refreshes and returns one user's wishlist.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	if err := h.store.FetchByUser(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Items())
}

// AddItem validates and saves a product to the wishlist.
func (h *WishlistHandler) AddItem(c *fiber.Ctx) error {
	var input domain.WishlistItemInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.Add(c.Context(), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.Items())
}

// noteBody carries a note change.
type noteBody struct {
	Note string `json:"note"`
}

// UpdateNote changes an item's annotation.
func (h *WishlistHandler) UpdateNote(c *fiber.Ctx) error {
	var body noteBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.UpdateNote(c.Context(), c.Params("id"), body.Note); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Items())
}

// RemoveItem deletes one wishlist item.
func (h *WishlistHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.store.Remove(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Items())
}
