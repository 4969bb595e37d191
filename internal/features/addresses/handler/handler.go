package handler

import (
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/addresses/domain"
	"storefront-client/internal/features/addresses/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler exposes the address store over the session surface.
type AddressHandler struct {
	store    *store.AddressStore
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(store *store.AddressStore) *AddressHandler {
	return &AddressHandler{store: store, validate: validator.New()}
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

func (h *AddressHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

// ListAddresses refreshes and returns one user's saved addresses.
func (h *AddressHandler) ListAddresses(c *fiber.Ctx) error {
	if err := h.store.FetchByUser(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Addresses())
}

// AddAddress validates and saves a new address.
func (h *AddressHandler) AddAddress(c *fiber.Ctx) error {
	var input domain.AddressInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.Add(c.Context(), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.Addresses())
}
