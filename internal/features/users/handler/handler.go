package handler

import (
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/users/domain"
	"storefront-client/internal/features/users/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes the profile store over the session surface.
type UserHandler struct {
	store    *store.UserStore
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store *store.UserStore) *UserHandler {
	return &UserHandler{store: store, validate: validator.New()}
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

func (h *UserHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

// GetProfile loads and returns one user's profile.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	if err := h.store.FetchByID(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Profile())
}

// UpdateProfile validates and applies a profile edit.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var update domain.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(update); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.store.Update(c.Context(), c.Params("id"), update); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.store.Profile())
}
