package handler

import (
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/products/domain"
	"storefront-client/internal/features/products/store"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler exposes the product store over the session surface.
type ProductHandler struct {
	store *store.ProductStore
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store *store.ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// listResponse is one page of products with its total match count.
type listResponse struct {
	Data  []domain.Product `json:"data"`
	Total int              `json:"total"`
}

// parseFilters reads the listing query into the filter specification.
// Brand and category repeat the key for multi-selection.
func parseFilters(c *fiber.Ctx) domain.Filters {
	filters := domain.Filters{
		User:           c.Query("user"),
		IncludeDeleted: c.QueryBool("includeDeleted"),
		Sort: domain.SortSpec{
			Field: c.Query("sort"),
			Order: c.Query("order", "asc"),
		},
		Pagination: domain.Pagination{
			Page:  c.QueryInt("page"),
			Limit: c.QueryInt("limit"),
		},
	}

	for _, brand := range c.Context().QueryArgs().PeekMulti("brand") {
		filters.Brands = append(filters.Brands, string(brand))
	}
	for _, category := range c.Context().QueryArgs().PeekMulti("category") {
		filters.Categories = append(filters.Categories, string(category))
	}

	return filters
}

// statusFor maps a transport error to the session surface status code.
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

// ListProducts refreshes the product collection per the request's filters
// and returns the resulting page.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	if err := h.store.FetchAll(c.Context(), parseFilters(c)); err != nil {
		return c.Status(statusFor(err)).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	items, total := h.store.Page()
	return c.JSON(listResponse{Data: items, Total: total})
}

// GetProduct loads one product into the selected slot and returns it.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "product id is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if err := h.store.FetchByID(c.Context(), id); err != nil {
		return c.Status(statusFor(err)).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(h.store.Selected())
}
