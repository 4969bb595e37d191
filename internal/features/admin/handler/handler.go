package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"storefront-client/internal/core/httpclient"
	adminservice "storefront-client/internal/features/admin/service"
	branddomain "storefront-client/internal/features/brands/domain"
	brandstore "storefront-client/internal/features/brands/store"
	categorydomain "storefront-client/internal/features/categories/domain"
	categorystore "storefront-client/internal/features/categories/store"
	orderdomain "storefront-client/internal/features/orders/domain"
	orderstore "storefront-client/internal/features/orders/store"
	productdomain "storefront-client/internal/features/products/domain"
	productstore "storefront-client/internal/features/products/store"
	uploadports "storefront-client/internal/features/uploads/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the admin surfaces: the product form pipeline,
// catalog taxonomy management and order management.
type AdminHandler struct {
	form       *adminservice.ProductFormService
	products   *productstore.ProductStore
	brands     *brandstore.BrandStore
	categories *categorystore.CategoryStore
	orders     *orderstore.OrderStore
	validate   *validator.Validate
}

// NewAdminHandler creates a new AdminHandler. form may be nil when the media
// host is not configured; the product form routes then reply 503.
func NewAdminHandler(
	form *adminservice.ProductFormService,
	products *productstore.ProductStore,
	brands *brandstore.BrandStore,
	categories *categorystore.CategoryStore,
	orders *orderstore.OrderStore,
) *AdminHandler {
	return &AdminHandler{
		form:       form,
		products:   products,
		brands:     brands,
		categories: categories,
		orders:     orders,
		validate:   validator.New(),
	}
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

func (h *AdminHandler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

func (h *AdminHandler) failMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   c.Locals("requestid").(string),
	})
}

// readAsset loads one multipart file into an upload asset.
func readAsset(header *multipart.FileHeader) (uploadports.Asset, error) {
	file, err := header.Open()
	if err != nil {
		return uploadports.Asset{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return uploadports.Asset{}, err
	}
	return uploadports.Asset{Filename: header.Filename, Content: content}, nil
}

// parseProductForm reads the multipart product submission: catalog fields as
// values, the thumbnail under "thumbnail" and the gallery under "images".
func (h *AdminHandler) parseProductForm(c *fiber.Ctx) (*adminservice.ProductForm, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	// A garbled number must come back as a 400, not silently turn into zero:
	// a zero discount would pass validation and publish the wrong price.
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("price must be a number: %q", c.FormValue("price"))
	}
	discount, err := strconv.ParseFloat(c.FormValue("discountPercentage", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("discountPercentage must be a number: %q", c.FormValue("discountPercentage"))
	}
	stock, err := strconv.Atoi(c.FormValue("stockQuantity", "0"))
	if err != nil {
		return nil, fmt.Errorf("stockQuantity must be an integer: %q", c.FormValue("stockQuantity"))
	}

	form := adminservice.ProductForm{
		Title:              c.FormValue("title"),
		Description:        c.FormValue("description"),
		Price:              price,
		DiscountPercentage: discount,
		StockQuantity:      stock,
		BrandID:            c.FormValue("brand"),
		CategoryID:         c.FormValue("category"),
	}

	if headers := mf.File["thumbnail"]; len(headers) > 0 {
		form.Thumbnail, err = readAsset(headers[0])
		if err != nil {
			return nil, err
		}
	}
	for _, header := range mf.File["images"] {
		asset, err := readAsset(header)
		if err != nil {
			return nil, err
		}
		form.Gallery = append(form.Gallery, asset)
	}

	return &form, nil
}

// CreateProduct runs the product form pipeline for a new product.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	if h.form == nil {
		return h.failMessage(c, fiber.StatusServiceUnavailable, "media host is not configured")
	}

	form, err := h.parseProductForm(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.form.Create(c.Context(), *form); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return h.fail(c, fiber.StatusBadRequest, err)
		}
		return h.fail(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// UpdateProduct runs the product form pipeline against an existing product.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	if h.form == nil {
		return h.failMessage(c, fiber.StatusServiceUnavailable, "media host is not configured")
	}

	form, err := h.parseProductForm(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.form.Update(c.Context(), c.Params("id"), *form); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return h.fail(c, fiber.StatusBadRequest, err)
		}
		return h.fail(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// DeleteProduct soft-deletes a product; the record keeps its place in admin
// listings with the flag raised.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// UndeleteProduct reverses a soft delete.
func (h *AdminHandler) UndeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Undelete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// CreateBrand validates and adds a brand.
func (h *AdminHandler) CreateBrand(c *fiber.Ctx) error {
	var input branddomain.BrandInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.brands.Add(c.Context(), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.brands.Brands())
}

// UpdateBrand validates and renames a brand.
func (h *AdminHandler) UpdateBrand(c *fiber.Ctx) error {
	var input branddomain.BrandInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.brands.Update(c.Context(), c.Params("id"), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.brands.Brands())
}

// DeleteBrand removes a brand permanently.
func (h *AdminHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.brands.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.brands.Brands())
}

// CreateCategory validates and adds a category.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var input categorydomain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.categories.Add(c.Context(), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.categories.Categories())
}

// UpdateCategory validates and renames a category.
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	var input categorydomain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.categories.Update(c.Context(), c.Params("id"), input); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.categories.Categories())
}

// DeleteCategory removes a category permanently.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, statusFor(err), err)
	}
	return c.JSON(h.categories.Categories())
}

// ListOrders refreshes and returns one admin page of all orders.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	pagination := productdomain.Pagination{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}

	if err := h.orders.FetchAll(c.Context(), pagination); err != nil {
		return h.fail(c, statusFor(err), err)
	}

	orders, total := h.orders.Orders()
	return c.JSON(fiber.Map{"data": orders, "total": total})
}

// statusBody carries an order status change.
type statusBody struct {
	Status orderdomain.OrderStatus `json:"status" validate:"required,oneof=Pending Dispatched 'Out for delivery' Delivered Cancelled"`
}

// UpdateOrderStatus changes an order's fulfilment state.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var body statusBody
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.validate.Struct(body); err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	if err := h.orders.UpdateStatus(c.Context(), c.Params("id"), body.Status); err != nil {
		return h.fail(c, statusFor(err), err)
	}

	orders, _ := h.orders.Orders()
	return c.JSON(orders)
}
