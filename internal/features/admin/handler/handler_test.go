package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	adminservice "storefront-client/internal/features/admin/service"
	branddomain "storefront-client/internal/features/brands/domain"
	brandstore "storefront-client/internal/features/brands/store"
	categorydomain "storefront-client/internal/features/categories/domain"
	categorystore "storefront-client/internal/features/categories/store"
	orderstore "storefront-client/internal/features/orders/store"
	productdomain "storefront-client/internal/features/products/domain"
	productstore "storefront-client/internal/features/products/store"
	uploadports "storefront-client/internal/features/uploads/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductGateway struct {
	softDelete func(ctx context.Context, id string) (*productdomain.Product, error)
	undelete   func(ctx context.Context, id string) (*productdomain.Product, error)
}

func (f *fakeProductGateway) FetchAll(context.Context, productdomain.Filters) (productdomain.Page, error) {
	return productdomain.Page{}, nil
}

func (f *fakeProductGateway) FetchByID(context.Context, string) (*productdomain.Product, error) {
	return nil, nil
}

func (f *fakeProductGateway) Add(context.Context, productdomain.ProductInput) (*productdomain.Product, error) {
	return nil, nil
}

func (f *fakeProductGateway) Update(context.Context, productdomain.ProductUpdate) (*productdomain.Product, error) {
	return nil, nil
}

func (f *fakeProductGateway) SoftDelete(ctx context.Context, id string) (*productdomain.Product, error) {
	return f.softDelete(ctx, id)
}

func (f *fakeProductGateway) Undelete(ctx context.Context, id string) (*productdomain.Product, error) {
	return f.undelete(ctx, id)
}

type fakeBrandGateway struct {
	add func(ctx context.Context, input branddomain.BrandInput) (*branddomain.Brand, error)
}

func (f *fakeBrandGateway) FetchAll(context.Context) ([]branddomain.Brand, error) { return nil, nil }

func (f *fakeBrandGateway) Add(ctx context.Context, input branddomain.BrandInput) (*branddomain.Brand, error) {
	return f.add(ctx, input)
}

func (f *fakeBrandGateway) Update(context.Context, string, branddomain.BrandInput) (*branddomain.Brand, error) {
	return nil, nil
}

func (f *fakeBrandGateway) Delete(context.Context, string) error { return nil }

type fakeCategoryGateway struct{}

func (f *fakeCategoryGateway) FetchAll(context.Context) ([]categorydomain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryGateway) Add(context.Context, categorydomain.CategoryInput) (*categorydomain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryGateway) Update(context.Context, string, categorydomain.CategoryInput) (*categorydomain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryGateway) Delete(context.Context, string) error { return nil }

type fakeWriter struct{}

func (f *fakeWriter) Add(context.Context, productdomain.ProductInput) error { return nil }

func (f *fakeWriter) Update(context.Context, productdomain.ProductUpdate) error { return nil }

type fakeUploads struct{}

func (f *fakeUploads) UploadAll(_ context.Context, assets []uploadports.Asset) ([]string, error) {
	urls := make([]string, len(assets))
	for i := range assets {
		urls[i] = "https://cdn.example.com/a.png"
	}
	return urls, nil
}

func newTestApp(products *fakeProductGateway, brands *fakeBrandGateway) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))

	h := NewAdminHandler(
		adminservice.NewProductFormService(&fakeWriter{}, &fakeUploads{}),
		productstore.NewProductStore(products),
		brandstore.NewBrandStore(brands),
		categorystore.NewCategoryStore(&fakeCategoryGateway{}),
		orderstore.NewOrderStore(nil),
	)

	app.Post("/admin/products", h.CreateProduct)
	app.Patch("/admin/products/undelete/:id", h.UndeleteProduct)
	app.Delete("/admin/products/:id", h.DeleteProduct)
	app.Post("/admin/brands", h.CreateBrand)

	return app
}

// productFormBody builds a multipart product submission with the given
// discount value.
func productFormBody(t *testing.T, discount string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":              "Keyboard",
		"description":        "Tenkeyless",
		"price":              "120",
		"discountPercentage": discount,
		"stockQuantity":      "5",
		"brand":              "b1",
		"category":           "c1",
	}
	for key, value := range fields {
		require.NoError(t, form.WriteField(key, value))
	}
	thumb, err := form.CreateFormFile("thumbnail", "thumb.png")
	require.NoError(t, err)
	thumb.Write([]byte("t"))
	image, err := form.CreateFormFile("images", "side.png")
	require.NoError(t, err)
	image.Write([]byte("s"))
	require.NoError(t, form.Close())

	return &buf, form.FormDataContentType()
}

// TestAdminHandler_GarbledDiscountRejected verifies a non-numeric discount
// is a 400, not a silent zero.
func TestAdminHandler_GarbledDiscountRejected(t *testing.T) {
	app := newTestApp(&fakeProductGateway{}, &fakeBrandGateway{})

	body, contentType := productFormBody(t, "ten percent")
	req := httptest.NewRequest("POST", "/admin/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestAdminHandler_ValidFormAccepted verifies the happy path still works
// with the stricter parsing.
func TestAdminHandler_ValidFormAccepted(t *testing.T) {
	app := newTestApp(&fakeProductGateway{}, &fakeBrandGateway{})

	body, contentType := productFormBody(t, "12.5")
	req := httptest.NewRequest("POST", "/admin/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

// TestAdminHandler_SoftDeleteAndUndeleteRoutes verifies the delete and
// undelete operations are reachable from the admin surface.
func TestAdminHandler_SoftDeleteAndUndeleteRoutes(t *testing.T) {
	deleted, undeleted := "", ""
	app := newTestApp(&fakeProductGateway{
		softDelete: func(_ context.Context, id string) (*productdomain.Product, error) {
			deleted = id
			return &productdomain.Product{ID: id, IsDeleted: true}, nil
		},
		undelete: func(_ context.Context, id string) (*productdomain.Product, error) {
			undeleted = id
			return &productdomain.Product{ID: id, IsDeleted: false}, nil
		},
	}, &fakeBrandGateway{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/products/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "p1", deleted)

	resp, err = app.Test(httptest.NewRequest("PATCH", "/admin/products/undelete/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "p1", undeleted)
}

// TestAdminHandler_CreateBrand verifies brand management is reachable and
// validated.
func TestAdminHandler_CreateBrand(t *testing.T) {
	app := newTestApp(&fakeProductGateway{}, &fakeBrandGateway{
		add: func(_ context.Context, input branddomain.BrandInput) (*branddomain.Brand, error) {
			return &branddomain.Brand{ID: "b9", Name: input.Name}, nil
		},
	})

	req := httptest.NewRequest("POST", "/admin/brands", strings.NewReader(`{"name": "Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("POST", "/admin/brands", strings.NewReader(`{"name": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
