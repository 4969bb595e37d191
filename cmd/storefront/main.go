package main

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront-client/internal/core/config"
	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/core/logger"
	"storefront-client/internal/core/server"
	addressadapters "storefront-client/internal/features/addresses/adapters"
	addresshandler "storefront-client/internal/features/addresses/handler"
	addressstore "storefront-client/internal/features/addresses/store"
	adminhandler "storefront-client/internal/features/admin/handler"
	adminservice "storefront-client/internal/features/admin/service"
	brandadapters "storefront-client/internal/features/brands/adapters"
	brandstore "storefront-client/internal/features/brands/store"
	cartadapters "storefront-client/internal/features/cart/adapters"
	carthandler "storefront-client/internal/features/cart/handler"
	cartstore "storefront-client/internal/features/cart/store"
	categoryadapters "storefront-client/internal/features/categories/adapters"
	categorystore "storefront-client/internal/features/categories/store"
	checkoutadapters "storefront-client/internal/features/checkout/adapters"
	checkouthandler "storefront-client/internal/features/checkout/handler"
	checkoutservice "storefront-client/internal/features/checkout/service"
	orderadapters "storefront-client/internal/features/orders/adapters"
	orderstore "storefront-client/internal/features/orders/store"
	productadapters "storefront-client/internal/features/products/adapters"
	producthandler "storefront-client/internal/features/products/handler"
	productstore "storefront-client/internal/features/products/store"
	uploadadapters "storefront-client/internal/features/uploads/adapters"
	uploadservice "storefront-client/internal/features/uploads/service"
	useradapters "storefront-client/internal/features/users/adapters"
	userhandler "storefront-client/internal/features/users/handler"
	userstore "storefront-client/internal/features/users/store"
	wishlistadapters "storefront-client/internal/features/wishlist/adapters"
	wishlisthandler "storefront-client/internal/features/wishlist/handler"
	wishliststore "storefront-client/internal/features/wishlist/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	client, err := httpclient.New(cfg.API)
	if err != nil {
		l.Fatal("Storefront API client misconfigured", zap.Error(err))
	}

	// Stores, each behind its own gateway against the shared client.
	products := productstore.NewProductStore(productadapters.NewHTTPProductGateway(client))
	brands := brandstore.NewBrandStore(brandadapters.NewHTTPBrandGateway(client))
	categories := categorystore.NewCategoryStore(categoryadapters.NewHTTPCategoryGateway(client))
	cart := cartstore.NewCartStore(cartadapters.NewHTTPCartGateway(client))
	wishlist := wishliststore.NewWishlistStore(wishlistadapters.NewHTTPWishlistGateway(client))
	orders := orderstore.NewOrderStore(orderadapters.NewHTTPOrderGateway(client))
	addresses := addressstore.NewAddressStore(addressadapters.NewHTTPAddressGateway(client))
	users := userstore.NewUserStore(useradapters.NewHTTPUserGateway(client))

	// The admin form pipeline only exists when the media host is configured;
	// its routes degrade gracefully otherwise.
	var productForm *adminservice.ProductFormService
	uploader, err := uploadadapters.NewCloudinaryUploader(cfg.Cloudinary, httpclient.NewHTTPClient(cfg.API.Timeout()))
	if err != nil {
		l.Warn("Media host not configured, admin product form disabled", zap.Error(err))
	} else {
		productForm = adminservice.NewProductFormService(products, uploadservice.NewService(uploader))
	}

	checkout := checkoutservice.NewService(orders, cart, checkoutadapters.NewHTTPNotifier(client), cfg.Checkout)

	// Brands and categories back every product listing filter, so both warm
	// up together before the surface accepts traffic.
	warmupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := brands.FetchAll(warmupCtx); err != nil {
			l.Warn("Brand warmup failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := categories.FetchAll(warmupCtx); err != nil {
			l.Warn("Category warmup failed", zap.Error(err))
		}
	}()
	wg.Wait()

	productHdl := producthandler.NewProductHandler(products)
	cartHdl := carthandler.NewCartHandler(cart, cfg.Checkout)
	wishlistHdl := wishlisthandler.NewWishlistHandler(wishlist)
	addressHdl := addresshandler.NewAddressHandler(addresses)
	userHdl := userhandler.NewUserHandler(users)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkout, orders)
	adminHdl := adminhandler.NewAdminHandler(productForm, products, brands, categories, orders)

	srv := server.New(cfg)

	srv.App.Get("/healthz", func(c *fiber.Ctx) error {
		if err := client.Get(c.Context(), "/brands", nil, nil); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	srv.App.Get("/products", productHdl.ListProducts)
	srv.App.Get("/products/:id", productHdl.GetProduct)

	srv.App.Get("/cart/user/:id", cartHdl.GetCart)
	srv.App.Post("/cart", cartHdl.AddItem)
	srv.App.Patch("/cart/:id", cartHdl.UpdateQuantity)
	srv.App.Delete("/cart/:id", cartHdl.RemoveItem)

	srv.App.Get("/wishlist/user/:id", wishlistHdl.GetWishlist)
	srv.App.Post("/wishlist", wishlistHdl.AddItem)
	srv.App.Patch("/wishlist/:id", wishlistHdl.UpdateNote)
	srv.App.Delete("/wishlist/:id", wishlistHdl.RemoveItem)

	srv.App.Get("/address/user/:id", addressHdl.ListAddresses)
	srv.App.Post("/address", addressHdl.AddAddress)

	srv.App.Get("/users/:id", userHdl.GetProfile)
	srv.App.Patch("/users/:id", userHdl.UpdateProfile)

	srv.App.Post("/checkout", checkoutHdl.PlaceOrder)
	srv.App.Get("/orders/user/:userId", checkoutHdl.ListUserOrders)

	srv.App.Post("/admin/products", adminHdl.CreateProduct)
	srv.App.Patch("/admin/products/undelete/:id", adminHdl.UndeleteProduct)
	srv.App.Patch("/admin/products/:id", adminHdl.UpdateProduct)
	srv.App.Delete("/admin/products/:id", adminHdl.DeleteProduct)
	srv.App.Post("/admin/brands", adminHdl.CreateBrand)
	srv.App.Put("/admin/brands/:id", adminHdl.UpdateBrand)
	srv.App.Delete("/admin/brands/:id", adminHdl.DeleteBrand)
	srv.App.Post("/admin/categories", adminHdl.CreateCategory)
	srv.App.Put("/admin/categories/:id", adminHdl.UpdateCategory)
	srv.App.Delete("/admin/categories/:id", adminHdl.DeleteCategory)
	srv.App.Get("/admin/orders", adminHdl.ListOrders)
	srv.App.Patch("/admin/orders/:id", adminHdl.UpdateOrderStatus)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
