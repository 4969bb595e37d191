// Package service orchestrates the admin product form: validate the
// submission, push its media through the upload pipeline, then hand the
// finished payload to the product store.
package service

import (
	"context"

	"storefront-client/internal/core/logger"
	productdomain "storefront-client/internal/features/products/domain"
	uploadports "storefront-client/internal/features/uploads/ports"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ProductForm is the raw admin submission: catalog fields plus the media
// files still on the admin's machine.
type ProductForm struct {
	Title              string  `validate:"required"`
	Description        string  `validate:"required"`
	Price              float64 `validate:"gt=0"`
	DiscountPercentage float64 `validate:"gte=0,lte=100"`
	StockQuantity      int     `validate:"gte=0"`
	BrandID            string  `validate:"required"`
	CategoryID         string  `validate:"required"`
	// Thumbnail is the primary image file.
	Thumbnail uploadports.Asset `validate:"required"`
	// Gallery holds the remaining image files, at least one.
	Gallery []uploadports.Asset `validate:"min=1"`
}

// ProductWriter is the slice of the product store the form pipeline needs.
type ProductWriter interface {
	Add(ctx context.Context, input productdomain.ProductInput) error
	Update(ctx context.Context, update productdomain.ProductUpdate) error
}

// AssetUploader is the slice of the upload service the form pipeline needs.
type AssetUploader interface {
	UploadAll(ctx context.Context, assets []uploadports.Asset) ([]string, error)
}

// ProductFormService runs the create/update product pipeline.
type ProductFormService struct {
	products ProductWriter
	uploads  AssetUploader
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductFormService creates a ProductFormService.
func NewProductFormService(products ProductWriter, uploads AssetUploader) *ProductFormService {
	return &ProductFormService{
		products: products,
		uploads:  uploads,
		validate: validator.New(),
		logger:   logger.Get(),
	}
}

// Create validates the form, uploads its media and adds the product. Any
// upload failure aborts before the catalog is touched.
func (s *ProductFormService) Create(ctx context.Context, form ProductForm) error {
	input, err := s.prepare(ctx, form)
	if err != nil {
		return err
	}
	return s.products.Add(ctx, *input)
}

// Update runs the same pipeline against an existing product.
func (s *ProductFormService) Update(ctx context.Context, id string, form ProductForm) error {
	input, err := s.prepare(ctx, form)
	if err != nil {
		return err
	}
	return s.products.Update(ctx, productdomain.ProductUpdate{ID: id, ProductInput: *input})
}

// prepare validates the form and uploads the thumbnail followed by the
// gallery, returning the finished catalog payload.
func (s *ProductFormService) prepare(ctx context.Context, form ProductForm) (*productdomain.ProductInput, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	thumbnailURLs, err := s.uploads.UploadAll(ctx, []uploadports.Asset{form.Thumbnail})
	if err != nil {
		s.logger.Warn("Thumbnail upload failed, product form aborted", zap.Error(err))
		return nil, err
	}

	galleryURLs, err := s.uploads.UploadAll(ctx, form.Gallery)
	if err != nil {
		s.logger.Warn("Gallery upload failed, product form aborted", zap.Error(err))
		return nil, err
	}

	return &productdomain.ProductInput{
		Title:              form.Title,
		Description:        form.Description,
		Price:              form.Price,
		DiscountPercentage: form.DiscountPercentage,
		StockQuantity:      form.StockQuantity,
		Thumbnail:          thumbnailURLs[0],
		Images:             galleryURLs,
		BrandID:            form.BrandID,
		CategoryID:         form.CategoryID,
	}, nil
}
