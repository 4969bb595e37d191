package domain

// BrandSummary is the embedded brand reference carried on a product record.
type BrandSummary struct {
	// ID is the brand identifier.
	ID string `json:"_id"`
	// Name is the brand display name.
	Name string `json:"name"`
}

// CategorySummary is the embedded category reference carried on a product record.
type CategorySummary struct {
	// ID is the category identifier.
	ID string `json:"_id"`
	// Name is the category display name.
	Name string `json:"name"`
}

// Product is the denormalized client-side mirror of a server product record.
type Product struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// Title is the product display name.
	Title string `json:"title"`
	// Description is the long-form product description.
	Description string `json:"description"`
	// Price is the gross unit price, currency-agnostic.
	Price float64 `json:"price"`
	// DiscountPercentage ranges over 0-100.
	DiscountPercentage float64 `json:"discountPercentage"`
	// StockQuantity is the non-negative units in stock.
	StockQuantity int `json:"stockQuantity"`
	// Thumbnail is the primary image URL.
	Thumbnail string `json:"thumbnail"`
	// Images is the ordered gallery of image URLs.
	Images []string `json:"images"`
	// Brand is the embedded brand summary.
	Brand BrandSummary `json:"brand"`
	// Category is the embedded category summary.
	Category CategorySummary `json:"category"`
	// IsDeleted marks a soft-deleted record, reversible via undelete.
	IsDeleted bool `json:"isDeleted"`
}

// DiscountedPrice returns the unit price after the discount is applied.
func (p Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

// ProductInput carries the fields of a new product submission. The thumbnail
// and image URLs must already be hosted; uploads happen before this payload
// is built.
type ProductInput struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Price              float64  `json:"price" validate:"gt=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	StockQuantity      int      `json:"stockQuantity" validate:"gte=0"`
	Thumbnail          string   `json:"thumbnail" validate:"required,url"`
	Images             []string `json:"images" validate:"min=1,dive,url"`
	BrandID            string   `json:"brand" validate:"required"`
	CategoryID         string   `json:"category" validate:"required"`
}

// ProductUpdate carries a full-record admin update for an existing product.
type ProductUpdate struct {
	ID string `json:"_id" validate:"required"`
	ProductInput
}

// SortSpec orders a product listing by one field.
type SortSpec struct {
	// Field is the server-side sort key, e.g. "price".
	Field string
	// Order is "asc" or "desc".
	Order string
}

// Pagination selects one page of a listing.
type Pagination struct {
	Page  int
	Limit int
}

// Filters is the explicit filter specification for a product listing. The
// full set is re-sent on every fetch; there are no delta updates.
type Filters struct {
	// Brands restricts to any of the given brand ids.
	Brands []string
	// Categories restricts to any of the given category ids.
	Categories []string
	// User restricts to products owned by a user, when the API supports it.
	User string
	// Pagination selects the page; zero value means server defaults.
	Pagination Pagination
	// Sort orders the listing; zero value means server default order.
	Sort SortSpec
	// IncludeDeleted includes soft-deleted records. Non-admin listings leave
	// this false, which sends an explicit isDeleted=false constraint.
	IncludeDeleted bool
}

// Page is one fetched page of products together with the total match count.
// Both values always come from the same response.
type Page struct {
	Items []Product
	Total int
}
