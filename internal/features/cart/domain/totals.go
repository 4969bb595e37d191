package domain

// Totals is the derived pricing snapshot of a cart. It is a pure function of
// the item collection and the delivery rules, recomputed on every call and
// never stored: cart contents mutate frequently and a cached total would
// misquote the user.
type Totals struct {
	// Subtotal is the discounted value of all resolvable items.
	Subtotal float64
	// Savings is the discount value accumulated across discounted items.
	Savings float64
	// ItemCount is the total unit count across resolvable items.
	ItemCount int
	// DeliveryFee is zero at or above the free-delivery threshold.
	DeliveryFee float64
	// Total is Subtotal plus DeliveryFee.
	Total float64
}

// Subtotal sums the discounted line values of items whose product resolves.
func Subtotal(items []CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal += item.Product.DiscountedPrice() * float64(item.Quantity)
	}
	return subtotal
}

// TotalSavings sums the discount value of discounted, resolvable items.
func TotalSavings(items []CartItem) float64 {
	var savings float64
	for _, item := range items {
		if item.Product == nil || item.Product.DiscountPercentage <= 0 {
			continue
		}
		savings += item.Product.Price * item.Product.DiscountPercentage / 100 * float64(item.Quantity)
	}
	return savings
}

// TotalItemCount counts units across resolvable items.
func TotalItemCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		count += item.Quantity
	}
	return count
}

// ComputeTotals derives the full pricing snapshot. Delivery is free once the
// subtotal reaches freeThreshold; below it the flat fee applies.
func ComputeTotals(items []CartItem, freeThreshold, flatFee float64) Totals {
	subtotal := Subtotal(items)

	deliveryFee := flatFee
	if subtotal >= freeThreshold {
		deliveryFee = 0
	}

	return Totals{
		Subtotal:    subtotal,
		Savings:     TotalSavings(items),
		ItemCount:   TotalItemCount(items),
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}
