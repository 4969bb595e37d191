// Package service orchestrates checkout: price the cart, place the order,
// clear the cart and send the confirmation mail. The order placement is the
// only step that may fail the flow; everything after a placed order is
// best-effort.
package service

import (
	"context"
	"fmt"

	"storefront-client/internal/core/config"
	"storefront-client/internal/core/logger"
	addressdomain "storefront-client/internal/features/addresses/domain"
	cartdomain "storefront-client/internal/features/cart/domain"
	"storefront-client/internal/features/checkout/ports"
	orderdomain "storefront-client/internal/features/orders/domain"

	"go.uber.org/zap"
)

// OrderPlacer is the slice of the order store checkout needs.
type OrderPlacer interface {
	Create(ctx context.Context, input orderdomain.OrderInput) (*orderdomain.Order, error)
}

// CartAccess is the slice of the cart store checkout needs.
type CartAccess interface {
	Items() []cartdomain.CartItem
	Clear(ctx context.Context, userID string) error
}

// ErrEmptyCart rejects a checkout with nothing priceable in the cart.
var ErrEmptyCart = fmt.Errorf("checkout: cart has no purchasable items")

// CheckoutRequest carries everything the flow needs beyond cart contents.
type CheckoutRequest struct {
	UserID      string
	UserEmail   string
	Address     addressdomain.Address
	PaymentMode string
}

// Service runs the checkout flow.
type Service struct {
	orders   OrderPlacer
	cart     CartAccess
	notifier ports.Notifier
	cfg      config.CheckoutConfig
	logger   *zap.Logger
}

// NewService creates a checkout Service.
func NewService(orders OrderPlacer, cart CartAccess, notifier ports.Notifier, cfg config.CheckoutConfig) *Service {
	return &Service{
		orders:   orders,
		cart:     cart,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger.Get(),
	}
}

// PlaceOrder prices the current cart, places the order, clears the cart and
// sends the notification emails. A failed cart clear or email is logged and
// never unwinds a placed order: the purchase already happened.
func (s *Service) PlaceOrder(ctx context.Context, req CheckoutRequest) (*orderdomain.Order, error) {
	items := s.cart.Items()

	lines := make([]orderdomain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lines = append(lines, orderdomain.OrderItem{Product: *item.Product, Quantity: item.Quantity})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := cartdomain.ComputeTotals(items, s.cfg.FreeDeliveryThreshold, s.cfg.DeliveryFee)

	order, err := s.orders.Create(ctx, orderdomain.OrderInput{
		UserID:      req.UserID,
		Items:       lines,
		Address:     req.Address,
		PaymentMode: req.PaymentMode,
		Total:       totals.Total,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, req.UserID); err != nil {
		s.logger.Warn("Cart clear failed after order placement",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	s.sendNotifications(ctx, order, req.UserEmail)

	return order, nil
}

// sendNotifications mails the admin then the customer. The first failure
// aborts the remaining sends; neither failure surfaces to the caller.
func (s *Service) sendNotifications(ctx context.Context, order *orderdomain.Order, userEmail string) {
	emails := []ports.Email{
		{
			To:      s.cfg.AdminEmail,
			Subject: fmt.Sprintf("New order received: %s", order.ID),
			HTML:    adminOrderBody(order),
		},
		{
			To:      userEmail,
			Subject: fmt.Sprintf("Your order %s is confirmed", order.ID),
			HTML:    customerOrderBody(order),
		},
	}

	for _, email := range emails {
		if email.To == "" {
			continue
		}
		if err := s.notifier.Send(ctx, email); err != nil {
			s.logger.Warn("Order notification failed, skipping remaining emails",
				zap.String("order_id", order.ID),
				zap.String("recipient", email.To),
				zap.Error(err),
			)
			return
		}
	}
}

func adminOrderBody(order *orderdomain.Order) string {
	return fmt.Sprintf(
		"<p>Order <strong>%s</strong> placed by user %s.</p><p>Total: %.2f, payment: %s, %d line(s).</p>",
		order.ID, order.UserID, order.Total, order.PaymentMode, len(order.Items),
	)
}

func customerOrderBody(order *orderdomain.Order) string {
	return fmt.Sprintf(
		"<p>Thanks for your purchase!</p><p>Order <strong>%s</strong> for %.2f is confirmed and currently <em>%s</em>.</p>",
		order.ID, order.Total, order.Status,
	)
}
