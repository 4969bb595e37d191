package adapters

import (
	"context"

	"storefront-client/internal/core/httpclient"
	"storefront-client/internal/features/checkout/ports"
)

// HTTPNotifier implements ports.Notifier against the storefront REST API's
// mail relay.
type HTTPNotifier struct {
	client *httpclient.Client
}

// NewHTTPNotifier creates a new HTTPNotifier.
func NewHTTPNotifier(client *httpclient.Client) *HTTPNotifier {
	return &HTTPNotifier{client: client}
}

// Send relays one email.
func (n *HTTPNotifier) Send(ctx context.Context, email ports.Email) error {
	return n.client.Post(ctx, "/send-email", email, nil)
}
