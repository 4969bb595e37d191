// Package ports defines the boundary of the checkout feature.
package ports

import "context"

// Email is one outbound message.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Notifier sends transactional email through the storefront API.
type Notifier interface {
	Send(ctx context.Context, email Email) error
}
