package httpclient

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation so callers can react without string
// matching.
type Kind string

const (
	// KindConfig means required credentials or settings were missing; no
	// network call was attempted.
	KindConfig Kind = "config"
	// KindTransport means the request could not complete (offline, timeout,
	// malformed response).
	KindTransport Kind = "transport"
	// KindApplication means the server reported a validation or business-rule
	// failure with a non-2xx status.
	KindApplication Kind = "application"
	// KindUnauthenticated means the server rejected the session credentials.
	KindUnauthenticated Kind = "unauthenticated"
)

// Error is the structured error surfaced by the transport client. Gateways
// propagate it unchanged so stores can record the server-provided message
// verbatim where available.
type Error struct {
	// Kind is the error classification.
	Kind Kind
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	// Op names the failed call, e.g. "GET /products".
	Op string
	// Message is the human-readable description, server-provided when possible.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError builds a config-kind error for failures detected before any
// network call.
func ConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// KindOf extracts the Kind from err, or empty when err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsUnauthenticated reports whether err represents a rejected session.
func IsUnauthenticated(err error) bool {
	return KindOf(err) == KindUnauthenticated
}

// apiMessage is the structured error body the storefront API returns.
type apiMessage struct {
	Message string `json:"message"`
}
