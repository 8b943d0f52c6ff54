package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamFailed is matched by every [*UpstreamError].
	ErrUpstreamFailed = errors.New("upstream provider request failed")

	// ErrProviderNotConfigured is returned when no provider access key is set.
	ErrProviderNotConfigured = errors.New("upstream provider access key is not configured")
)

// UpstreamError describes a failed exchange with the upstream provider.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the provider, or 0 when the
	// request failed before a response was received.
	StatusCode int

	// Message is the provider's error description, if any. It is meant for
	// server-side logs only.
	Message string

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream provider failed with status %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is [ErrUpstreamFailed].
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailed
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
