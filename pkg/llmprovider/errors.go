package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusCoder is implemented by the client API errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// classifyError tags deadline and HTTP 429 failures with ErrProviderTimeout
// and ErrProviderRateLimited. The original error stays in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}

	var sc statusCoder
	if errors.As(err, &sc) && sc.HTTPStatus() == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}

	return err
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	return nil
}
