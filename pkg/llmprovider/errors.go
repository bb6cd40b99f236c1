package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed means the guest gets the canned reply instead.
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	// ErrProviderTimeout reports that the responder budget ran out before a provider answered.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError is the last error of one provider after its retries.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
