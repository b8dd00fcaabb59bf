package types

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common failure modes.
var (
	ErrSourceUnavailable   = errors.New("content source unavailable")
	ErrExtractionExhausted = errors.New("all extraction strategies returned zero candidates")
	ErrValidationRejected  = errors.New("no candidates passed validation")
	ErrRegionTimeout       = errors.New("region extraction timed out")
	ErrUnknownRegion       = errors.New("unknown region")
	ErrStoreCorrupt        = errors.New("persisted aggregate store is unreadable")
)

// FetchError wraps errors from the content source.
type FetchError struct {
	Region     string
	URL        string
	Err        error
	Retryable  bool
	RetryAfter time.Duration // populated from Retry-After on HTTP 429
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error for %s (%s): %v", e.Region, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) IsRetryable() bool { return e.Retryable }

// ExtractError wraps errors from a single extraction strategy. A strategy
// error is advisory; the cascade continues with the next strategy.
type ExtractError struct {
	Strategy string
	Region   string
	Err      error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract error in %q for %s: %v", e.Strategy, e.Region, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// StoreError wraps errors from an aggregate store backend.
type StoreError struct {
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
