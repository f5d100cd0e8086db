// Package providers supplies the enrichment data that cannot be derived
// from the reference tables: carriers, mail-server status, IP geolocation
// and platform availability.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/allsafeASM/lookup/internal/models"
)

// CarrierProvider names the carrier serving a phone number
type CarrierProvider interface {
	Carrier(ctx context.Context, countryCode, number string) (string, error)
}

// MailServerProvider describes the mail-server status of a domain
type MailServerProvider interface {
	MailServer(ctx context.Context, domain string) (string, error)
}

// GeoProvider geolocates an IPv4 address
type GeoProvider interface {
	Geo(ctx context.Context, ip string) (models.GeoInfo, error)
}

// PlatformProber reports whether a username is free on a platform
type PlatformProber interface {
	Available(ctx context.Context, username string, platform models.Platform) (bool, error)
}

// Set bundles one provider of each kind
type Set struct {
	Carrier    CarrierProvider
	MailServer MailServerProvider
	Geo        GeoProvider
	Prober     PlatformProber
}

// ErrorCategory is the normalized provider failure taxonomy
type ErrorCategory string

const (
	ErrorTimeout        ErrorCategory = "timeout"
	ErrorBadData        ErrorCategory = "bad_data"
	ErrorProviderOutage ErrorCategory = "provider_outage"
	ErrorNotFound       ErrorCategory = "not_found"
	ErrorRateLimited    ErrorCategory = "rate_limited"
	ErrorInternal       ErrorCategory = "internal"
)

// ProviderError wraps provider failures with a normalized category
type ProviderError struct {
	Category  ErrorCategory
	Provider  string
	Message   string
	Err       error
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.Provider, e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.Provider, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a categorized provider error
func NewProviderError(category ErrorCategory, provider, message string, err error) *ProviderError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &ProviderError{
		Category:  category,
		Provider:  provider,
		Message:   message,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable reports whether err is a provider error worth retrying
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the category from err, defaulting to internal
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}
