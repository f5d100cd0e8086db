package providers

import (
	"context"
	"errors"

	"github.com/allsafeASM/lookup/internal/common"
	"github.com/allsafeASM/lookup/internal/validation"
)

// BaseProvider provides common functionality for all production providers
type BaseProvider struct {
	name            string
	domainValidator *validation.DomainValidator
	errorClassifier *common.ErrorClassifier
}

// NewBaseProvider creates a new base provider
func NewBaseProvider(name string) *BaseProvider {
	return &BaseProvider{
		name:            name,
		domainValidator: validation.NewDomainValidator(),
		errorClassifier: common.NewErrorClassifier(),
	}
}

// GetName returns the provider name
func (b *BaseProvider) GetName() string {
	return b.name
}

// checkContext returns a timeout error if ctx is already done
func (b *BaseProvider) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return NewProviderError(ErrorTimeout, b.name, "lookup cancelled", ctx.Err())
	default:
		return nil
	}
}

// wrapError converts an arbitrary failure into a ProviderError
func (b *BaseProvider) wrapError(message string, err error) *ProviderError {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	appErr := b.errorClassifier.ClassifyError(err)
	switch appErr.Type {
	case common.ErrorTypeTimeout:
		return NewProviderError(ErrorTimeout, b.name, message, err)
	case common.ErrorTypeNetwork:
		return NewProviderError(ErrorProviderOutage, b.name, message, err)
	case common.ErrorTypeNotFound:
		return NewProviderError(ErrorNotFound, b.name, message, err)
	case common.ErrorTypeValidation:
		return NewProviderError(ErrorBadData, b.name, message, err)
	default:
		return NewProviderError(ErrorInternal, b.name, message, err)
	}
}
