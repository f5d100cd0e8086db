package providers

import (
	"context"

	"github.com/nyaruka/phonenumbers"
	"github.com/projectdiscovery/gologger"
)

// PhoneNumbersCarrier resolves carriers from libphonenumber prefix data
type PhoneNumbersCarrier struct {
	*BaseProvider
	fallback CarrierProvider
	language string
}

// NewPhoneNumbersCarrier creates a carrier provider that consults fallback
// when libphonenumber has no carrier for a number
func NewPhoneNumbersCarrier(fallback CarrierProvider) *PhoneNumbersCarrier {
	return &PhoneNumbersCarrier{
		BaseProvider: NewBaseProvider("phonenumbers"),
		fallback:     fallback,
		language:     "en",
	}
}

// Carrier parses number in international form and looks up its carrier
func (p *PhoneNumbersCarrier) Carrier(ctx context.Context, countryCode, number string) (string, error) {
	if err := p.checkContext(ctx); err != nil {
		return "", err
	}

	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		gologger.Debug().Msgf("phonenumbers could not parse %s: %v", number, err)
		return p.fallbackCarrier(ctx, countryCode, number)
	}

	carrier, prefix, err := phonenumbers.GetCarrierWithPrefixForNumber(parsed, p.language)
	if err != nil {
		return "", p.wrapError("carrier lookup failed", err)
	}
	if carrier == "" {
		return p.fallbackCarrier(ctx, countryCode, number)
	}

	gologger.Debug().Msgf("Carrier for %s: %s (prefix %d, region %s)",
		number, carrier, prefix, phonenumbers.GetRegionCodeForNumber(parsed))
	return carrier, nil
}

func (p *PhoneNumbersCarrier) fallbackCarrier(ctx context.Context, countryCode, number string) (string, error) {
	if p.fallback == nil {
		return "", NewProviderError(ErrorNotFound, p.name, "no carrier data for number", nil)
	}
	return p.fallback.Carrier(ctx, countryCode, number)
}
