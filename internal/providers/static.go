package providers

import (
	"context"
	"hash/fnv"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/tables"
)

// StaticMailServerStatus is what the static provider reports for every domain
const StaticMailServerStatus = "Valid MX Records Found"

// Static answers every enrichment question from the reference tables. The
// output depends only on its inputs, so repeated calls agree.
type Static struct {
	*BaseProvider
	tables *tables.Tables
}

// NewStatic creates a static provider over t
func NewStatic(t *tables.Tables) *Static {
	return &Static{
		BaseProvider: NewBaseProvider("static"),
		tables:       t,
	}
}

// Carrier returns the first carrier listed for the country code
func (s *Static) Carrier(ctx context.Context, countryCode, number string) (string, error) {
	if err := s.checkContext(ctx); err != nil {
		return "", err
	}

	carriers := s.tables.Carriers(countryCode)
	if len(carriers) == 0 {
		return models.UnknownCarrier, nil
	}
	return carriers[0], nil
}

// MailServer reports every domain as having MX records
func (s *Static) MailServer(ctx context.Context, domain string) (string, error) {
	if err := s.checkContext(ctx); err != nil {
		return "", err
	}
	return StaticMailServerStatus, nil
}

// Geo picks one of the sample locations by hashing the address
func (s *Static) Geo(ctx context.Context, ip string) (models.GeoInfo, error) {
	if err := s.checkContext(ctx); err != nil {
		return models.GeoInfo{}, err
	}

	samples := s.tables.SampleGeo()
	if len(samples) == 0 {
		return models.GeoInfo{}, NewProviderError(ErrorNotFound, s.name, "no sample locations configured", nil)
	}
	return samples[hashString(ip)%uint32(len(samples))], nil
}

// Available derives availability from the parity of a hash of the pair
func (s *Static) Available(ctx context.Context, username string, platform models.Platform) (bool, error) {
	if err := s.checkContext(ctx); err != nil {
		return false, err
	}
	return hashString(platform.Name+"/"+username)%2 == 0, nil
}

// hashString returns the FNV-32a hash of s
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
