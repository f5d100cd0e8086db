package providers

import (
	"fmt"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/config"
	"github.com/allsafeASM/lookup/internal/tables"
)

// Factory builds and owns the provider set selected by configuration
type Factory struct {
	mode    string
	set     Set
	closers []func()
}

// NewFactory creates the providers for cfg. Live providers are cached in
// store when it is non-nil.
func NewFactory(cfg *config.Config, t *tables.Tables, store JSONStore) (*Factory, error) {
	static := NewStatic(t)

	switch cfg.Lookup.ProviderMode {
	case "", config.ProviderModeStatic:
		return &Factory{
			mode: config.ProviderModeStatic,
			set:  Set{Carrier: static, MailServer: static, Geo: static, Prober: static},
		}, nil
	case config.ProviderModeLive:
		return newLiveFactory(cfg, static, store)
	default:
		return nil, fmt.Errorf("unknown provider mode: %s", cfg.Lookup.ProviderMode)
	}
}

func newLiveFactory(cfg *config.Config, static *Static, store JSONStore) (*Factory, error) {
	pc := cfg.Providers

	geo, err := NewGeoIP(pc.GeoIPCityDB, pc.GeoIPASNDB)
	if err != nil {
		return nil, err
	}
	mx := NewDNSXMailServer(pc.DNSResolvers, pc.DNSRateLimit, pc.DNSMaxRetries)
	prober := NewHTTPXProber(pc.ProbeRateLimit, time.Duration(pc.ProbeTimeout)*time.Second)

	f := &Factory{
		mode: config.ProviderModeLive,
		set: Set{
			Carrier:    NewPhoneNumbersCarrier(static),
			MailServer: mx,
			Geo:        geo,
			Prober:     prober,
		},
		closers: []func(){
			func() { geo.Close() },
			mx.Close,
			prober.Close,
		},
	}

	if store != nil {
		f.set.Geo = NewCachedGeo(geo, store, cfg.Redis.CacheTTL)
		f.set.MailServer = NewCachedMailServer(mx, store, cfg.Redis.CacheTTL)
		gologger.Info().Msgf("Enrichment cache enabled (ttl %s)", cfg.Redis.CacheTTL)
	}

	return f, nil
}

// Mode returns the provider mode in use
func (f *Factory) Mode() string {
	return f.mode
}

// Providers returns the provider set
func (f *Factory) Providers() Set {
	return f.set
}

// Close releases database readers and rate limiters
func (f *Factory) Close() {
	for _, c := range f.closers {
		c()
	}
}
