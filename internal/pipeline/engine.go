// Package pipeline composes validation, table resolution and enrichment
// into one record per identifier. Pipelines never return errors: every
// failure is reported inside the record.
package pipeline

import (
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/metrics"
	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/providers"
	"github.com/allsafeASM/lookup/internal/resolver"
	"github.com/allsafeASM/lookup/internal/tables"
)

// MaxBatchSize is the number of phone numbers processed from one batch
const MaxBatchSize = 10

// Enrichment fields named in a record's Unavailable list
const (
	FieldCarrier    = "carrier"
	FieldMailServer = "mail_server"
	FieldGeo        = "geo"

	// FieldAvailability labels failed username probes in metrics. The
	// record lists the failed platforms by name instead.
	FieldAvailability = "availability"
)

// Lookup kinds used as metric labels
const (
	kindPhone    = "phone"
	kindEmail    = "email"
	kindIP       = "ip"
	kindUsername = "username"
)

// Engine runs the lookup pipelines over shared read-only tables
type Engine struct {
	tables       *tables.Tables
	providers    providers.Set
	countryCodes *resolver.CountryCodeResolver
	subRegions   *resolver.SubRegionResolver
	disposable   *resolver.DisposableMatcher
	metrics      *metrics.Metrics
}

// Option customizes an Engine
type Option func(*Engine)

// WithMetrics records pipeline metrics in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an engine. Phone numbers without a leading + are treated as
// domestic to defaultCode.
func New(t *tables.Tables, set providers.Set, defaultCode string, opts ...Option) *Engine {
	e := &Engine{
		tables:       t,
		providers:    set,
		countryCodes: resolver.NewCountryCodeResolver(t, defaultCode),
		subRegions:   resolver.NewSubRegionResolver(t),
		disposable:   resolver.NewDisposableMatcher(t),
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.NewNoop()
	}

	return e
}

// finish records metrics for a completed pipeline
func (e *Engine) finish(kind string, outcome models.Outcome, start time.Time) {
	e.metrics.IncrementLookup(kind, string(outcome))
	e.metrics.ObserveLookup(kind, start)
}

// providerFailed logs and counts an enrichment failure
func (e *Engine) providerFailed(field, input string, err error) {
	category := providers.GetCategory(err)
	gologger.Warning().Msgf("Enrichment of %s for %s failed [%s, retryable=%t]: %v", field, input, category, providers.IsRetryable(err), err)
	e.metrics.IncrementProviderFailure(field, string(category))
}
