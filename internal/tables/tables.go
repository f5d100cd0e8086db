// Package tables holds the reference data the lookup pipelines resolve
// against. A Tables value is built once and never modified afterwards, so
// it is safe to share between goroutines without locking.
package tables

import (
	"maps"
	"slices"

	"github.com/allsafeASM/lookup/internal/models"
)

// IndiaCode is the dialing code that enables sub-region resolution
const IndiaCode = "+91"

// IndiaNationalLength is the number of digits in an Indian national number
const IndiaNationalLength = 10

// Tables is the immutable set of lookup tables
type Tables struct {
	countryCodes     map[string]models.CountryCodeEntry
	carriers         map[string][]string
	subRegions       map[string]models.SubRegionEntry
	centroids        map[string]models.Coordinates
	nationalCentroid models.Coordinates
	disposable       []string
	platforms        []models.Platform
	sampleGeo        []models.GeoInfo
}

// Option customizes a Tables value during construction
type Option func(*Tables)

// WithSubRegions replaces the India sub-region table
func WithSubRegions(entries []models.SubRegionEntry) Option {
	return func(t *Tables) {
		t.subRegions = make(map[string]models.SubRegionEntry, len(entries))
		for _, e := range entries {
			t.subRegions[e.Prefix] = e
		}
	}
}

// WithDisposableDomains replaces the disposable domain list
func WithDisposableDomains(domains []string) Option {
	return func(t *Tables) {
		t.disposable = slices.Clone(domains)
	}
}

// WithCountryCodes replaces the dialing code table
func WithCountryCodes(entries []models.CountryCodeEntry) Option {
	return func(t *Tables) {
		t.countryCodes = make(map[string]models.CountryCodeEntry, len(entries))
		for _, e := range entries {
			t.countryCodes[e.Code] = e
		}
	}
}

// New builds the tables from the built-in data, applying opts in order
func New(opts ...Option) *Tables {
	t := &Tables{
		countryCodes:     indexCountryCodes(countryCodes),
		carriers:         maps.Clone(carriers),
		subRegions:       indexSubRegions(indiaSubRegions),
		centroids:        maps.Clone(centroids),
		nationalCentroid: indiaCentroid,
		disposable:       slices.Clone(disposableDomains),
		platforms:        slices.Clone(platforms),
		sampleGeo:        slices.Clone(sampleGeo),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// CountryCode returns the entry registered for a dialing code
func (t *Tables) CountryCode(code string) (models.CountryCodeEntry, bool) {
	e, ok := t.countryCodes[code]
	return e, ok
}

// CountryCodes returns every dialing code entry ordered by code
func (t *Tables) CountryCodes() []models.CountryCodeEntry {
	out := make([]models.CountryCodeEntry, 0, len(t.countryCodes))
	for _, code := range slices.Sorted(maps.Keys(t.countryCodes)) {
		out = append(out, t.countryCodes[code])
	}
	return out
}

// Carriers returns the known carriers for a dialing code
func (t *Tables) Carriers(code string) []string {
	return slices.Clone(t.carriers[code])
}

// SubRegion returns the India circle for a two-digit prefix
func (t *Tables) SubRegion(prefix string) (models.SubRegionEntry, bool) {
	e, ok := t.subRegions[prefix]
	return e, ok
}

// NationalCentroid is the fallback location for unresolved Indian numbers
func (t *Tables) NationalCentroid() models.Coordinates {
	return t.nationalCentroid
}

// Centroid returns the representative location for a dialing code
func (t *Tables) Centroid(code string) (models.Coordinates, bool) {
	c, ok := t.centroids[code]
	return c, ok
}

// DisposableDomains returns the disposable domain list
func (t *Tables) DisposableDomains() []string {
	return slices.Clone(t.disposable)
}

// Platforms returns the probed platforms in display order
func (t *Tables) Platforms() []models.Platform {
	return slices.Clone(t.platforms)
}

// SampleGeo returns the fixed locations used by the static geo provider
func (t *Tables) SampleGeo() []models.GeoInfo {
	out := make([]models.GeoInfo, len(t.sampleGeo))
	for i, g := range t.sampleGeo {
		out[i] = g
		if g.Location != nil {
			out[i].Location = models.NewCoordinates(g.Location.Lat, g.Location.Lng)
		}
	}
	return out
}

func indexCountryCodes(entries []models.CountryCodeEntry) map[string]models.CountryCodeEntry {
	m := make(map[string]models.CountryCodeEntry, len(entries))
	for _, e := range entries {
		m[e.Code] = e
	}
	return m
}

func indexSubRegions(entries []models.SubRegionEntry) map[string]models.SubRegionEntry {
	m := make(map[string]models.SubRegionEntry, len(entries))
	for _, e := range entries {
		m[e.Prefix] = e
	}
	return m
}
