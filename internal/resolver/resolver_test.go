package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/tables"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "+15551234567", Normalize("+1 (555) 123-4567"))
	assert.Equal(t, "+442079460958", Normalize("+44.20.7946.0958"))
}

func TestCountryCodeLongestPrefix(t *testing.T) {
	r := NewCountryCodeResolver(tables.New(), "+91")

	tests := []struct {
		input   string
		code    string
		country string
	}{
		{"+91 9876543210", "+91", "India"},
		{"+1 555 123 4567", "+1", "United States/Canada"},
		{"+880 1712345678", "+880", "Bangladesh"},
		{"+971 501234567", "+971", "UAE"},
		{"+7 9161234567", "+7", "Russia"},
		{"+(44) 20-7946-0958", "+44", "United Kingdom"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, ok := r.Resolve(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.country, e.Country)
		})
	}
}

func TestCountryCodeLongerKeyWinsOverShorter(t *testing.T) {
	tb := tables.New(tables.WithCountryCodes([]models.CountryCodeEntry{
		{Code: "+9", Country: "Short"},
		{Code: "+91", Country: "India"},
		{Code: "+912", Country: "Longest"},
	}))
	r := NewCountryCodeResolver(tb, "+91")

	e, ok := r.Resolve("+912345678901")
	require.True(t, ok)
	assert.Equal(t, "Longest", e.Country)

	e, ok = r.Resolve("+919876543210")
	require.True(t, ok)
	assert.Equal(t, "India", e.Country)
}

func TestCountryCodeNoMatch(t *testing.T) {
	r := NewCountryCodeResolver(tables.New(), "+91")

	_, ok := r.Resolve("+999 1234567")
	assert.False(t, ok)

	_, ok = r.Resolve("9876543210")
	assert.False(t, ok)

	_, ok = r.Resolve("+")
	assert.False(t, ok)
}

func TestApplyDefault(t *testing.T) {
	r := NewCountryCodeResolver(tables.New(), "+44")

	assert.Equal(t, "+447946095800", r.ApplyDefault(" 7946095800 "))
	assert.Equal(t, "+1 5551234567", r.ApplyDefault("+1 5551234567"))
	assert.Equal(t, "+44", r.DefaultCode())
}

func TestSubRegion(t *testing.T) {
	r := NewSubRegionResolver(tables.New())

	assert.True(t, r.Applies("+91"))
	assert.False(t, r.Applies("+1"))

	ka := r.Resolve("+91 8012345678")
	assert.True(t, ka.Known)
	assert.Equal(t, "Karnataka", ka.Name)
	assert.Equal(t, models.Coordinates{Lat: 12.9716, Lng: 77.5946}, ka.Location)

	// a national number starting with 91 keeps its own prefix
	uk := r.Resolve("9112345678")
	assert.Equal(t, "Uttarakhand", uk.Name)
}

func TestSubRegionFixtureTable(t *testing.T) {
	tb := tables.New(tables.WithSubRegions([]models.SubRegionEntry{
		{Prefix: "70", Name: "Haryana", Lat: 29.0588, Lng: 76.0856},
	}))
	r := NewSubRegionResolver(tb)

	assert.Equal(t, "Haryana", r.Resolve("+91 7012345678").Name)
}

func TestSubRegionFallsBackToCentroid(t *testing.T) {
	r := NewSubRegionResolver(tables.New())

	got := r.Resolve("+91 5012345678")
	assert.False(t, got.Known)
	assert.Equal(t, models.RegionUnknown, got.Name)
	assert.Equal(t, models.Coordinates{Lat: 20.5937, Lng: 78.9629}, got.Location)

}

func TestSubRegionShortNumberKeepsCountryDigits(t *testing.T) {
	r := NewSubRegionResolver(tables.New())

	got := r.Resolve("+91")
	assert.True(t, got.Known)
	assert.Equal(t, "Uttarakhand", got.Name)

	got = r.Resolve("+91 80123")
	assert.True(t, got.Known)
	assert.Equal(t, "Uttarakhand", got.Name)
}

func TestDisposableMatcher(t *testing.T) {
	m := NewDisposableMatcher(tables.New())

	assert.True(t, m.IsDisposable("tempmail.com"))
	assert.True(t, m.IsDisposable("TempMail.COM"))
	assert.True(t, m.IsDisposable("inbox.mailinator.com"))
	assert.False(t, m.IsDisposable("gmail.com"))
	assert.False(t, m.IsDisposable(""))
}
