package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/models"
)

func TestNewDefaults(t *testing.T) {
	tb := New()

	india, ok := tb.CountryCode(IndiaCode)
	require.True(t, ok)
	assert.Equal(t, "India", india.Country)
	assert.Equal(t, "Asia/Kolkata", india.Timezone)
	assert.Equal(t, "South Asia", india.Region)

	_, ok = tb.CountryCode("+999")
	assert.False(t, ok)

	assert.Equal(t, []string{"Jio", "Airtel", "Vi (Vodafone Idea)", "BSNL"}, tb.Carriers(IndiaCode))
	assert.Empty(t, tb.Carriers("+880"))

	ka, ok := tb.SubRegion("80")
	require.True(t, ok)
	assert.Equal(t, "Karnataka", ka.Name)
	assert.InDelta(t, 12.9716, ka.Lat, 1e-9)

	assert.Len(t, tb.Platforms(), 8)
	assert.Equal(t, "Twitter/X", tb.Platforms()[0].Name)
	assert.Len(t, tb.SampleGeo(), 5)
	assert.Len(t, tb.DisposableDomains(), 13)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tb := New()

	c := tb.Carriers(IndiaCode)
	c[0] = "Mutated"
	assert.Equal(t, "Jio", tb.Carriers(IndiaCode)[0])

	g := tb.SampleGeo()
	g[0].Location.Lat = 0
	assert.InDelta(t, 40.7128, tb.SampleGeo()[0].Location.Lat, 1e-9)

	p := tb.Platforms()
	p[0].Name = "Mutated"
	assert.Equal(t, "Twitter/X", tb.Platforms()[0].Name)
}

func TestWithSubRegionsReplacesTable(t *testing.T) {
	tb := New(WithSubRegions([]models.SubRegionEntry{
		{Prefix: "70", Name: "Haryana", Lat: 29.0588, Lng: 76.0856},
	}))

	e, ok := tb.SubRegion("70")
	require.True(t, ok)
	assert.Equal(t, "Haryana", e.Name)

	_, ok = tb.SubRegion("80")
	assert.False(t, ok)
}

func TestPlatformURL(t *testing.T) {
	tb := New()
	urls := make([]string, 0, 8)
	for _, p := range tb.Platforms() {
		urls = append(urls, p.URL("octocat"))
	}

	assert.Equal(t, []string{
		"https://twitter.com/octocat",
		"https://instagram.com/octocat",
		"https://github.com/octocat",
		"https://reddit.com/user/octocat",
		"https://tiktok.com/@octocat",
		"https://linkedin.com/in/octocat",
		"https://youtube.com/@octocat",
		"https://twitch.tv/octocat",
	}, urls)
}

func TestCountryCodesSorted(t *testing.T) {
	codes := New().CountryCodes()
	require.Len(t, codes, 34)
	assert.Equal(t, "+1", codes[0].Code)
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1].Code, codes[i].Code)
	}
}
