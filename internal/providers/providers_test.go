package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/projectdiscovery/retryabledns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/config"
	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/tables"
)

func TestStaticIsDeterministic(t *testing.T) {
	ctx := context.Background()
	s := NewStatic(tables.New())

	carrier, err := s.Carrier(ctx, "+91", "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, "Jio", carrier)

	carrier, err = s.Carrier(ctx, "+880", "+8801712345678")
	require.NoError(t, err)
	assert.Equal(t, models.UnknownCarrier, carrier)

	mx, err := s.MailServer(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, StaticMailServerStatus, mx)

	first, err := s.Geo(ctx, "8.8.8.8")
	require.NoError(t, err)
	require.NotNil(t, first.Location)
	for i := 0; i < 5; i++ {
		again, err := s.Geo(ctx, "8.8.8.8")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	platform := tables.New().Platforms()[2]
	a1, err := s.Available(ctx, "octocat", platform)
	require.NoError(t, err)
	a2, err := s.Available(ctx, "octocat", platform)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, hashString("GitHub/octocat")%2 == 0, a1)
}

func TestStaticHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic(tables.New()).Geo(ctx, "8.8.8.8")
	require.Error(t, err)
	assert.Equal(t, ErrorTimeout, GetCategory(err))
	assert.True(t, IsRetryable(err))
}

func TestProviderErrorCategories(t *testing.T) {
	err := NewProviderError(ErrorBadData, "geoip2", "corrupt record", errors.New("eof"))
	assert.False(t, err.Retryable)
	assert.Equal(t, "provider geoip2 [bad_data]: corrupt record: eof", err.Error())

	wrapped := fmt.Errorf("enrich: %w", NewProviderError(ErrorRateLimited, "httpx", "slow down", nil))
	assert.True(t, IsRetryable(wrapped))
	assert.Equal(t, ErrorRateLimited, GetCategory(wrapped))
	assert.Equal(t, ErrorInternal, GetCategory(errors.New("plain")))
}

func TestBaseProviderWrapError(t *testing.T) {
	b := NewBaseProvider("dnsx")

	assert.Equal(t, ErrorProviderOutage, b.wrapError("q", errors.New("connection refused")).Category)
	assert.Equal(t, ErrorTimeout, b.wrapError("q", context.DeadlineExceeded).Category)
	assert.Equal(t, ErrorInternal, b.wrapError("q", errors.New("boom")).Category)
	assert.Nil(t, b.wrapError("q", nil))

	pe := NewProviderError(ErrorNotFound, "geoip2", "missing", nil)
	assert.Same(t, pe, b.wrapError("q", pe))
}

func TestMailServerStatus(t *testing.T) {
	tests := []struct {
		name string
		data *retryabledns.DNSData
		want string
	}{
		{"mx", &retryabledns.DNSData{MX: []string{"aspmx.l.google.com"}}, MailServerMXFound},
		{"parked", &retryabledns.DNSData{MX: []string{"mailstore1.secureserver.net"}}, MailServerParked},
		{"a only", &retryabledns.DNSData{A: []string{"93.184.216.34"}}, MailServerAFallback},
		{"nothing", &retryabledns.DNSData{}, MailServerNone},
		{"nxdomain", &retryabledns.DNSData{StatusCode: "NXDOMAIN"}, models.InvalidDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mailServerStatus(tt.data))
		})
	}
}

func TestDNSXRejectsMalformedDomain(t *testing.T) {
	p := NewDNSXMailServer(nil, 10, 1)
	defer p.Close()

	status, err := p.MailServer(context.Background(), "-bad..domain")
	require.NoError(t, err)
	assert.Equal(t, models.InvalidDomain, status)
}

func TestAvailabilityFromStatus(t *testing.T) {
	free, err := availabilityFromStatus("httpx", "GitHub", http.StatusNotFound)
	require.NoError(t, err)
	assert.True(t, free)

	free, err = availabilityFromStatus("httpx", "GitHub", http.StatusOK)
	require.NoError(t, err)
	assert.False(t, free)

	_, err = availabilityFromStatus("httpx", "GitHub", http.StatusTooManyRequests)
	assert.Equal(t, ErrorRateLimited, GetCategory(err))

	_, err = availabilityFromStatus("httpx", "GitHub", http.StatusInternalServerError)
	assert.Equal(t, ErrorBadData, GetCategory(err))
}

func TestPhoneNumbersCarrierFallsBack(t *testing.T) {
	p := NewPhoneNumbersCarrier(NewStatic(tables.New()))

	carrier, err := p.Carrier(context.Background(), "+91", "not a number")
	require.NoError(t, err)
	assert.Equal(t, "Jio", carrier)

	bare := NewPhoneNumbersCarrier(nil)
	_, err = bare.Carrier(context.Background(), "+91", "not a number")
	assert.Equal(t, ErrorNotFound, GetCategory(err))
}

func TestNewGeoIPMissingDatabase(t *testing.T) {
	_, err := NewGeoIP("/nonexistent/GeoLite2-City.mmdb", "")
	assert.Error(t, err)
}

type memoryStore struct {
	data   map[string][]byte
	gets   int
	failOn bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (m *memoryStore) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	m.gets++
	if m.failOn {
		return false, errors.New("connection refused")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memoryStore) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	if m.failOn {
		return errors.New("connection refused")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

type countingGeo struct {
	calls int
	info  models.GeoInfo
	err   error
}

func (c *countingGeo) Geo(context.Context, string) (models.GeoInfo, error) {
	c.calls++
	return c.info, c.err
}

func TestCachedGeo(t *testing.T) {
	inner := &countingGeo{info: models.GeoInfo{Country: "Japan", City: "Tokyo", Location: models.NewCoordinates(35.6762, 139.6503)}}
	store := newMemoryStore()
	cached := NewCachedGeo(inner, store, time.Minute)

	for i := 0; i < 3; i++ {
		info, err := cached.Geo(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, "Tokyo", info.City)
		assert.Equal(t, 35.6762, info.Location.Lat)
	}
	assert.Equal(t, 1, inner.calls)
}

func TestCachedGeoBypassesBrokenStore(t *testing.T) {
	inner := &countingGeo{info: models.GeoInfo{Country: "Germany"}}
	store := newMemoryStore()
	store.failOn = true
	cached := NewCachedGeo(inner, store, time.Minute)

	info, err := cached.Geo(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "Germany", info.Country)

	inner.err = NewProviderError(ErrorProviderOutage, "geoip2", "down", nil)
	_, err = cached.Geo(context.Background(), "5.6.7.8")
	assert.Error(t, err)
}

func TestCachedMailServer(t *testing.T) {
	store := newMemoryStore()
	static := NewStatic(tables.New())
	cached := NewCachedMailServer(static, store, time.Minute)

	status, err := cached.MailServer(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, StaticMailServerStatus, status)
	assert.Contains(t, store.data, "lookup:mx:example.com")
}

func TestFactoryModes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Lookup.ProviderMode = config.ProviderModeStatic

	f, err := NewFactory(cfg, tables.New(), nil)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, config.ProviderModeStatic, f.Mode())
	assert.IsType(t, &Static{}, f.Providers().Geo)

	cfg.Lookup.ProviderMode = config.ProviderModeLive
	cfg.Providers.GeoIPCityDB = "/nonexistent/GeoLite2-City.mmdb"
	_, err = NewFactory(cfg, tables.New(), nil)
	assert.Error(t, err)

	cfg.Lookup.ProviderMode = "random"
	_, err = NewFactory(cfg, tables.New(), nil)
	assert.Error(t, err)
}
