package providers

import (
	"context"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/models"
)

// JSONStore is the subset of the cache client the caching decorators use
type JSONStore interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

const cacheKeyPrefix = "lookup:"

// CachedGeo is a read-through cache in front of a GeoProvider
type CachedGeo struct {
	next  GeoProvider
	store JSONStore
	ttl   time.Duration
}

// NewCachedGeo wraps next with a cache
func NewCachedGeo(next GeoProvider, store JSONStore, ttl time.Duration) *CachedGeo {
	return &CachedGeo{next: next, store: store, ttl: ttl}
}

// Geo returns the cached answer for ip or asks the wrapped provider.
// Cache failures are logged and never fail the lookup.
func (c *CachedGeo) Geo(ctx context.Context, ip string) (models.GeoInfo, error) {
	key := cacheKeyPrefix + "geo:" + ip

	var info models.GeoInfo
	hit, err := c.store.GetJSON(ctx, key, &info)
	if err != nil {
		gologger.Warning().Msgf("Geo cache read failed for %s: %v", ip, err)
	}
	if hit {
		return info, nil
	}

	info, err = c.next.Geo(ctx, ip)
	if err != nil {
		return models.GeoInfo{}, err
	}

	if err := c.store.SetJSON(ctx, key, info, c.ttl); err != nil {
		gologger.Warning().Msgf("Geo cache write failed for %s: %v", ip, err)
	}
	return info, nil
}

// CachedMailServer is a read-through cache in front of a MailServerProvider
type CachedMailServer struct {
	next  MailServerProvider
	store JSONStore
	ttl   time.Duration
}

// NewCachedMailServer wraps next with a cache
func NewCachedMailServer(next MailServerProvider, store JSONStore, ttl time.Duration) *CachedMailServer {
	return &CachedMailServer{next: next, store: store, ttl: ttl}
}

// MailServer returns the cached status for domain or asks the wrapped provider
func (c *CachedMailServer) MailServer(ctx context.Context, domain string) (string, error) {
	key := cacheKeyPrefix + "mx:" + domain

	var status string
	hit, err := c.store.GetJSON(ctx, key, &status)
	if err != nil {
		gologger.Warning().Msgf("MX cache read failed for %s: %v", domain, err)
	}
	if hit {
		return status, nil
	}

	status, err = c.next.MailServer(ctx, domain)
	if err != nil {
		return "", err
	}

	if err := c.store.SetJSON(ctx, key, status, c.ttl); err != nil {
		gologger.Warning().Msgf("MX cache write failed for %s: %v", domain, err)
	}
	return status, nil
}
