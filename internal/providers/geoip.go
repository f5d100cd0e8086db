package providers

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/allsafeASM/lookup/internal/models"
)

// GeoIP geolocates addresses with MaxMind GeoLite2/GeoIP2 databases
type GeoIP struct {
	*BaseProvider
	city *geoip2.Reader
	asn  *geoip2.Reader
}

// NewGeoIP opens the City database and, when asnPath is set, the ASN database
func NewGeoIP(cityPath, asnPath string) (*GeoIP, error) {
	city, err := geoip2.Open(cityPath)
	if err != nil {
		return nil, fmt.Errorf("open city database %s: %w", cityPath, err)
	}

	g := &GeoIP{
		BaseProvider: NewBaseProvider("geoip2"),
		city:         city,
	}

	if asnPath != "" {
		asn, err := geoip2.Open(asnPath)
		if err != nil {
			city.Close()
			return nil, fmt.Errorf("open ASN database %s: %w", asnPath, err)
		}
		g.asn = asn
	}

	return g, nil
}

// Geo looks up city, country, coordinates and ISP for ip
func (g *GeoIP) Geo(ctx context.Context, ip string) (models.GeoInfo, error) {
	if err := g.checkContext(ctx); err != nil {
		return models.GeoInfo{}, err
	}

	addr := net.ParseIP(ip)
	if addr == nil {
		return models.GeoInfo{}, NewProviderError(ErrorBadData, g.name, "unparseable address "+ip, nil)
	}

	record, err := g.city.City(addr)
	if err != nil {
		return models.GeoInfo{}, g.wrapError("city lookup failed", err)
	}

	info := models.GeoInfo{
		Country:  nameOrUnknown(record.Country.Names),
		City:     nameOrUnknown(record.City.Names),
		ISP:      models.Unknown,
		Timezone: record.Location.TimeZone,
	}
	if info.Timezone == "" {
		info.Timezone = models.Unknown
	}
	// MaxMind leaves both coordinates at zero for addresses it cannot place
	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		info.Location = models.NewCoordinates(record.Location.Latitude, record.Location.Longitude)
	}

	if g.asn != nil {
		asn, err := g.asn.ASN(addr)
		if err == nil && asn.AutonomousSystemOrganization != "" {
			info.ISP = asn.AutonomousSystemOrganization
		}
	}

	return info, nil
}

// Close releases both database readers
func (g *GeoIP) Close() error {
	if g.asn != nil {
		g.asn.Close()
	}
	return g.city.Close()
}

func nameOrUnknown(names map[string]string) string {
	if n := names["en"]; n != "" {
		return n
	}
	return models.Unknown
}
