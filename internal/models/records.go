package models

import "strings"

// Outcome tags how far a lookup pipeline got before it assembled its record
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeFormatInvalid  Outcome = "format_invalid"
	OutcomeCountryUnknown Outcome = "country_unknown"
)

// Placeholder values used for fields that could not be derived
const (
	Unknown        = "Unknown"
	Unavailable    = "Unavailable"
	RegionUnknown  = "Region Unknown"
	UnknownCarrier = "Unknown Carrier"
	InvalidDomain  = "Invalid Domain"
)

// Coordinates is a latitude/longitude pair. Records reference it through a
// pointer so both values are present together or not at all.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinates returns a pointer to a coordinate pair
func NewCoordinates(lat, lng float64) *Coordinates {
	return &Coordinates{Lat: lat, Lng: lng}
}

// PhoneRecord is the result of a phone number lookup
type PhoneRecord struct {
	Input       string       `json:"input"`
	Country     string       `json:"country"`
	CountryCode string       `json:"country_code,omitempty"`
	Region      string       `json:"region"`
	Carrier     string       `json:"carrier"`
	Timezone    string       `json:"timezone"`
	IsValid     bool         `json:"is_valid"`
	IsPossible  bool         `json:"is_possible"`
	Location    *Coordinates `json:"location,omitempty"`
	Formatted   string       `json:"formatted"`
	Outcome     Outcome      `json:"outcome"`
	Unavailable []string     `json:"unavailable,omitempty"`
}

// EmailRecord is the result of an email address lookup
type EmailRecord struct {
	Input        string   `json:"input"`
	IsValid      bool     `json:"is_valid"`
	Domain       string   `json:"domain"`
	LocalPart    string   `json:"local_part"`
	IsDisposable bool     `json:"is_disposable"`
	MailServer   string   `json:"mail_server"`
	Outcome      Outcome  `json:"outcome"`
	Unavailable  []string `json:"unavailable,omitempty"`
}

// GeoInfo is what a geolocation provider knows about an IP address
type GeoInfo struct {
	Country  string       `json:"country"`
	City     string       `json:"city"`
	ISP      string       `json:"isp"`
	Location *Coordinates `json:"location,omitempty"`
	Timezone string       `json:"timezone"`
}

// IPRecord is the result of an IPv4 address lookup
type IPRecord struct {
	Input       string       `json:"input"`
	IsValid     bool         `json:"is_valid"`
	Country     string       `json:"country"`
	City        string       `json:"city"`
	ISP         string       `json:"isp"`
	Location    *Coordinates `json:"location,omitempty"`
	Timezone    string       `json:"timezone"`
	Outcome     Outcome      `json:"outcome"`
	Unavailable []string     `json:"unavailable,omitempty"`
}

// ProbeStatus describes what a platform probe found out
type ProbeStatus string

const (
	ProbeAvailable ProbeStatus = "available"
	ProbeTaken     ProbeStatus = "taken"
	ProbeUnknown   ProbeStatus = "unknown"
)

// PlatformProbe is the availability of a username on one platform
type PlatformProbe struct {
	Platform  string      `json:"platform"`
	URL       string      `json:"url"`
	Available bool        `json:"available"`
	Status    ProbeStatus `json:"status"`
}

// UsernameRecord is the result of a username availability lookup
type UsernameRecord struct {
	Input     string          `json:"input"`
	IsValid   bool            `json:"is_valid"`
	Platforms []PlatformProbe `json:"platforms"`
	Outcome   Outcome         `json:"outcome"`

	// Platforms whose probe failed
	Unavailable []string `json:"unavailable,omitempty"`
}

// CountryCodeEntry describes a dialing code
type CountryCodeEntry struct {
	Code     string `json:"code"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
	Region   string `json:"region"`
}

// SubRegionEntry maps a two-digit national prefix to a state or telecom circle
type SubRegionEntry struct {
	Prefix string  `json:"prefix"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// Coordinates returns the entry's location as a coordinate pair
func (e SubRegionEntry) Coordinates() Coordinates {
	return Coordinates{Lat: e.Lat, Lng: e.Lng}
}

// Platform is a site probed for username availability
type Platform struct {
	Name        string `json:"name"`
	URLTemplate string `json:"url_template"`
}

// URL returns the profile URL for username on the platform
func (p Platform) URL(username string) string {
	return strings.ReplaceAll(p.URLTemplate, "{username}", username)
}
