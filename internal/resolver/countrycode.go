// Package resolver maps normalized identifiers onto the reference tables.
package resolver

import (
	"strings"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/tables"
)

// maxCodeLength is the longest dialing code tried, including the leading +
const maxCodeLength = 4

var separatorReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// Normalize removes spaces, hyphens, parentheses and dots from a phone number
func Normalize(number string) string {
	return separatorReplacer.Replace(number)
}

// CountryCodeResolver resolves dialing codes by longest prefix
type CountryCodeResolver struct {
	tables      *tables.Tables
	defaultCode string
}

// NewCountryCodeResolver creates a resolver that treats numbers without a
// leading + as domestic to defaultCode
func NewCountryCodeResolver(t *tables.Tables, defaultCode string) *CountryCodeResolver {
	return &CountryCodeResolver{tables: t, defaultCode: defaultCode}
}

// DefaultCode returns the code assumed for numbers without a leading +
func (r *CountryCodeResolver) DefaultCode() string {
	return r.defaultCode
}

// ApplyDefault trims number and prefixes the default code when it has no
// leading +
func (r *CountryCodeResolver) ApplyDefault(number string) string {
	number = strings.TrimSpace(number)
	if !strings.HasPrefix(number, "+") {
		number = r.defaultCode + number
	}
	return number
}

// Resolve returns the table entry whose code is the longest prefix of the
// normalized number. Numbers that do not start with + never match.
func (r *CountryCodeResolver) Resolve(number string) (models.CountryCodeEntry, bool) {
	cleaned := Normalize(number)
	if !strings.HasPrefix(cleaned, "+") {
		return models.CountryCodeEntry{}, false
	}

	for n := min(maxCodeLength, len(cleaned)); n >= 1; n-- {
		if entry, ok := r.tables.CountryCode(cleaned[:n]); ok {
			return entry, true
		}
	}

	return models.CountryCodeEntry{}, false
}
