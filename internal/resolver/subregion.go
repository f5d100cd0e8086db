package resolver

import (
	"strings"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/tables"
)

// SubRegion is the outcome of a sub-region lookup. Known is false when the
// prefix was not in the table and the national centroid was used instead.
type SubRegion struct {
	Name     string
	Location models.Coordinates
	Known    bool
}

// SubRegionResolver maps Indian numbers to their telecom circle
type SubRegionResolver struct {
	tables *tables.Tables
}

// NewSubRegionResolver creates a sub-region resolver over t
func NewSubRegionResolver(t *tables.Tables) *SubRegionResolver {
	return &SubRegionResolver{tables: t}
}

// Applies reports whether sub-region resolution is defined for code
func (r *SubRegionResolver) Applies(code string) bool {
	return code == tables.IndiaCode
}

// Resolve looks up the circle for an Indian number. It never fails: unknown
// prefixes fall back to the national centroid.
func (r *SubRegionResolver) Resolve(number string) SubRegion {
	digits := strings.TrimPrefix(Normalize(number), "+")
	countryDigits := strings.TrimPrefix(tables.IndiaCode, "+")
	if strings.HasPrefix(digits, countryDigits) && len(digits) > tables.IndiaNationalLength {
		digits = digits[len(countryDigits):]
	}

	if len(digits) >= 2 {
		if e, ok := r.tables.SubRegion(digits[:2]); ok {
			return SubRegion{Name: e.Name, Location: e.Coordinates(), Known: true}
		}
	}

	return SubRegion{Name: models.RegionUnknown, Location: r.tables.NationalCentroid()}
}
