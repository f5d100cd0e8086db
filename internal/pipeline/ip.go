package pipeline

import (
	"context"
	"time"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/validation"
)

// IP geolocates an IPv4 address
func (e *Engine) IP(ctx context.Context, input string) models.IPRecord {
	start := time.Now()

	rec := e.ip(ctx, input)
	e.finish(kindIP, rec.Outcome, start)
	return rec
}

func (e *Engine) ip(ctx context.Context, input string) models.IPRecord {
	if !validation.IsIPv4(input) {
		return models.IPRecord{
			Input:    input,
			Country:  models.Unknown,
			City:     models.Unknown,
			ISP:      models.Unknown,
			Timezone: models.Unknown,
			Outcome:  models.OutcomeFormatInvalid,
		}
	}

	geo, err := e.providers.Geo.Geo(ctx, input)
	if err != nil {
		e.providerFailed(FieldGeo, input, err)
		return models.IPRecord{
			Input:       input,
			IsValid:     true,
			Country:     models.Unavailable,
			City:        models.Unavailable,
			ISP:         models.Unavailable,
			Timezone:    models.Unavailable,
			Outcome:     models.OutcomeOK,
			Unavailable: []string{FieldGeo},
		}
	}

	rec := models.IPRecord{
		Input:    input,
		IsValid:  true,
		Country:  geo.Country,
		City:     geo.City,
		ISP:      geo.ISP,
		Timezone: geo.Timezone,
		Outcome:  models.OutcomeOK,
	}
	if geo.Location != nil {
		rec.Location = models.NewCoordinates(geo.Location.Lat, geo.Location.Lng)
	}

	return rec
}
