package pipeline

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/resolver"
	"github.com/allsafeASM/lookup/internal/validation"
)

const (
	minValidLength    = 10
	maxValidLength    = 15
	minPossibleLength = 7
)

// Phone resolves a single phone number
func (e *Engine) Phone(ctx context.Context, input string) models.PhoneRecord {
	start := time.Now()

	rec := e.phone(ctx, input)
	e.finish(kindPhone, rec.Outcome, start)
	return rec
}

// PhoneBatch resolves up to MaxBatchSize comma-separated numbers in input
// order. Entries that fail format validation are left out of the result.
func (e *Engine) PhoneBatch(ctx context.Context, input string) []models.PhoneRecord {
	entries := SplitBatch(input)

	slots := make([]*models.PhoneRecord, len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			if !validation.IsPhone(entry) {
				return nil
			}
			rec := e.Phone(ctx, entry)
			slots[i] = &rec
			return nil
		})
	}
	_ = g.Wait()

	records := make([]models.PhoneRecord, 0, len(entries))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// SplitBatch splits a comma-separated batch, dropping blank entries and
// keeping at most MaxBatchSize
func SplitBatch(input string) []string {
	parts := strings.Split(input, ",")

	entries := make([]string, 0, min(len(parts), MaxBatchSize))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		entries = append(entries, p)
		if len(entries) == MaxBatchSize {
			break
		}
	}
	return entries
}

func (e *Engine) phone(ctx context.Context, input string) models.PhoneRecord {
	if !validation.IsPhone(input) {
		return unknownPhone(input, models.OutcomeFormatInvalid)
	}

	formatted := e.countryCodes.ApplyDefault(input)
	entry, ok := e.countryCodes.Resolve(formatted)
	if !ok {
		return unknownPhone(input, models.OutcomeCountryUnknown)
	}

	cleaned := resolver.Normalize(formatted)
	rec := models.PhoneRecord{
		Input:       input,
		Country:     entry.Country,
		CountryCode: entry.Code,
		Region:      entry.Region,
		Timezone:    entry.Timezone,
		IsValid:     len(cleaned) >= minValidLength && len(cleaned) <= maxValidLength,
		IsPossible:  len(cleaned) >= minPossibleLength,
		Formatted:   formatted,
		Outcome:     models.OutcomeOK,
	}

	if e.subRegions.Applies(entry.Code) {
		sub := e.subRegions.Resolve(formatted)
		rec.Region = sub.Name
		rec.Location = models.NewCoordinates(sub.Location.Lat, sub.Location.Lng)
	} else if c, ok := e.tables.Centroid(entry.Code); ok {
		rec.Location = models.NewCoordinates(c.Lat, c.Lng)
	}

	carrier, err := e.providers.Carrier.Carrier(ctx, entry.Code, cleaned)
	if err != nil {
		e.providerFailed(FieldCarrier, input, err)
		carrier = models.Unavailable
		rec.Unavailable = append(rec.Unavailable, FieldCarrier)
	}
	rec.Carrier = carrier

	return rec
}

// unknownPhone is the record for numbers that could not be resolved
func unknownPhone(input string, outcome models.Outcome) models.PhoneRecord {
	return models.PhoneRecord{
		Input:     input,
		Country:   models.Unknown,
		Region:    models.Unknown,
		Carrier:   models.Unknown,
		Timezone:  models.Unknown,
		Formatted: input,
		Outcome:   outcome,
	}
}
