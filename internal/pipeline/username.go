package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/validation"
)

// Username probes every known platform for the handle, keeping platform order
func (e *Engine) Username(ctx context.Context, input string) models.UsernameRecord {
	start := time.Now()

	rec := e.username(ctx, input)
	e.finish(kindUsername, rec.Outcome, start)
	return rec
}

func (e *Engine) username(ctx context.Context, input string) models.UsernameRecord {
	if !validation.IsUsername(input) {
		return models.UsernameRecord{
			Input:     input,
			Platforms: []models.PlatformProbe{},
			Outcome:   models.OutcomeFormatInvalid,
		}
	}

	platforms := e.tables.Platforms()
	probes := make([]models.PlatformProbe, len(platforms))

	var g errgroup.Group
	for i, platform := range platforms {
		g.Go(func() error {
			probe := models.PlatformProbe{
				Platform: platform.Name,
				URL:      platform.URL(input),
				Status:   models.ProbeUnknown,
			}

			available, err := e.providers.Prober.Available(ctx, input, platform)
			switch {
			case err != nil:
				e.providerFailed(FieldAvailability, input+" on "+platform.Name, err)
			case available:
				probe.Available = true
				probe.Status = models.ProbeAvailable
			default:
				probe.Status = models.ProbeTaken
			}

			probes[i] = probe
			return nil
		})
	}
	_ = g.Wait()

	rec := models.UsernameRecord{
		Input:     input,
		IsValid:   true,
		Platforms: probes,
		Outcome:   models.OutcomeOK,
	}
	for _, probe := range probes {
		if probe.Status == models.ProbeUnknown {
			rec.Unavailable = append(rec.Unavailable, probe.Platform)
		}
	}
	return rec
}
