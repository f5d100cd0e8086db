package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/validation"
)

// Email classifies an email address and checks its domain
func (e *Engine) Email(ctx context.Context, input string) models.EmailRecord {
	start := time.Now()

	rec := e.email(ctx, input)
	e.finish(kindEmail, rec.Outcome, start)
	return rec
}

func (e *Engine) email(ctx context.Context, input string) models.EmailRecord {
	if !validation.IsEmail(input) {
		return models.EmailRecord{
			Input:      input,
			LocalPart:  input,
			MailServer: models.InvalidDomain,
			Outcome:    models.OutcomeFormatInvalid,
		}
	}

	localPart, domain, _ := strings.Cut(input, "@")
	rec := models.EmailRecord{
		Input:        input,
		IsValid:      true,
		Domain:       domain,
		LocalPart:    localPart,
		IsDisposable: e.disposable.IsDisposable(domain),
		Outcome:      models.OutcomeOK,
	}

	status, err := e.providers.MailServer.MailServer(ctx, domain)
	if err != nil {
		e.providerFailed(FieldMailServer, input, err)
		status = models.Unavailable
		rec.Unavailable = append(rec.Unavailable, FieldMailServer)
	}
	rec.MailServer = status

	return rec
}
