package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/httpx/runner"
	"github.com/projectdiscovery/ratelimit"

	"github.com/allsafeASM/lookup/internal/models"
)

// HTTPXProber checks profile pages with the httpx runner. A 404 means the
// name is free, any 2xx or 3xx means it is taken.
type HTTPXProber struct {
	*BaseProvider
	limiter *ratelimit.Limiter
	timeout int
}

// NewHTTPXProber creates a prober issuing at most rateLimit probes per
// second, each bounded by timeout
func NewHTTPXProber(rateLimit int, timeout time.Duration) *HTTPXProber {
	if rateLimit <= 0 {
		rateLimit = 10
	}
	seconds := int(timeout.Seconds())
	if seconds <= 0 {
		seconds = 10
	}

	return &HTTPXProber{
		BaseProvider: NewBaseProvider("httpx"),
		limiter:      ratelimit.New(context.Background(), uint(rateLimit), time.Second),
		timeout:      seconds,
	}
}

// Available probes the platform's profile URL for username
func (p *HTTPXProber) Available(ctx context.Context, username string, platform models.Platform) (bool, error) {
	if err := p.checkContext(ctx); err != nil {
		return false, err
	}

	target := platform.URL(username)
	resultCh := make(chan runner.Result, 1)
	doneCh := make(chan struct{})

	options := runner.Options{
		InputTargetHost: goflags.StringSlice{target},
		Methods:         http.MethodGet,
		FollowRedirects: false,
		Threads:         1,
		Timeout:         p.timeout,
		Silent:          true,
		OnResult: func(r runner.Result) {
			select {
			case resultCh <- r:
			default:
			}
		},
	}

	if err := options.ValidateOptions(); err != nil {
		return false, NewProviderError(ErrorInternal, p.name, "invalid httpx options", err)
	}

	httpxRunner, err := runner.New(&options)
	if err != nil {
		return false, NewProviderError(ErrorInternal, p.name, "failed to create httpx runner", err)
	}
	defer httpxRunner.Close()

	p.limiter.Take()

	go func() {
		httpxRunner.RunEnumeration()
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-ctx.Done():
		return false, NewProviderError(ErrorTimeout, p.name, "probe cancelled", ctx.Err())
	}

	var result runner.Result
	select {
	case result = <-resultCh:
	default:
		return false, NewProviderError(ErrorProviderOutage, p.name, "no response from "+platform.Name, nil)
	}

	if result.Err != nil {
		return false, p.wrapError("probe failed for "+platform.Name, result.Err)
	}

	gologger.Debug().Msgf("Probe %s returned %d", target, result.StatusCode)
	return availabilityFromStatus(p.name, platform.Name, result.StatusCode)
}

// Close stops the rate limiter
func (p *HTTPXProber) Close() {
	p.limiter.Stop()
}

// availabilityFromStatus interprets the HTTP status of a profile page
func availabilityFromStatus(provider, platform string, status int) (bool, error) {
	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return true, nil
	case status >= 200 && status < 400:
		return false, nil
	case status == http.StatusTooManyRequests:
		return false, NewProviderError(ErrorRateLimited, provider, platform+" rate limited the probe", nil)
	default:
		return false, NewProviderError(ErrorBadData, provider, platform+" returned an inconclusive status", nil)
	}
}
