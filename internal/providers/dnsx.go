package providers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/projectdiscovery/dnsx/libs/dnsx"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/ratelimit"
	"github.com/projectdiscovery/retryabledns"

	"github.com/allsafeASM/lookup/internal/models"
)

// Mail-server status descriptors
const (
	MailServerMXFound   = "Valid MX Records Found"
	MailServerAFallback = "No MX Records, A Record Fallback"
	MailServerNone      = "No Mail Server"
	MailServerParked    = "Parked Domain"
)

const (
	dnsTypeA  uint16 = 1
	dnsTypeMX uint16 = 15
)

// DefaultResolvers are used when no resolvers are configured
var DefaultResolvers = []string{
	"udp:1.1.1.1:53",         // Cloudflare
	"udp:1.0.0.1:53",         // Cloudflare
	"udp:8.8.8.8:53",         // Google
	"udp:8.8.4.4:53",         // Google
	"udp:9.9.9.9:53",         // Quad9
	"udp:149.112.112.112:53", // Quad9
}

// MX hosts of registrar parking services
var parkedMXHosts = []string{
	"secureserver.net",
	"parking.reg.ru",
	"namecheap.com",
	"domaincontrol.com",
}

// DNSXMailServer resolves MX records with dnsx
type DNSXMailServer struct {
	*BaseProvider

	dnsClient   *dnsx.DNSX
	clientMutex sync.RWMutex
	limiter     *ratelimit.Limiter

	resolvers  []string
	maxRetries int
}

// NewDNSXMailServer creates an MX provider limited to rateLimit queries per second
func NewDNSXMailServer(resolvers []string, rateLimit, maxRetries int) *DNSXMailServer {
	if len(resolvers) == 0 {
		resolvers = DefaultResolvers
	}
	if rateLimit <= 0 {
		rateLimit = 100
	}

	return &DNSXMailServer{
		BaseProvider: NewBaseProvider("dnsx"),
		limiter:      ratelimit.New(context.Background(), uint(rateLimit), time.Second),
		resolvers:    resolvers,
		maxRetries:   maxRetries,
	}
}

// MailServer queries MX and A records for domain and summarizes them
func (p *DNSXMailServer) MailServer(ctx context.Context, domain string) (string, error) {
	if err := p.checkContext(ctx); err != nil {
		return "", err
	}

	domain = strings.ToLower(strings.TrimSpace(domain))
	if !p.domainValidator.IsValidDomain(domain) {
		return models.InvalidDomain, nil
	}

	client, err := p.getDNSClient()
	if err != nil {
		return "", err
	}

	p.limiter.Take()

	dnsData, err := client.QueryMultiple(domain)
	if err != nil {
		return "", p.wrapError("MX query failed", err)
	}
	if dnsData == nil {
		return "", NewProviderError(ErrorBadData, p.name, "empty DNS response", nil)
	}

	status := mailServerStatus(dnsData)
	gologger.Debug().Msgf("MX lookup for %s: %s (%d records)", domain, status, len(dnsData.MX))
	return status, nil
}

// Close stops the rate limiter
func (p *DNSXMailServer) Close() {
	p.limiter.Stop()
}

// getDNSClient lazily creates the shared dnsx client
func (p *DNSXMailServer) getDNSClient() (*dnsx.DNSX, error) {
	p.clientMutex.RLock()
	if p.dnsClient != nil {
		defer p.clientMutex.RUnlock()
		return p.dnsClient, nil
	}
	p.clientMutex.RUnlock()

	p.clientMutex.Lock()
	defer p.clientMutex.Unlock()

	if p.dnsClient != nil {
		return p.dnsClient, nil
	}

	options := dnsx.DefaultOptions
	options.BaseResolvers = p.resolvers
	options.MaxRetries = p.maxRetries
	options.QuestionTypes = []uint16{dnsTypeMX, dnsTypeA}
	options.Hostsfile = false
	options.QueryAll = false

	client, err := dnsx.New(options)
	if err != nil {
		return nil, NewProviderError(ErrorInternal, p.name, "failed to create DNSX client", err)
	}
	p.dnsClient = client
	return p.dnsClient, nil
}

// mailServerStatus maps a DNS answer onto a status descriptor
func mailServerStatus(data *retryabledns.DNSData) string {
	if strings.EqualFold(data.StatusCode, "NXDOMAIN") {
		return models.InvalidDomain
	}

	for _, mx := range data.MX {
		if isParkedMX(mx) {
			return MailServerParked
		}
	}

	switch {
	case len(data.MX) > 0:
		return MailServerMXFound
	case len(data.A) > 0:
		return MailServerAFallback
	default:
		return MailServerNone
	}
}

func isParkedMX(host string) bool {
	host = strings.ToLower(host)
	for _, parked := range parkedMXHosts {
		if strings.Contains(host, parked) {
			return true
		}
	}
	return false
}
