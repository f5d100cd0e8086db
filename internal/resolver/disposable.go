package resolver

import (
	"strings"

	"github.com/allsafeASM/lookup/internal/tables"
)

// DisposableMatcher flags domains that belong to throwaway inbox services
type DisposableMatcher struct {
	domains []string
}

// NewDisposableMatcher creates a matcher over the tables' disposable list
func NewDisposableMatcher(t *tables.Tables) *DisposableMatcher {
	domains := t.DisposableDomains()
	for i, d := range domains {
		domains[i] = strings.ToLower(d)
	}
	return &DisposableMatcher{domains: domains}
}

// IsDisposable reports whether domain contains a known disposable domain.
// Subdomains such as mx.tempmail.com match as well.
func (m *DisposableMatcher) IsDisposable(domain string) bool {
	if domain == "" {
		return false
	}

	domain = strings.ToLower(domain)
	for _, d := range m.domains {
		if strings.Contains(domain, d) {
			return true
		}
	}
	return false
}
