package brandforge

import (
	"context"
	"time"

	"github.com/projectdiscovery/gologger"
)

// Status is the registration state reported by an availability provider.
type Status string

const (
	StatusUnregistered Status = "unregistered"
	StatusRegistered   Status = "registered"
	StatusUnsupported  Status = "unsupported"
	StatusInvalid      Status = "invalid"
	StatusUnknown      Status = "unknown"
)

// Available reports whether the domain can be registered.
func (s Status) Available() bool {
	return s == StatusUnregistered
}

// Unavailable reports whether the domain is definitely not registrable.
// Unsupported and unknown statuses are neither available nor unavailable.
func (s Status) Unavailable() bool {
	return s == StatusRegistered || s == StatusInvalid
}

// Checker resolves registration status for a batch of domains. The result
// may be stale or partial; missing entries are treated as unknown.
type Checker interface {
	Check(ctx context.Context, domains []string) (map[string]Status, error)
}

// CheckWithTimeout runs a batch availability check bounded by timeout.
// Provider errors, timeouts and missing entries all resolve to
// StatusUnknown so a slow or broken provider can never block or fail the
// search. The checker goroutine is abandoned on timeout; it only writes to
// its own result map, so no shared state is corrupted.
func CheckWithTimeout(ctx context.Context, checker Checker, domains []string, timeout time.Duration) map[string]Status {
	statuses := make(map[string]Status, len(domains))
	for _, d := range domains {
		statuses[d] = StatusUnknown
	}
	if checker == nil || len(domains) == 0 {
		return statuses
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		statuses map[string]Status
		err      error
	}
	resCh := make(chan result, 1)
	go func() {
		got, err := checker.Check(cctx, domains)
		resCh <- result{statuses: got, err: err}
	}()

	select {
	case res := <-resCh:
		if res.err != nil {
			gologger.Warning().Msgf("availability check failed, marking %v domains unknown: %v", len(domains), res.err)
			return statuses
		}
		for d, s := range res.statuses {
			if _, ok := statuses[d]; ok && s != "" {
				statuses[d] = s
			}
		}
	case <-cctx.Done():
		gologger.Warning().Msgf("availability check timed out after %v, marking %v domains unknown", timeout, len(domains))
	}
	return statuses
}
