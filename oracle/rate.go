package oracle

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// ratePath is where the exchange-rate API keeps the KES quote
const ratePath = "data.rates.KES"

// RateOracle fetches the HBAR to KSh spot rate from an external price API.
// Failures are fully absorbed: callers always get a positive rate, falling
// back to a fixed constant when the upstream is unreachable or returns
// garbage. Upstream calls are throttled; throttled callers get the last
// fetched rate.
type RateOracle struct {
	client   *http.Client
	url      string
	fallback decimal.Decimal
	limiter  *rate.Limiter

	mu   sync.Mutex
	last decimal.Decimal
}

// NewRateOracle creates a rate oracle. A nil client uses a default with a
// 10 second timeout.
func NewRateOracle(client *http.Client, url string, fallback decimal.Decimal) *RateOracle {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RateOracle{
		client:   client,
		url:      url,
		fallback: fallback,
		// At most one upstream call every 5 seconds
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

// FetchRate returns the current HBAR/KSh rate. It never fails: any upstream
// problem yields the last known rate, or the fallback before the first
// successful fetch.
func (o *RateOracle) FetchRate(ctx context.Context) decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.limiter.Allow() {
		return o.current()
	}

	fetched, ok := o.fetch(ctx)
	if !ok {
		log.WithField("fallback", o.current()).Warn("Rate fetch failed, using fallback rate")
		return o.current()
	}

	o.last = fetched
	return fetched
}

// current returns the last fetched rate, or the fallback constant
func (o *RateOracle) current() decimal.Decimal {
	if o.last.IsPositive() {
		return o.last
	}
	return o.fallback
}

func (o *RateOracle) fetch(ctx context.Context) (decimal.Decimal, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return decimal.Zero, false
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return decimal.Zero, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return decimal.Zero, false
	}

	value := gjson.GetBytes(body, ratePath)
	if !value.Exists() {
		return decimal.Zero, false
	}

	parsed, err := decimal.NewFromString(value.String())
	if err != nil || !parsed.IsPositive() {
		return decimal.Zero, false
	}

	return parsed, true
}
