// Package loadtest drives concurrent GET traffic at the insurance service and summarizes it.
package loadtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL     = "http://localhost:8081"
	DefaultPersonID    = "12345"
	DefaultRequests    = 1000
	DefaultConcurrency = 100
	DefaultTimeout     = 30 * time.Second
)

type Options struct {
	BaseURL     string
	PersonID    string
	Requests    int
	Concurrency int
	// Timeout bounds each request.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Report summarizes one run. A request succeeds only on a 2xx status.
type Report struct {
	Target       string
	Requests     int
	Successes    int64
	Failures     int64
	Elapsed      time.Duration
	StatusCounts map[int]int64
	// TransportErrors counts requests that got no HTTP response at all.
	TransportErrors int64
	P50, P95, Max   time.Duration
}

// RequestsPerSecond is completed requests over wall time.
func (r Report) RequestsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Successes+r.Failures) / r.Elapsed.Seconds()
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.BaseURL) == "" {
		o.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(o.PersonID) == "" {
		o.PersonID = DefaultPersonID
	}
	if o.Requests <= 0 {
		o.Requests = DefaultRequests
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Concurrency > o.Requests {
		o.Concurrency = o.Requests
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(&http.Transport{
			MaxIdleConns:        o.Concurrency,
			MaxIdleConnsPerHost: o.Concurrency,
			IdleConnTimeout:     90 * time.Second,
		})}
	}
	return o
}

// Run fires opts.Requests GETs with at most opts.Concurrency in flight. Individual failures
// are counted, never returned; the error is reserved for invalid options and cancellation.
func Run(ctx context.Context, opts Options) (Report, error) {
	opts = opts.withDefaults()
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return Report{}, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}
	target := base + "/api/insurances/" + url.PathEscape(strings.TrimSpace(opts.PersonID))

	var (
		successes, failures, transport int64
		mu                             sync.Mutex
		statuses                       = map[int]int64{}
		latencies                      = make([]time.Duration, opts.Requests)
	)

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	start := time.Now()
	for i := 0; i < opts.Requests; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			t0 := time.Now()
			status, err := get(ctx, opts.HTTPClient, target, opts.Timeout)
			latencies[i] = time.Since(t0)
			if err != nil {
				atomic.AddInt64(&transport, 1)
				atomic.AddInt64(&failures, 1)
				return nil
			}
			mu.Lock()
			statuses[status]++
			mu.Unlock()
			if status >= 200 && status < 300 {
				atomic.AddInt64(&successes, 1)
			} else {
				atomic.AddInt64(&failures, 1)
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	report := Report{
		Target:          target,
		Requests:        opts.Requests,
		Successes:       successes,
		Failures:        failures,
		Elapsed:         elapsed,
		StatusCounts:    statuses,
		TransportErrors: transport,
	}
	report.P50, report.P95, report.Max = percentiles(latencies[:successes+failures])
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("load test interrupted: %w", err)
	}
	return report, nil
}

func get(ctx context.Context, hc *http.Client, target string, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	// Drain so the connection is reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func percentiles(samples []time.Duration) (p50, p95, slowest time.Duration) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	at := func(q float64) time.Duration {
		idx := int(q*float64(len(sorted))+0.5) - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		return sorted[idx]
	}
	return at(0.50), at(0.95), sorted[len(sorted)-1]
}
