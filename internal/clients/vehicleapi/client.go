// Package vehicleapi calls the vehicle service over HTTP.
package vehicleapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
)

const (
	DefaultTimeout = 5 * time.Second

	vehiclesPath = "/api/vehicles/"
	maxBodyBytes = 1 << 20
)

type Options struct {
	BaseURL string
	// Timeout bounds each Fetch. Defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient defaults to a client with an otelhttp transport.
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("baseURL required")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL %q must be absolute", baseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &Client{baseURL: baseURL, timeout: timeout, httpClient: hc}, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Timeout() time.Duration { return c.timeout }

// Fetch looks up one vehicle with exactly one GET. It returns (v, true, nil) when found,
// (zero, false, nil) when the service answers 404 or the registration is blank, and
// (zero, false, *UnavailableError) for every other outcome.
func (c *Client) Fetch(ctx context.Context, registrationNumber string) (vehicle.Vehicle, bool, error) {
	reg := strings.TrimSpace(registrationNumber)
	if reg == "" {
		return vehicle.Vehicle{}, false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+vehiclesPath+url.PathEscape(reg), nil)
	if err != nil {
		return vehicle.Vehicle{}, false, unavailable(reg, ReasonTransport, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return vehicle.Vehicle{}, false, unavailable(reg, classify(ctx, err), 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return vehicle.Vehicle{}, false, unavailable(reg, classify(ctx, err), resp.StatusCode, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return vehicle.Vehicle{}, false, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return vehicle.Vehicle{}, false, unavailable(reg, ReasonStatus, resp.StatusCode, bodyError(raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return vehicle.Vehicle{}, false, unavailable(reg, ReasonDecode, resp.StatusCode, err)
	}
	if !env.Success {
		msg := "success=false"
		if env.ErrorMessage != nil && strings.TrimSpace(*env.ErrorMessage) != "" {
			msg += ": " + strings.TrimSpace(*env.ErrorMessage)
		}
		return vehicle.Vehicle{}, false, unavailable(reg, ReasonDecode, resp.StatusCode, errors.New(msg))
	}
	if env.Data == nil {
		return vehicle.Vehicle{}, false, unavailable(reg, ReasonDecode, resp.StatusCode, errors.New("missing data"))
	}
	return *env.Data, true, nil
}

// classify tells a deadline from other transport failures.
func classify(ctx context.Context, err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ReasonTimeout
	}
	return ReasonTransport
}

func bodyError(raw []byte) error {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return nil
	}
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Errorf("body: %s", body)
}
