package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/yungbote/insurance-backend/internal/loadtest"
	"github.com/yungbote/insurance-backend/internal/platform/envutil"
	"github.com/yungbote/insurance-backend/internal/platform/shutdown"
)

func main() {
	var opts loadtest.Options
	flag.StringVar(&opts.BaseURL, "base-url", envutil.String("INSURANCE_SERVICE_BASE_URL", loadtest.DefaultBaseURL), "insurance service base URL")
	flag.StringVar(&opts.PersonID, "person", loadtest.DefaultPersonID, "person id to query")
	flag.IntVar(&opts.Requests, "requests", loadtest.DefaultRequests, "total requests")
	flag.IntVar(&opts.Concurrency, "concurrency", loadtest.DefaultConcurrency, "max requests in flight")
	flag.DurationVar(&opts.Timeout, "timeout", loadtest.DefaultTimeout, "per-request timeout")
	flag.Parse()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	fmt.Printf("Sending %d requests to %s (concurrency %d)\n", opts.Requests, opts.BaseURL, opts.Concurrency)
	report, err := loadtest.Run(ctx, opts)
	printReport(report)
	if err != nil {
		fmt.Printf("load test failed: %v\n", err)
		os.Exit(1)
	}
	if report.Failures > 0 {
		os.Exit(2)
	}
}

func printReport(r loadtest.Report) {
	fmt.Printf("Target:            %s\n", r.Target)
	fmt.Printf("Successful:        %d\n", r.Successes)
	fmt.Printf("Failed:            %d (transport errors: %d)\n", r.Failures, r.TransportErrors)
	fmt.Printf("Elapsed:           %.2fs\n", r.Elapsed.Seconds())
	fmt.Printf("Requests/sec:      %.2f\n", r.RequestsPerSecond())
	fmt.Printf("Latency p50/p95/max: %s / %s / %s\n", r.P50, r.P95, r.Max)

	codes := make([]int, 0, len(r.StatusCounts))
	for code := range r.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("  HTTP %d: %d\n", code, r.StatusCounts[code])
	}
}
