package services

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/insurance-backend/internal/clients/vehicleapi"
	"github.com/yungbote/insurance-backend/internal/domain/insurance"
	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
	"github.com/yungbote/insurance-backend/internal/observability"
	"github.com/yungbote/insurance-backend/internal/platform/ctxutil"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
)

const defaultEnrichmentConcurrency = 8

// InsuranceService assembles a person's policies with best-effort vehicle details.
// Only an unknown person is reported; vehicle lookup failures never fail the request.
type InsuranceService interface {
	GetPersonInsurances(ctx context.Context, personID string) (insurance.PersonInsuranceResponse, bool)
}

// PolicySource is the read side of the insurance registry.
type PolicySource interface {
	Policies(personID string) ([]insurance.Policy, bool)
}

// VehicleLookup fetches vehicle details from the vehicle service.
type VehicleLookup interface {
	Fetch(ctx context.Context, registrationNumber string) (vehicle.Vehicle, bool, error)
}

type insuranceService struct {
	log         *logger.Logger
	policies    PolicySource
	vehicles    VehicleLookup
	metrics     *observability.Metrics
	tracer      trace.Tracer
	concurrency int
}

// NewInsuranceService wires the aggregator. vehicles may be nil, in which case policies are
// returned without vehicle details. metrics may be nil. concurrency <= 0 uses the default.
func NewInsuranceService(
	baseLog *logger.Logger,
	policies PolicySource,
	vehicles VehicleLookup,
	metrics *observability.Metrics,
	concurrency int,
) InsuranceService {
	if concurrency <= 0 {
		concurrency = defaultEnrichmentConcurrency
	}
	return &insuranceService{
		log:         baseLog.With("service", "InsuranceService"),
		policies:    policies,
		vehicles:    vehicles,
		metrics:     metrics,
		tracer:      otel.Tracer(observability.TracerName),
		concurrency: concurrency,
	}
}

func (s *insuranceService) GetPersonInsurances(ctx context.Context, personID string) (insurance.PersonInsuranceResponse, bool) {
	ctx, span := s.tracer.Start(ctx, "insurance.GetPersonInsurances")
	defer span.End()

	personID = strings.TrimSpace(personID)
	stored, ok := s.policies.Policies(personID)
	if !ok {
		span.SetAttributes(attribute.Bool("insurance.found", false))
		s.log.Debug("no insurances for person", "person_id", personID, "request_id", ctxutil.RequestID(ctx))
		return insurance.PersonInsuranceResponse{}, false
	}

	// The response owns its policies; enrichment below must never reach stored data.
	policies := insurance.ClonePolicies(stored)
	span.SetAttributes(
		attribute.Bool("insurance.found", true),
		attribute.Int("insurance.policy_count", len(policies)),
	)

	s.enrich(ctx, span, policies)

	return insurance.PersonInsuranceResponse{
		PersonID:         personID,
		Insurances:       policies,
		TotalMonthlyCost: insurance.TotalMonthlyCost(policies),
	}, true
}

// enrich fills VehicleDetails on car policies in place. Each goroutine writes only its own
// index, and the group has no shared context so one failed lookup never cancels another.
func (s *insuranceService) enrich(ctx context.Context, span trace.Span, policies []insurance.Policy) {
	if s.vehicles == nil {
		return
	}
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range policies {
		reg := policies[i].Registration()
		if reg == "" {
			continue
		}
		g.Go(func() error {
			v, outcome := s.lookup(ctx, reg)
			if v != nil {
				policies[i].VehicleDetails = v
			}
			span.AddEvent("vehicle.enrichment", trace.WithAttributes(
				attribute.String("vehicle.registration", reg),
				attribute.String("vehicle.outcome", outcome),
			))
			s.metrics.ObserveEnrichment(outcome)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *insuranceService) lookup(ctx context.Context, reg string) (*vehicle.Vehicle, string) {
	start := time.Now()
	v, found, err := s.vehicles.Fetch(ctx, reg)
	outcome := observability.EnrichmentEnriched
	switch {
	case err != nil:
		outcome = observability.EnrichmentUnavailable
		reason := string(vehicleapi.ReasonOf(err))
		if reason == "" {
			reason = "error"
		}
		s.log.Warn("vehicle lookup failed, returning policy without vehicle details",
			"registration", reg,
			"reason", reason,
			"error", err,
			"request_id", ctxutil.RequestID(ctx),
		)
	case !found:
		outcome = observability.EnrichmentNotFound
		s.log.Debug("vehicle not registered", "registration", reg, "request_id", ctxutil.RequestID(ctx))
	}
	s.metrics.ObserveVehicleLookup(outcome, time.Since(start))
	if outcome != observability.EnrichmentEnriched {
		return nil, outcome
	}
	return &v, outcome
}
