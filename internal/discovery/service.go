package discovery

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"pathwise/internal/catalog"
	"pathwise/internal/discovery/metrics"
	"pathwise/pkg/platform/audit"
	"pathwise/pkg/requestcontext"
)

// defaultAdvisorTimeout bounds the external advisory-text call. The advisor
// is the only slow collaborator in the pipeline and must never block it.
const defaultAdvisorTimeout = 5 * time.Second

// Narrator produces the deterministic consultant note from the evaluation
// aggregates. The core supplies the counts; it never decides wording.
type Narrator interface {
	Note(budget, gpa float64, meta Meta) string
}

// Advisor produces a short freeform note for the top-ranked result, or
// signals unavailability with an error. Implementations must respect ctx.
type Advisor interface {
	Note(ctx context.Context, p Profile, top ScoreResult, country catalog.Country) (string, error)
}

// Service orchestrates the discovery pipeline: classify, rank, aggregate,
// then enrich the response with the consultant note and audit trail. The
// pipeline itself is pure; only the enrichment step does I/O.
type Service struct {
	catalog        *catalog.Catalog
	classifier     *Classifier
	narrator       Narrator
	advisor        Advisor
	advisorTimeout time.Duration
	auditor        *audit.Publisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
}

// ServiceOption configures optional service collaborators.
type ServiceOption func(*Service)

// WithAdvisor wires the advisory-text client. A nil advisor disables the
// call; the narrative note is used directly.
func WithAdvisor(advisor Advisor, timeout time.Duration) ServiceOption {
	return func(s *Service) {
		s.advisor = advisor
		if timeout > 0 {
			s.advisorTimeout = timeout
		}
	}
}

// WithAuditor wires the audit publisher.
func WithAuditor(auditor *audit.Publisher) ServiceOption {
	return func(s *Service) { s.auditor = auditor }
}

// WithMetrics wires prometheus metrics.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// NewService builds the discovery service.
func NewService(cat *catalog.Catalog, classifier *Classifier, narrator Narrator, logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		catalog:        cat,
		classifier:     classifier,
		narrator:       narrator,
		advisorTimeout: defaultAdvisorTimeout,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the full discovery outcome handed to the transport layer.
type Result struct {
	Strategies     Strategies
	Meta           Meta
	ConsultantNote string
}

// Discover evaluates the profile against the whole catalog. An empty result
// (no eligible country) is a valid outcome, not an error; the only error
// returned is context cancellation.
func (s *Service) Discover(ctx context.Context, p Profile) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracer := otel.Tracer("pathwise/discovery")
	ctx, span := tracer.Start(ctx, "discovery.Discover")
	defer span.End()

	start := time.Now()
	p = p.withDefaults()

	strategies := s.classifier.Classify(p, s.catalog)
	RankStrategies(&strategies)
	meta := strategies.Meta()

	span.SetAttributes(
		attribute.Int("discovery.total_options", meta.TotalOptions),
		attribute.String("discovery.priority_goal", p.PriorityGoal),
	)
	s.metrics.ObserveEligibleOptions(meta.TotalOptions)
	s.metrics.CountBucket(string(catalog.ArchetypeSafeBet), meta.SafeCount)
	s.metrics.CountBucket(string(catalog.ArchetypeFastTrack), meta.FastCount)
	s.metrics.CountBucket(string(catalog.ArchetypeMoonshot), meta.MoonshotCount)

	result := &Result{
		Strategies:     strategies,
		Meta:           meta,
		ConsultantNote: s.narrator.Note(p.BudgetMaxLakhs, p.GPA, meta),
	}

	s.enrich(ctx, p, result)

	s.metrics.ObserveEvaluateLatency(time.Since(start))
	return result, nil
}

// enrich runs the advisory call and audit emission concurrently, after the
// deterministic pipeline is complete. Neither may alter scoring output or
// fail the evaluation.
func (s *Service) enrich(ctx context.Context, p Profile, result *Result) {
	top, ok := TopRanked(result.Strategies)

	g, gctx := errgroup.WithContext(ctx)

	if ok && s.advisor != nil {
		g.Go(func() error {
			note, err := s.fetchAdvisorNote(gctx, p, top)
			if err != nil {
				s.metrics.CountAdvisorFallback()
				if s.logger != nil {
					s.logger.WarnContext(gctx, "advisor unavailable, using narrative note",
						"request_id", requestcontext.RequestID(ctx),
						"country", top.Country,
						"error", err,
					)
				}
				return nil
			}
			result.ConsultantNote = note
			return nil
		})
	}

	g.Go(func() error {
		s.emitAudit(gctx, result.Meta, top, ok)
		return nil
	})

	// Goroutines swallow their own failures; Wait only synchronizes.
	_ = g.Wait()
}

func (s *Service) fetchAdvisorNote(ctx context.Context, p Profile, top ScoreResult) (string, error) {
	country, err := s.catalog.Lookup(top.Country)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.advisorTimeout)
	defer cancel()

	start := time.Now()
	note, err := s.advisor.Note(ctx, p, top, country)
	if err != nil {
		return "", err
	}
	s.metrics.ObserveAdvisorLatency(time.Since(start))
	return note, nil
}

func (s *Service) emitAudit(ctx context.Context, meta Meta, top ScoreResult, hasTop bool) {
	if s.auditor == nil {
		return
	}

	event := audit.Event{
		Timestamp:     requestcontext.Now(ctx),
		RequestID:     requestcontext.RequestID(ctx),
		Action:        audit.ActionRecommendationServed,
		Subject:       "none",
		TotalOptions:  meta.TotalOptions,
		SafeCount:     meta.SafeCount,
		FastCount:     meta.FastCount,
		MoonshotCount: meta.MoonshotCount,
	}
	if hasTop {
		event.Subject = top.Country
		event.Decision = strconv.Itoa(top.MatchScore)
	}
	s.auditor.Emit(ctx, event)
}
