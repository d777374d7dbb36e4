package consolidator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/semstore/convergence"
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
	"github.com/c360studio/semstore/vocabulary"
)

// DocumentExtractor turns one document into candidate triples. Extraction
// never returns an error; per-strategy failures are isolated inside the
// extractor.
type DocumentExtractor interface {
	ExtractFromDocument(doc *source.Document) []graph.Triple
}

// Embedder is the embedding provider collaborator.
type Embedder interface {
	EmbedDocument(ctx context.Context, doc *source.Document) ([]float64, error)
}

// Rejection records one candidate triple the schema registry turned away.
type Rejection struct {
	Triple graph.Triple `json:"triple"`
	Reason string       `json:"reason"`
}

// StoreResult is the outcome of extracting and storing one document.
type StoreResult struct {
	// Stored lists the triples added to the graph.
	Stored []*graph.Triple `json:"stored"`

	// Rejected lists candidates that failed schema validation. Only
	// populated when validation is enabled.
	Rejected []Rejection `json:"rejected,omitempty"`
}

// Option configures the service.
type Option func(*Service)

// WithValidation enables or disables schema validation of extracted triples.
// Disabled by default; manual and exploratory insertion bypass the registry.
func WithValidation(enabled bool) Option {
	return func(s *Service) { s.validate = enabled }
}

// WithPersister sets the snapshot persistence collaborator.
func WithPersister(p graph.Persister) Option {
	return func(s *Service) { s.persister = p }
}

// WithEmbedder sets the embedding provider collaborator.
func WithEmbedder(e Embedder) Option {
	return func(s *Service) { s.embedder = e }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics sets the Prometheus instruments.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service orchestrates extraction, validation, storage, and scoring. All
// collaborators are injected; the service holds no global state.
type Service struct {
	store     *graph.Store
	registry  *vocabulary.Registry
	extractor DocumentExtractor
	engine    *convergence.Engine

	persister graph.Persister
	embedder  Embedder
	logger    *slog.Logger
	metrics   *Metrics
	now       func() time.Time
	validate  bool
}

// New creates a service around the given store, registry, extractor, and
// convergence engine.
func New(store *graph.Store, registry *vocabulary.Registry, extractor DocumentExtractor, engine *convergence.Engine, opts ...Option) *Service {
	s := &Service{
		store:     store,
		registry:  registry,
		extractor: extractor,
		engine:    engine,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractAndStore runs extraction on one document and stores the resulting
// triples, validating through the registry when validation is enabled.
// Rejected candidates are reported, not stored.
func (s *Service) ExtractAndStore(ctx context.Context, doc *source.Document) (StoreResult, error) {
	var res StoreResult
	if doc == nil {
		return res, ErrNilDocument
	}
	if doc.ID == "" {
		return res, ErrMissingID
	}

	start := s.now()
	candidates := s.extractor.ExtractFromDocument(doc)

	for _, c := range candidates {
		if s.validate {
			verdict := s.registry.Validate(c.Subject.Class, c.Predicate.Value, c.Object.Class)
			if !verdict.Valid {
				res.Rejected = append(res.Rejected, Rejection{Triple: c, Reason: verdict.Reason})
				if s.metrics != nil {
					s.metrics.TriplesRejected.Inc()
				}
				continue
			}
		}
		stored := s.store.Add(c.Subject, c.Predicate, c.Object, c.Metadata)
		res.Stored = append(res.Stored, stored)
	}

	if s.metrics != nil {
		s.metrics.DocumentsProcessed.Inc()
		s.metrics.TriplesStored.Add(float64(len(res.Stored)))
		s.metrics.ExtractSeconds.Observe(s.now().Sub(start).Seconds())
	}
	s.logger.Debug("document stored",
		"document", doc.ID,
		"stored", len(res.Stored),
		"rejected", len(res.Rejected))
	return res, nil
}

// AddManual stores a human-curated fact with confidence 1.0, validating
// through the registry when validation is enabled.
func (s *Service) AddManual(subject, predicate, object string) (*graph.Triple, error) {
	sub, pred, obj := graph.Subject(subject), graph.Predicate(predicate), graph.Object(object)
	if s.validate {
		verdict := s.registry.Validate(sub.Class, pred.Value, obj.Class)
		if !verdict.Valid {
			return nil, fmt.Errorf("validation failed: %s", verdict.Reason)
		}
	}
	return s.store.Add(sub, pred, obj, graph.Metadata{Source: graph.SourceManual, Confidence: 1}), nil
}

// Search returns the triples matching the pattern.
func (s *Service) Search(p graph.Pattern) []*graph.Triple {
	return s.store.Query(p)
}

// RelatedTo returns the triples touching an entity, partitioned by role.
func (s *Service) RelatedTo(entityID string) graph.Related {
	return s.store.RelatedTo(entityID)
}

// Statistics returns a snapshot of the graph.
func (s *Service) Statistics() graph.Statistics {
	return s.store.Statistics()
}

// Persist saves the graph snapshot through the configured persister.
func (s *Service) Persist(ctx context.Context) error {
	if s.persister == nil {
		return ErrNoPersister
	}
	return s.store.Persist(ctx, s.persister)
}

// Restore loads the graph snapshot through the configured persister.
func (s *Service) Restore(ctx context.Context) error {
	if s.persister == nil {
		return ErrNoPersister
	}
	return s.store.Restore(ctx, s.persister)
}

// Enrich computes the convergence record for a document. When an embedder is
// configured its vector enriches the record; an embedding failure degrades
// to an unenriched record rather than failing the call.
func (s *Service) Enrich(ctx context.Context, doc *source.Document) (convergence.Record, []float64, error) {
	if doc == nil {
		return convergence.Record{}, nil, ErrNilDocument
	}

	var vector []float64
	if s.embedder != nil {
		v, err := s.embedder.EmbedDocument(ctx, doc)
		if err != nil {
			s.logger.Warn("embedding unavailable, scoring without semantic dimension",
				"document", doc.ID,
				"error", err)
		} else {
			vector = v
		}
	}
	return s.engine.Compute(doc, s.store, vector, s.now()), vector, nil
}
