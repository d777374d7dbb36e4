package consolidator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/c360studio/semstore/consolidator"
	"github.com/c360studio/semstore/convergence"
	"github.com/c360studio/semstore/extract"
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
	"github.com/c360studio/semstore/storage"
	"github.com/c360studio/semstore/vocabulary"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubExtractor emits fixed triples, or panics for documents whose ID is in
// the poison set.
type stubExtractor struct {
	triples []graph.Triple
	poison  map[string]bool
}

func (s *stubExtractor) ExtractFromDocument(doc *source.Document) []graph.Triple {
	if s.poison[doc.ID] {
		panic("malformed document")
	}
	out := make([]graph.Triple, len(s.triples))
	for i, t := range s.triples {
		t.Subject = graph.Subject(doc.ID)
		out[i] = t
	}
	return out
}

func nameTriple() graph.Triple {
	return graph.Triple{
		Predicate: graph.Predicate(vocabulary.PredHasName),
		Object:    graph.Object("notes"),
		Metadata:  graph.Metadata{Source: "structural", Confidence: 1},
	}
}

func newService(t *testing.T, opts ...consolidator.Option) (*consolidator.Service, *graph.Store) {
	t.Helper()
	store := graph.NewStore()
	registry := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(registry)
	engine := convergence.NewEngine(convergence.DefaultConfig())
	ext := &stubExtractor{triples: []graph.Triple{nameTriple()}}

	opts = append([]consolidator.Option{consolidator.WithLogger(quietLogger())}, opts...)
	return consolidator.New(store, registry, ext, engine, opts...), store
}

func TestExtractAndStore(t *testing.T) {
	svc, store := newService(t)

	res, err := svc.ExtractAndStore(context.Background(), &source.Document{ID: "doc-1"})
	if err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}
	if len(res.Stored) != 1 || len(res.Rejected) != 0 {
		t.Fatalf("result = %+v, want 1 stored, 0 rejected", res)
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d triples, want 1", store.Len())
	}
	if res.Stored[0].ID == "" {
		t.Error("stored triple has no ID")
	}
}

func TestExtractAndStoreRejectsInvalidInput(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.ExtractAndStore(context.Background(), nil); !errors.Is(err, consolidator.ErrNilDocument) {
		t.Errorf("nil document err = %v, want ErrNilDocument", err)
	}
	if _, err := svc.ExtractAndStore(context.Background(), &source.Document{}); !errors.Is(err, consolidator.ErrMissingID) {
		t.Errorf("missing ID err = %v, want ErrMissingID", err)
	}
}

func TestValidationRejectsUnregisteredPredicate(t *testing.T) {
	store := graph.NewStore()
	registry := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(registry)
	ext := &stubExtractor{triples: []graph.Triple{
		nameTriple(),
		{
			Predicate: graph.Predicate("supersedes"),
			Object:    graph.Object("doc-0"),
			Metadata:  graph.Metadata{Source: "structural", Confidence: 1},
		},
	}}
	svc := consolidator.New(store, registry, ext, convergence.NewEngine(convergence.DefaultConfig()),
		consolidator.WithLogger(quietLogger()),
		consolidator.WithValidation(true))

	res, err := svc.ExtractAndStore(context.Background(), &source.Document{ID: "doc-1"})
	if err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}
	if len(res.Stored) != 1 {
		t.Errorf("stored = %d, want 1 (valid triple kept)", len(res.Stored))
	}
	if len(res.Rejected) != 1 {
		t.Fatalf("rejected = %d, want 1", len(res.Rejected))
	}
	if res.Rejected[0].Reason == "" {
		t.Error("rejection carries no reason")
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d triples, want only the valid one", store.Len())
	}
}

func TestValidationDisabledByDefault(t *testing.T) {
	store := graph.NewStore()
	ext := &stubExtractor{triples: []graph.Triple{
		{
			Predicate: graph.Predicate("supersedes"),
			Object:    graph.Object("doc-0"),
			Metadata:  graph.Metadata{Source: "structural", Confidence: 1},
		},
	}}
	svc := consolidator.New(store, vocabulary.NewRegistry(), ext, convergence.NewEngine(convergence.DefaultConfig()),
		consolidator.WithLogger(quietLogger()))

	res, err := svc.ExtractAndStore(context.Background(), &source.Document{ID: "doc-1"})
	if err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}
	if len(res.Stored) != 1 || len(res.Rejected) != 0 {
		t.Errorf("result = %+v, want unvalidated storage", res)
	}
}

func TestAddManual(t *testing.T) {
	svc, _ := newService(t, consolidator.WithValidation(true))

	tr, err := svc.AddManual("doc-1", vocabulary.PredHasCategory, "Tech")
	if err != nil {
		t.Fatalf("AddManual failed: %v", err)
	}
	if tr.Metadata.Source != graph.SourceManual || tr.Metadata.Confidence != 1 {
		t.Errorf("manual triple metadata = %+v", tr.Metadata)
	}

	if _, err := svc.AddManual("doc-1", "supersedes", "doc-0"); err == nil {
		t.Error("unregistered predicate accepted with validation on")
	}
}

func TestSearchAndStatisticsDelegate(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.ExtractAndStore(context.Background(), &source.Document{ID: "doc-1"}); err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}

	if got := len(svc.Search(graph.Pattern{Subject: "doc-1"})); got != 1 {
		t.Errorf("Search = %d triples, want 1", got)
	}
	if got := svc.Statistics().TotalCount; got != 1 {
		t.Errorf("Statistics.TotalCount = %d, want 1", got)
	}
	if got := len(svc.RelatedTo("notes").AsObject); got != 1 {
		t.Errorf("RelatedTo AsObject = %d, want 1", got)
	}
}

func TestPersistWithoutPersister(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Persist(context.Background()); !errors.Is(err, consolidator.ErrNoPersister) {
		t.Errorf("Persist err = %v, want ErrNoPersister", err)
	}
	if err := svc.Restore(context.Background()); !errors.Is(err, consolidator.ErrNoPersister) {
		t.Errorf("Restore err = %v, want ErrNoPersister", err)
	}
}

func TestPersistRestoreThroughService(t *testing.T) {
	p := storage.NewMemoryPersister()
	svc, store := newService(t, consolidator.WithPersister(p))

	if _, err := svc.ExtractAndStore(context.Background(), &source.Document{ID: "doc-1"}); err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}
	if err := svc.Persist(context.Background()); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	store.Clear()
	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d triples after restore, want 1", store.Len())
	}
}

// failingEmbedder simulates an unavailable embedding backend.
type failingEmbedder struct{}

func (failingEmbedder) EmbedDocument(ctx context.Context, doc *source.Document) ([]float64, error) {
	return nil, errors.New("connection refused")
}

type fixedEmbedder struct{ vec []float64 }

func (e fixedEmbedder) EmbedDocument(ctx context.Context, doc *source.Document) ([]float64, error) {
	return e.vec, nil
}

func TestEnrichDegradesOnEmbeddingFailure(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newService(t,
		consolidator.WithEmbedder(failingEmbedder{}),
		consolidator.WithClock(func() time.Time { return now }))

	rec, vec, err := svc.Enrich(context.Background(), &source.Document{ID: "doc-1", RelevanceScore: 80, ModifiedAt: now})
	if err != nil {
		t.Fatalf("Enrich must not fail on embedding errors: %v", err)
	}
	if rec.Enriched || vec != nil {
		t.Errorf("record enriched despite embedding failure: %+v", rec)
	}
	if rec.Dimensions.Importance != 0.8 {
		t.Errorf("Importance = %v, dimensions must still be computed", rec.Dimensions.Importance)
	}
}

func TestEnrichWithEmbedding(t *testing.T) {
	svc, _ := newService(t, consolidator.WithEmbedder(fixedEmbedder{vec: []float64{0.1, 0.2}}))

	rec, vec, err := svc.Enrich(context.Background(), &source.Document{ID: "doc-1", Content: "text"})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if !rec.Enriched || len(vec) != 2 {
		t.Errorf("record = %+v, vec = %v, want enriched", rec, vec)
	}
}

func TestServiceWithRealExtractor(t *testing.T) {
	store := graph.NewStore()
	registry := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(registry)
	ext := extract.New(extract.DefaultConfig(), quietLogger())
	svc := consolidator.New(store, registry, ext, convergence.NewEngine(convergence.DefaultConfig()),
		consolidator.WithLogger(quietLogger()),
		consolidator.WithValidation(true))

	doc := &source.Document{
		ID:         "doc-real",
		Name:       "pipeline notes",
		Categories: []string{"Tech"},
		Content:    "We rebuilt the machine learning pipeline in python.",
	}
	res, err := svc.ExtractAndStore(context.Background(), doc)
	if err != nil {
		t.Fatalf("ExtractAndStore failed: %v", err)
	}
	if len(res.Rejected) != 0 {
		t.Errorf("default vocabulary rejected extractor output: %+v", res.Rejected)
	}
	if len(res.Stored) < 4 {
		t.Errorf("stored = %d, want name, category, mentions, and theme facts", len(res.Stored))
	}
}
