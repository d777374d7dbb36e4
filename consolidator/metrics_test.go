package consolidator_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/c360studio/semstore/consolidator"
)

func TestMetricsCountProcessingOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := consolidator.NewMetrics(reg)
	svc, _ := batchService(t, map[string]bool{"doc-2": true}, consolidator.WithMetrics(m))

	svc.ExtractAndStoreBatch(context.Background(), makeDocs(5), consolidator.BatchOptions{})

	if got := testutil.ToFloat64(m.DocumentsProcessed); got != 4 {
		t.Errorf("documents_processed_total = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.DocumentsFailed); got != 1 {
		t.Errorf("documents_failed_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.TriplesStored); got != 4 {
		t.Errorf("triples_stored_total = %v, want 4", got)
	}
}
