package consolidator

import (
	"context"
	"fmt"

	"github.com/c360studio/semstore/source"
)

// defaultBatchSize is used when BatchOptions.BatchSize is unset.
const defaultBatchSize = 10

// BatchOptions tunes batch processing.
type BatchOptions struct {
	// BatchSize is the number of documents per batch.
	BatchSize int

	// OnProgress is invoked after each batch with the processed and total
	// document counts.
	OnProgress func(processed, total int)
}

// DocumentFailure records one document the batch could not process.
type DocumentFailure struct {
	DocumentID string `json:"documentId"`
	Message    string `json:"message"`
}

// BatchResult summarizes a batch run. Successful and Failed always add up to
// the number of documents attempted; there is no all-or-nothing abort.
type BatchResult struct {
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Failures   []DocumentFailure `json:"failures,omitempty"`

	// Cancelled reports whether the context expired before all batches ran.
	Cancelled bool `json:"cancelled"`
}

// ExtractAndStoreBatch processes documents in fixed-size batches. A failure
// on one document is recorded and skipped; the batch continues. Cancellation
// is honored between batches, never mid-batch.
func (s *Service) ExtractAndStoreBatch(ctx context.Context, docs []*source.Document, opts BatchOptions) BatchResult {
	size := opts.BatchSize
	if size <= 0 {
		size = defaultBatchSize
	}

	var res BatchResult
	total := len(docs)
	processed := 0

	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			res.Cancelled = true
			s.logger.Info("batch cancelled",
				"processed", processed,
				"total", total)
			return res
		}

		end := start + size
		if end > total {
			end = total
		}
		for _, doc := range docs[start:end] {
			if err := s.storeOne(ctx, doc); err != nil {
				res.Failed++
				res.Failures = append(res.Failures, DocumentFailure{
					DocumentID: documentID(doc),
					Message:    err.Error(),
				})
				if s.metrics != nil {
					s.metrics.DocumentsFailed.Inc()
				}
				s.logger.Warn("document skipped",
					"document", documentID(doc),
					"error", err)
			} else {
				res.Successful++
			}
			processed++
		}

		if opts.OnProgress != nil {
			opts.OnProgress(processed, total)
		}
	}
	return res
}

// storeOne wraps ExtractAndStore with panic recovery so one misbehaving
// document cannot take down the whole batch.
func (s *Service) storeOne(ctx context.Context, doc *source.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction panicked: %v", r)
		}
	}()
	_, err = s.ExtractAndStore(ctx, doc)
	return err
}

func documentID(doc *source.Document) string {
	if doc == nil {
		return ""
	}
	return doc.ID
}
