package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semstore/source"
)

type stubEmbedder struct {
	vectors [][]float64
	err     error
}

func (s *stubEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	return s.vectors, s.err
}

func TestEmbedDocument(t *testing.T) {
	svc := NewService(&stubEmbedder{vectors: [][]float64{{0.1, 0.2, 0.3}}})

	vec, err := svc.EmbedDocument(context.Background(), &source.Document{ID: "doc-1", Content: "some text"})
	require.NoError(t, err)
	assert.Len(t, vec, 3)
}

func TestEmbedDocumentTextSelection(t *testing.T) {
	svc := NewService(&stubEmbedder{vectors: [][]float64{{1}}})

	_, err := svc.EmbedDocument(context.Background(), &source.Document{ID: "doc-p", Preview: "preview only"})
	assert.NoError(t, err, "preview-only document should embed")

	_, err = svc.EmbedDocument(context.Background(), &source.Document{ID: "doc-empty"})
	assert.Error(t, err, "textless document should not embed")
}

func TestEmbedDocumentEmptyVector(t *testing.T) {
	for _, stub := range []*stubEmbedder{
		{vectors: nil},
		{vectors: [][]float64{{}}},
	} {
		svc := NewService(stub)
		_, err := svc.EmbedDocument(context.Background(), &source.Document{ID: "doc-1", Content: "text"})
		assert.ErrorIs(t, err, ErrEmptyEmbedding)
	}
}

func TestEmbedDocumentBackendError(t *testing.T) {
	svc := NewService(&stubEmbedder{err: errors.New("connection refused")})
	_, err := svc.EmbedDocument(context.Background(), &source.Document{ID: "doc-1", Content: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doc-1")
}

func TestNewEmbedderConfigErrors(t *testing.T) {
	_, err := NewEmbedder(context.Background(), Config{Provider: "carrier-pigeon"})
	assert.Error(t, err, "unknown provider must be rejected")

	_, err = NewEmbedder(context.Background(), Config{Provider: ProviderOpenAI})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
