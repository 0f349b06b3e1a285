package encoder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosalvarezg/recipe-search/internal/config"
)

type fakeEmbedder struct {
	vectors [][]float32
	err     error
}

func (e *fakeEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.vectors, nil
}

func (e *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.vectors[0], nil
}

func TestOpenAIEncoder_Encode(t *testing.T) {
	enc := &OpenAIEncoder{
		embedder:   &fakeEmbedder{vectors: [][]float32{{0.1, 0.2, 0.3}}},
		dimensions: 3,
	}

	vec, err := enc.Encode(context.Background(), "pasta")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, 3, enc.Dimensions())
}

func TestOpenAIEncoder_DimensionMismatch(t *testing.T) {
	enc := &OpenAIEncoder{
		embedder:   &fakeEmbedder{vectors: [][]float32{{0.1, 0.2}}},
		dimensions: 3,
	}

	_, err := enc.Encode(context.Background(), "pasta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestOpenAIEncoder_EmptyResult(t *testing.T) {
	enc := &OpenAIEncoder{
		embedder:   &fakeEmbedder{vectors: nil},
		dimensions: 3,
	}

	_, err := enc.Encode(context.Background(), "pasta")
	assert.Error(t, err)
}

func TestOpenAIEncoder_UpstreamError(t *testing.T) {
	enc := &OpenAIEncoder{
		embedder:   &fakeEmbedder{err: errors.New("encoder unavailable")},
		dimensions: 3,
	}

	_, err := enc.Encode(context.Background(), "pasta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder unavailable")
}

func TestNewOpenAIEncoder(t *testing.T) {
	enc, err := NewOpenAIEncoder(config.EncoderConfig{
		BaseURL:    "http://localhost:8000/v1",
		Token:      "none",
		Model:      "all-mpnet-base-v2",
		Dimensions: 768,
	})
	require.NoError(t, err)
	assert.Equal(t, 768, enc.Dimensions())
}
