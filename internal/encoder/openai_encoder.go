package encoder

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/carlosalvarezg/recipe-search/internal/config"
)

// OpenAIEncoder calls an OpenAI-compatible embeddings endpoint (the
// sentence-transformers model is served behind one).
type OpenAIEncoder struct {
	embedder   embeddings.Embedder
	dimensions int
}

// NewOpenAIEncoder creates an encoder from config. The token defaults
// to "none" for local endpoints without authentication.
func NewOpenAIEncoder(cfg config.EncoderConfig) (*OpenAIEncoder, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.Token),
		openai.WithEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return &OpenAIEncoder{
		embedder:   embedder,
		dimensions: cfg.Dimensions,
	}, nil
}

func (e *OpenAIEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("encoder returned no vector")
	}

	vec := vectors[0]
	if len(vec) != e.dimensions {
		return nil, fmt.Errorf("encoder returned %d dimensions, want %d", len(vec), e.dimensions)
	}

	return vec, nil
}

func (e *OpenAIEncoder) Dimensions() int {
	return e.dimensions
}
