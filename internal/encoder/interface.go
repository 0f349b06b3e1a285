package encoder

import "context"

// Encoder maps query text to a fixed-dimensionality embedding vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the dimensionality of vectors produced by
	// this encoder. Must match the vector index schema.
	Dimensions() int
}
