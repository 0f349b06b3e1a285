package repository

import (
	"context"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
)

// SearchRepository runs a K-nearest-neighbor query against the vector
// index. Results come back ranked best-first (ascending distance) and
// capped at k.
type SearchRepository interface {
	Search(ctx context.Context, vector []float32, k int) ([]domain.Recipe, error)
}
