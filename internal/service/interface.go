package service

import (
	"context"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
)

// SearchService defines the search and click-tracking business logic.
type SearchService interface {
	// Search returns one page of ranked results for a query. The full
	// top-K result set is fetched (or served from cache) and the page
	// is sliced from it.
	Search(ctx context.Context, query string, page, pageSize int) (*domain.SearchPage, error)

	// RecordClick records a click on a result link for a query.
	RecordClick(ctx context.Context, query, link string) error
}
