package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/carlosalvarezg/recipe-search/internal/cache"
	"github.com/carlosalvarezg/recipe-search/internal/clicks"
	"github.com/carlosalvarezg/recipe-search/internal/domain"
	"github.com/carlosalvarezg/recipe-search/internal/encoder"
	"github.com/carlosalvarezg/recipe-search/internal/repository"
	"github.com/carlosalvarezg/recipe-search/pkg/log"
)

var (
	// ErrInvalidPage rejects page numbers below 1 before any
	// dependency is touched.
	ErrInvalidPage = errors.New("page number must be greater than 0")
	// ErrInvalidPageSize rejects non-positive page sizes.
	ErrInvalidPageSize = errors.New("page size must be greater than 0")
)

type searchServiceImpl struct {
	encoder   encoder.Encoder
	repo      repository.SearchRepository
	cache     cache.QueryCache
	tracker   clicks.Tracker
	topK      int
	cacheTTL  time.Duration
	opTimeout time.Duration
	sf        singleflight.Group
}

// NewSearchService creates the search service. topK caps the superset
// fetched from the backend on a cache miss; opTimeout bounds each
// external call on top of the request context.
func NewSearchService(
	enc encoder.Encoder,
	repo repository.SearchRepository,
	queryCache cache.QueryCache,
	tracker clicks.Tracker,
	topK int,
	cacheTTL time.Duration,
	opTimeout time.Duration,
) SearchService {
	return &searchServiceImpl{
		encoder:   enc,
		repo:      repo,
		cache:     queryCache,
		tracker:   tracker,
		topK:      topK,
		cacheTTL:  cacheTTL,
		opTimeout: opTimeout,
	}
}

func (s *searchServiceImpl) Search(ctx context.Context, query string, page, pageSize int) (*domain.SearchPage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	results, err := s.fetchAll(ctx, query)
	if err != nil {
		return nil, err
	}

	items := paginate(results, page, pageSize)

	return &domain.SearchPage{
		Query:   query,
		Page:    page,
		Results: items,
		HasMore: len(items) == pageSize,
	}, nil
}

// fetchAll returns the full ranked result set for a query, from cache
// when present. Concurrent misses for the same query text collapse
// into one encode+search via singleflight.
func (s *searchServiceImpl) fetchAll(ctx context.Context, query string) ([]domain.Recipe, error) {
	v, err, _ := s.sf.Do(query, func() (interface{}, error) {
		cached, err := s.cacheGet(ctx, query)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// Read-path failures (unreachable store, corrupted
			// payload) fail the request rather than masking a bad
			// cache behind backend traffic.
			return nil, err
		}

		vector, err := s.encode(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query: %w", err)
		}

		results, err := s.search(ctx, vector)
		if err != nil {
			return nil, err
		}

		// Store the full set before returning so pagination always
		// slices a complete top-K snapshot. A failed write is not
		// fatal; the search result is still correct, just uncached.
		if err := s.cachePut(ctx, query, results); err != nil {
			l := log.Ctx(ctx)
			l.Warn().Err(err).Str(log.FieldQuery, query).Msg("cache set error")
		}

		return results, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Recipe), nil
}

func (s *searchServiceImpl) RecordClick(ctx context.Context, query, link string) error {
	cctx, cancel := s.withOpTimeout(ctx)
	defer cancel()

	return s.tracker.Record(cctx, query, link)
}

func (s *searchServiceImpl) cacheGet(ctx context.Context, query string) ([]domain.Recipe, error) {
	cctx, cancel := s.withOpTimeout(ctx)
	defer cancel()

	return s.cache.Get(cctx, query)
}

func (s *searchServiceImpl) cachePut(ctx context.Context, query string, results []domain.Recipe) error {
	cctx, cancel := s.withOpTimeout(ctx)
	defer cancel()

	return s.cache.Put(cctx, query, results, s.cacheTTL)
}

func (s *searchServiceImpl) encode(ctx context.Context, query string) ([]float32, error) {
	cctx, cancel := s.withOpTimeout(ctx)
	defer cancel()

	return s.encoder.Encode(cctx, query)
}

func (s *searchServiceImpl) search(ctx context.Context, vector []float32) ([]domain.Recipe, error) {
	cctx, cancel := s.withOpTimeout(ctx)
	defer cancel()

	return s.repo.Search(cctx, vector, s.topK)
}

func (s *searchServiceImpl) withOpTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// paginate slices one page out of the ranked superset. Out-of-range
// pages are a normal end-of-results condition and yield an empty page.
func paginate(results []domain.Recipe, page, pageSize int) []domain.Recipe {
	// Any page past the last full page is empty. Checked by division
	// so that arbitrarily large page numbers from the query string
	// cannot overflow the start-index multiplication below.
	if page > len(results)/pageSize+1 {
		return []domain.Recipe{}
	}

	start := (page - 1) * pageSize
	if start >= len(results) {
		return []domain.Recipe{}
	}

	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}

	return results[start:end]
}
