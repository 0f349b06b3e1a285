package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
)

// Recipe documents are indexed as JSON; the index returns these paths.
const (
	fieldTitle = "$.title"
	fieldLink  = "$.link"
	fieldScore = "vector_score"
)

// Placeholders for documents missing a field, matching what callers
// have come to expect on the wire.
const (
	noTitle = "No title available"
	noLink  = "No link available"
)

type redisSearchRepository struct {
	client *redis.Client
	index  string
}

// NewRedisSearchRepository creates a search repository over a
// RediSearch vector index.
func NewRedisSearchRepository(client *redis.Client, index string) SearchRepository {
	return &redisSearchRepository{
		client: client,
		index:  index,
	}
}

func (r *redisSearchRepository) Search(ctx context.Context, vector []float32, k int) ([]domain.Recipe, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}

	// KNN over the whole index, ranked ascending by distance. The
	// index stores float16 vectors, so the query blob must match.
	query := fmt.Sprintf("(*)=>[KNN %d @vector $query_vector AS %s]", k, fieldScore)

	res, err := r.client.FTSearchWithArgs(ctx, r.index, query, &redis.FTSearchOptions{
		Return: []redis.FTSearchReturn{
			{FieldName: fieldScore},
			{FieldName: fieldTitle},
			{FieldName: fieldLink},
		},
		SortBy: []redis.FTSearchSortBy{
			{FieldName: fieldScore, Asc: true},
		},
		LimitOffset:    0,
		Limit:          k,
		Params:         map[string]interface{}{"query_vector": float16LEBytes(vector)},
		DialectVersion: 2,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	return docsToRecipes(res.Docs), nil
}

func docsToRecipes(docs []redis.Document) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(docs))
	for _, doc := range docs {
		title, ok := doc.Fields[fieldTitle]
		if !ok || title == "" {
			title = noTitle
		}
		link, ok := doc.Fields[fieldLink]
		if !ok || link == "" {
			link = noLink
		}
		recipes = append(recipes, domain.Recipe{
			Title: title,
			Link:  link,
		})
	}
	return recipes
}
