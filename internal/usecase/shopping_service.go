package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopsage/backend/internal/domain"
	"github.com/shopsage/backend/internal/infrastructure/serpapi"
)

// Package-level compiled regex patterns for cache-key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ShoppingServiceConfig holds configuration for the shopping service
type ShoppingServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ShoppingService orchestrates one search flow: extract preferences, build
// the query, fetch listings (through a short-lived cache), rank them, and
// generate the narrative. Every external failure degrades to a notice on the
// result instead of aborting the flow.
type ShoppingService struct {
	cache        domain.CacheRepository
	searchClient domain.ShoppingSearchClient
	extractor    *PreferenceExtractor
	ranker       *RankingService
	summarizer   *SummaryService
	cacheTTL     time.Duration
}

// NewShoppingService creates a new shopping service with dependencies
func NewShoppingService(
	cache domain.CacheRepository,
	searchClient domain.ShoppingSearchClient,
	completionClient domain.CompletionClient,
	config ShoppingServiceConfig,
) *ShoppingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &ShoppingService{
		cache:        cache,
		searchClient: searchClient,
		extractor:    NewPreferenceExtractor(config.EnableDebugLogging),
		ranker:       NewRankingService(config.EnableDebugLogging),
		summarizer:   NewSummaryService(completionClient, config.EnableDebugLogging),
		cacheTTL:     cacheTTL,
	}
}

// PerformSearch runs the full sequential flow for one request. The returned
// result always carries a (possibly empty) listing slice; fetch and summary
// failures are reported through Notices.
func (s *ShoppingService) PerformSearch(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil || strings.TrimSpace(request.BaseProduct) == "" {
		return nil, domain.ErrInvalidRequest
	}

	prefs := s.extractor.Extract(request.PreferenceText)
	query := BuildQuery(request.BaseProduct, prefs)

	result := &domain.SearchResult{
		Query:       query,
		Preferences: prefs,
		Listings:    []domain.Listing{},
		SearchedAt:  time.Now(),
	}

	response, err := s.fetchResults(ctx, query, prefs)
	if err != nil {
		// An empty result set and a notice - the caller must not tell a
		// transport failure apart from "no matches".
		result.Notices = append(result.Notices, fmt.Sprintf("Error fetching shopping results: %v", err))
		return result, nil
	}

	listings := serpapi.MapListings(response)
	result.Listings = s.ranker.RankListings(listings, prefs.RawText)

	if len(result.Listings) == 0 {
		return result, nil
	}

	narrative, err := s.summarizer.Summarize(ctx, result.Listings, prefs.RawText)
	if err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("Error generating AI summary: %v", err))
		result.Narrative = FallbackSummary
		return result, nil
	}
	result.Narrative = narrative

	return result, nil
}

// fetchResults serves the search response from cache when possible, calling
// the shopping-search API on a miss. Cache write failures are ignored.
func (s *ShoppingService) fetchResults(ctx context.Context, query string, prefs domain.PreferenceSet) (*domain.ShoppingSearchResponse, error) {
	cacheKey := searchCacheKey(query, prefs)

	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if response, ok := value.(*domain.ShoppingSearchResponse); ok {
			return response, nil
		}
	}

	response, err := s.searchClient.SearchProducts(ctx, query, prefs.MinPrice, prefs.MaxPrice)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, response, s.cacheTTL)

	return response, nil
}

// searchCacheKey builds a normalized cache key from the query and bounds.
// Format: "search:{normalized_query}:{min}-{max}"
func searchCacheKey(query string, prefs domain.PreferenceSet) string {
	normalized := strings.ToLower(query)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	bounds := ""
	if prefs.HasPriceRange() {
		bounds = fmt.Sprintf("%.0f-%.0f", *prefs.MinPrice, *prefs.MaxPrice)
	}

	return fmt.Sprintf("search:%s:%s", normalized, bounds)
}
