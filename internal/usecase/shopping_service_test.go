package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopsage/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled = true
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockSearchClient is a mock implementation of domain.ShoppingSearchClient
type MockSearchClient struct {
	response  *domain.ShoppingSearchResponse
	err       error
	callCount int
	lastQuery string
	lastMin   *float64
	lastMax   *float64
}

func (m *MockSearchClient) SearchProducts(ctx context.Context, query string, minPrice, maxPrice *float64) (*domain.ShoppingSearchResponse, error) {
	m.callCount++
	m.lastQuery = query
	m.lastMin = minPrice
	m.lastMax = maxPrice
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

// MockCompletionClient is a mock implementation of domain.CompletionClient
type MockCompletionClient struct {
	completion string
	err        error
	callCount  int
	lastUser   string
}

func (m *MockCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++
	m.lastUser = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.completion, nil
}

func newTestService(search *MockSearchClient, completion *MockCompletionClient) (*ShoppingService, *MockCacheRepository) {
	cache := NewMockCacheRepository()
	svc := NewShoppingService(cache, search, completion, ShoppingServiceConfig{})
	return svc, cache
}

func TestPerformSearch_InvalidRequest(t *testing.T) {
	svc, _ := newTestService(&MockSearchClient{}, &MockCompletionClient{})
	ctx := context.Background()

	t.Run("nil request", func(t *testing.T) {
		_, err := svc.PerformSearch(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("empty base product", func(t *testing.T) {
		_, err := svc.PerformSearch(ctx, &domain.SearchRequest{BaseProduct: "   "})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestPerformSearch_FullFlow(t *testing.T) {
	search := &MockSearchClient{
		response: &domain.ShoppingSearchResponse{
			ShoppingResults: []domain.ShoppingItem{
				{Title: "MacBook Pro 16-inch 512GB Silver", Source: "Amazon", Price: "₹1,89,900"},
				{Title: "Generic Laptop", Source: "Unknown Shop", Price: "₹45,000"},
			},
		},
	}
	completion := &MockCompletionClient{completion: "The MacBook Pro is the best value."}
	svc, _ := newTestService(search, completion)

	result, err := svc.PerformSearch(context.Background(), &domain.SearchRequest{
		BaseProduct:    "MacBook M3",
		PreferenceText: "Pro model, 16-inch screen, between ₹1,50,000 and ₹2,00,000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Query != "MacBook M3 Pro 16-inch" {
		t.Errorf("Query = %q, want %q", result.Query, "MacBook M3 Pro 16-inch")
	}

	if search.lastMin == nil || *search.lastMin != 150000 {
		t.Errorf("min price passed to client = %v, want 150000", search.lastMin)
	}
	if search.lastMax == nil || *search.lastMax != 200000 {
		t.Errorf("max price passed to client = %v, want 200000", search.lastMax)
	}

	if len(result.Listings) != 2 {
		t.Fatalf("len(Listings) = %d, want 2", len(result.Listings))
	}
	if result.Listings[0].Title != "MacBook Pro 16-inch 512GB Silver" {
		t.Errorf("best match = %q, want the MacBook first", result.Listings[0].Title)
	}
	if result.Listings[0].MatchScore <= result.Listings[1].MatchScore {
		t.Errorf("scores not descending: %d then %d", result.Listings[0].MatchScore, result.Listings[1].MatchScore)
	}

	if result.Narrative != "The MacBook Pro is the best value." {
		t.Errorf("Narrative = %q", result.Narrative)
	}
	if len(result.Notices) != 0 {
		t.Errorf("Notices = %v, want none", result.Notices)
	}

	if !strings.Contains(completion.lastUser, "MacBook Pro 16-inch 512GB Silver") {
		t.Error("summary prompt missing the top listing")
	}
}

func TestPerformSearch_FetchFailureDegrades(t *testing.T) {
	search := &MockSearchClient{err: domain.ErrShoppingAPIFailure}
	completion := &MockCompletionClient{completion: "should not be called"}
	svc, _ := newTestService(search, completion)

	result, err := svc.PerformSearch(context.Background(), &domain.SearchRequest{BaseProduct: "MacBook M3"})
	if err != nil {
		t.Fatalf("fetch failure must not surface as an error, got: %v", err)
	}

	if len(result.Listings) != 0 {
		t.Errorf("Listings = %v, want empty", result.Listings)
	}
	if len(result.Notices) != 1 {
		t.Fatalf("Notices = %v, want exactly one", result.Notices)
	}
	if !strings.Contains(result.Notices[0], "Error fetching shopping results") {
		t.Errorf("notice = %q, want a fetch error notice", result.Notices[0])
	}
	if completion.callCount != 0 {
		t.Error("summarizer must not run after a fetch failure")
	}
}

func TestPerformSearch_SummaryFailureFallsBack(t *testing.T) {
	search := &MockSearchClient{
		response: &domain.ShoppingSearchResponse{
			ShoppingResults: []domain.ShoppingItem{
				{Title: "MacBook Pro", Source: "Amazon", Price: "₹1,89,900"},
			},
		},
	}
	completion := &MockCompletionClient{err: errors.New("api unreachable")}
	svc, _ := newTestService(search, completion)

	result, err := svc.PerformSearch(context.Background(), &domain.SearchRequest{
		BaseProduct:    "MacBook M3",
		PreferenceText: "pro",
	})
	if err != nil {
		t.Fatalf("summary failure must not surface as an error, got: %v", err)
	}

	if result.Narrative != FallbackSummary {
		t.Errorf("Narrative = %q, want fallback %q", result.Narrative, FallbackSummary)
	}
	if len(result.Notices) != 1 || !strings.Contains(result.Notices[0], "Error generating AI summary") {
		t.Errorf("Notices = %v, want a summary error notice", result.Notices)
	}
	if len(result.Listings) != 1 {
		t.Errorf("listings must survive a summary failure, got %d", len(result.Listings))
	}
}

func TestPerformSearch_EmptyResultsSkipSummary(t *testing.T) {
	search := &MockSearchClient{response: &domain.ShoppingSearchResponse{}}
	completion := &MockCompletionClient{completion: "unused"}
	svc, _ := newTestService(search, completion)

	result, err := svc.PerformSearch(context.Background(), &domain.SearchRequest{BaseProduct: "MacBook M3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Listings) != 0 {
		t.Errorf("Listings = %v, want empty", result.Listings)
	}
	if completion.callCount != 0 {
		t.Error("summarizer must not run with zero listings")
	}
	if len(result.Notices) != 0 {
		t.Errorf("an empty result set is not an error, got notices %v", result.Notices)
	}
}

func TestPerformSearch_UsesCache(t *testing.T) {
	search := &MockSearchClient{
		response: &domain.ShoppingSearchResponse{
			ShoppingResults: []domain.ShoppingItem{
				{Title: "MacBook Pro", Source: "Amazon", Price: "₹1,89,900"},
			},
		},
	}
	completion := &MockCompletionClient{completion: "summary"}
	svc, cache := newTestService(search, completion)

	request := &domain.SearchRequest{BaseProduct: "MacBook M3", PreferenceText: "pro"}

	if _, err := svc.PerformSearch(context.Background(), request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.setCalled {
		t.Error("first search should populate the cache")
	}

	if _, err := svc.PerformSearch(context.Background(), request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if search.callCount != 1 {
		t.Errorf("client called %d times, want 1 (second search from cache)", search.callCount)
	}
}
