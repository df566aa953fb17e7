package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/shopsage/backend/internal/domain"
)

// RankingService scores listings against the raw preference text using the
// shared attribute vocabulary. Matching is re-done against listing titles as
// independent substring checks rather than consuming the parsed
// PreferenceSet, so scoring stays consistent with the shopper's exact words.
type RankingService struct {
	enableDebugLogging bool
}

// NewRankingService creates a new ranking service
func NewRankingService(enableDebugLogging bool) *RankingService {
	return &RankingService{
		enableDebugLogging: enableDebugLogging,
	}
}

// RankListings assigns a MatchScore to every listing and returns the slice
// sorted by score descending. The sort is stable: listings with equal scores
// keep their original relative order.
func (r *RankingService) RankListings(listings []domain.Listing, preferenceText string) []domain.Listing {
	prefLower := strings.ToLower(preferenceText)

	ranked := make([]domain.Listing, len(listings))
	copy(ranked, listings)

	for i := range ranked {
		ranked[i].MatchScore = r.scoreListing(&ranked[i], prefLower)
		if r.enableDebugLogging {
			log.Printf("[RANK] %q from %q | Score: %d", ranked[i].Title, ranked[i].Source, ranked[i].MatchScore)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	return ranked
}

// scoreListing applies the additive rubric. Every check runs independently;
// a listing can accumulate points across categories and no upper bound is
// enforced (the display layer clamps its derived percentage).
func (r *RankingService) scoreListing(listing *domain.Listing, prefLower string) int {
	titleLower := strings.ToLower(listing.Title)
	sourceLower := strings.ToLower(listing.Source)

	score := 0

	for _, rule := range attributeRules {
		if matchesAny(prefLower, rule.PrefPatterns) && matchesAny(titleLower, rule.TitlePatterns) {
			score += rule.Points
		}
	}

	for _, seller := range preferredSellers {
		if strings.Contains(sourceLower, seller) {
			score += preferredSellerPoints
			break
		}
	}

	// Penalize refurbished/used listings when the shopper asked for new.
	if strings.Contains(prefLower, "new") && matchesAny(titleLower, usedConditionTerms) {
		score += usedConditionPenalty
	}

	return score
}
