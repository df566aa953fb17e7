package http

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/shopsage/backend/internal/domain"
	"github.com/shopsage/backend/internal/usecase"
)

// View limits: the card view shows the top 15 matches, the detailed view the
// top 10.
const (
	cardViewLimit      = 15
	detailedViewLimit  = 10
	cardViewFeatureCap = 3
	maxScoreForDisplay = 20
)

// numericValueRegex strips everything but digits and the decimal point from a
// display price.
var numericValueRegex = regexp.MustCompile(`[^\d.]`)

// sessionResponse is the rendered state of a session.
type sessionResponse struct {
	SessionID       string `json:"sessionId"`
	UserName        string `json:"userName,omitempty"`
	Greeting        string `json:"greeting"`
	BaseProduct     string `json:"baseProduct,omitempty"`
	SearchPerformed bool   `json:"searchPerformed"`
}

func newSessionResponse(session *usecase.Session) sessionResponse {
	return sessionResponse{
		SessionID:       session.ID,
		UserName:        session.UserName,
		Greeting:        usecase.Greeting(time.Now()),
		BaseProduct:     session.BaseProduct,
		SearchPerformed: session.SearchPerformed,
	}
}

// listingView is one listing rendered for display, with the derived match and
// discount percentages precomputed.
type listingView struct {
	Title           string   `json:"title"`
	Source          string   `json:"source"`
	Price           string   `json:"price"`
	OldPrice        string   `json:"oldPrice,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	ReviewCount     int      `json:"reviewCount,omitempty"`
	ThumbnailURL    string   `json:"thumbnailUrl,omitempty"`
	Link            string   `json:"link,omitempty"`
	Features        []string `json:"features,omitempty"`
	MatchScore      int      `json:"matchScore"`
	MatchPercent    int      `json:"matchPercent"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
}

// searchResponse is the rendered outcome of a search.
type searchResponse struct {
	SessionID    string        `json:"sessionId"`
	Query        string        `json:"query"`
	Narrative    string        `json:"narrative,omitempty"`
	Notices      []string      `json:"notices,omitempty"`
	TotalMatches int           `json:"totalMatches"`
	CardView     []listingView `json:"cardView"`
	DetailedView []listingView `json:"detailedView"`
	ShoppingTips []string      `json:"shoppingTips"`
	SearchedAt   time.Time     `json:"searchedAt"`
}

func newSearchResponse(session *usecase.Session, result *domain.SearchResult) searchResponse {
	return searchResponse{
		SessionID:    session.ID,
		Query:        result.Query,
		Narrative:    result.Narrative,
		Notices:      result.Notices,
		TotalMatches: len(result.Listings),
		CardView:     buildListingViews(result.Listings, cardViewLimit, cardViewFeatureCap),
		DetailedView: buildListingViews(result.Listings, detailedViewLimit, 0),
		ShoppingTips: shoppingTips,
		SearchedAt:   result.SearchedAt,
	}
}

// buildListingViews renders up to limit listings. featureCap > 0 truncates
// the feature list for the compact card view.
func buildListingViews(listings []domain.Listing, limit, featureCap int) []listingView {
	views := make([]listingView, 0, limit)
	for i, listing := range listings {
		if i >= limit {
			break
		}

		features := listing.Features
		if featureCap > 0 && len(features) > featureCap {
			features = features[:featureCap]
		}

		views = append(views, listingView{
			Title:           listing.Title,
			Source:          listing.Source,
			Price:           listing.Price,
			OldPrice:        listing.OldPrice,
			Rating:          listing.Rating,
			ReviewCount:     listing.ReviewCount,
			ThumbnailURL:    listing.ThumbnailURL,
			Link:            listing.Link,
			Features:        features,
			MatchScore:      listing.MatchScore,
			MatchPercent:    matchPercent(listing.MatchScore),
			DiscountPercent: discountPercent(listing.Price, listing.OldPrice),
		})
	}
	return views
}

// matchPercent derives the display percentage from a raw score, clamped to
// the 0-100 range.
func matchPercent(score int) int {
	percent := score * 100 / maxScoreForDisplay
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// discountPercent computes the discount from price vs oldPrice when both
// parse as numeric and the old price is higher. Parse failures simply omit
// the field.
func discountPercent(price, oldPrice string) *int {
	if oldPrice == "" {
		return nil
	}

	current, ok := parsePriceValue(price)
	if !ok {
		return nil
	}
	old, ok := parsePriceValue(oldPrice)
	if !ok || old <= current {
		return nil
	}

	discount := int(math.Round((old - current) / old * 100))
	return &discount
}

func parsePriceValue(price string) (float64, bool) {
	cleaned := numericValueRegex.ReplaceAllString(price, "")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// shoppingTips is a static Indian-market tips block returned with results.
var shoppingTips = []string{
	"Check for Bank Offers: Many Indian e-commerce sites offer special discounts with specific bank cards",
	"Compare across sellers: Prices often vary between Amazon, Flipkart, Croma, and Reliance Digital",
	"Look for exchange offers: Many retailers offer discounts for exchanging old devices",
	"GST is included: All prices shown include GST (Goods and Services Tax)",
}
