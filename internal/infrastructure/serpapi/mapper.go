package serpapi

import "github.com/shopsage/backend/internal/domain"

// MapListings converts raw shopping results into domain listings, normalizing
// every price and old price to rupee format. MatchScore is left at zero for
// the ranking service to assign.
func MapListings(response *domain.ShoppingSearchResponse) []domain.Listing {
	if response == nil {
		return nil
	}

	listings := make([]domain.Listing, 0, len(response.ShoppingResults))
	for _, item := range response.ShoppingResults {
		listing := domain.Listing{
			Title:        item.Title,
			Source:       item.Source,
			Price:        EnsureRupeeFormat(item.Price),
			Rating:       item.Rating,
			ReviewCount:  item.Reviews,
			ThumbnailURL: item.Thumbnail,
			Link:         item.Link,
			Features:     item.Extensions,
		}
		if item.OldPrice != "" {
			listing.OldPrice = EnsureRupeeFormat(item.OldPrice)
		}
		listings = append(listings, listing)
	}

	return listings
}
