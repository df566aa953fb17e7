package domain

import "time"

// PreferenceSet is the parsed form of a shopper's free-text preferences.
// It is built once per search and not mutated afterwards.
type PreferenceSet struct {
	MinPrice        *float64 `json:"minPrice,omitempty"`
	MaxPrice        *float64 `json:"maxPrice,omitempty"`
	AttributeTokens []string `json:"attributeTokens,omitempty"`
	RawText         string   `json:"rawText"`
}

// HasPriceRange reports whether both price bounds were extracted.
func (p *PreferenceSet) HasPriceRange() bool {
	return p.MinPrice != nil && p.MaxPrice != nil
}

// HasToken reports whether the given attribute token was detected.
func (p *PreferenceSet) HasToken(token string) bool {
	for _, t := range p.AttributeTokens {
		if t == token {
			return true
		}
	}
	return false
}

// Listing is one candidate product returned by the shopping-search API.
// MatchScore starts at zero and is assigned only by the ranking service.
type Listing struct {
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	Price        string   `json:"price"`
	OldPrice     string   `json:"oldPrice,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	ReviewCount  int      `json:"reviewCount,omitempty"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	Link         string   `json:"link,omitempty"`
	Features     []string `json:"features,omitempty"`
	MatchScore   int      `json:"matchScore"`
}

// SearchRequest carries one shopping search submitted by a user.
type SearchRequest struct {
	BaseProduct    string `json:"baseProduct" binding:"required"`
	PreferenceText string `json:"preferenceText,omitempty"`
	UserName       string `json:"userName,omitempty"`
}

// SearchResult is the explicit outcome of one search flow. External-call
// failures degrade to Notices; an empty Listings slice means "no matches"
// whether the API returned nothing or the call failed.
type SearchResult struct {
	Query       string        `json:"query"`
	Preferences PreferenceSet `json:"preferences"`
	Listings    []Listing     `json:"listings"`
	Narrative   string        `json:"narrative"`
	Notices     []string      `json:"notices,omitempty"`
	SearchedAt  time.Time     `json:"searchedAt"`
}

// ShoppingItem is one raw listing record from the shopping-search API.
type ShoppingItem struct {
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	Price      string   `json:"price"`
	OldPrice   string   `json:"old_price,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Reviews    int      `json:"reviews,omitempty"`
	Thumbnail  string   `json:"thumbnail,omitempty"`
	Link       string   `json:"link,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// ShoppingSearchResponse is the response envelope from the shopping-search API.
type ShoppingSearchResponse struct {
	ShoppingResults []ShoppingItem `json:"shopping_results"`
	Error           string         `json:"error,omitempty"`
}
