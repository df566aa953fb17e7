package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopsage/backend/internal/domain"
)

// FallbackSummary is returned whenever the language-model call fails.
const FallbackSummary = "Unable to generate summary."

// summaryListingLimit caps how many ranked listings go into the prompt.
const summaryListingLimit = 10

const summarySystemPrompt = "You are a helpful shopping assistant for Indian customers. " +
	"Provide insights specific to the Indian market, including value for money analysis in the Indian context, " +
	"local availability, and popular sellers like Amazon.in, Flipkart, etc. Always mention prices in rupees (₹)."

// SummaryService asks the language-model API for a short free-text
// recommendation over the top ranked listings. It performs no retries and no
// validation of the completion content.
type SummaryService struct {
	client             domain.CompletionClient
	enableDebugLogging bool
}

// NewSummaryService creates a new summary service
func NewSummaryService(client domain.CompletionClient, enableDebugLogging bool) *SummaryService {
	return &SummaryService{
		client:             client,
		enableDebugLogging: enableDebugLogging,
	}
}

// Summarize builds the recommendation prompt from the top listings and the
// raw preference text and returns the trimmed completion. Any transport or
// API error is wrapped in ErrSummaryFailure; the caller degrades to
// FallbackSummary.
func (s *SummaryService) Summarize(ctx context.Context, listings []domain.Listing, preferenceText string) (string, error) {
	prompt := buildSummaryPrompt(listings, preferenceText, time.Now())

	if s.enableDebugLogging {
		log.Printf("[SUMMARY] Prompt length: %d chars for %d listings", len(prompt), len(listings))
	}

	completion, err := s.client.Complete(ctx, summarySystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryFailure, err)
	}

	return strings.TrimSpace(completion), nil
}

// buildSummaryPrompt renders the fixed prompt template: current date, the
// shopper's preference text, and a numbered table of the first ten listings.
func buildSummaryPrompt(listings []domain.Listing, preferenceText string, now time.Time) string {
	var details strings.Builder
	for i, listing := range listings {
		if i >= summaryListingLimit {
			break
		}
		details.WriteString(fmt.Sprintf("%d. Title: %s, Price: %s, Source: %s, Rating: %s, Match Score: %d/20\n",
			i+1, orNA(listing.Title), orNA(listing.Price), orNA(listing.Source),
			ratingOrNA(listing.Rating), listing.MatchScore))
	}

	currentDate := now.Format("02 January, 2006")

	return fmt.Sprintf("Today is %s. An Indian customer has the following preferences: %s\n\n"+
		"Here are some relevant products available in India:\n\n%s\n"+
		"Please provide a personalized summary (2-3 paragraphs) including:\n"+
		"1. The price range in rupees and key features across these products\n"+
		"2. Which products best match the user's preferences considering the Indian market\n"+
		"3. Your top 1-2 recommendations based on value for money in India and feature match\n"+
		"4. Any relevant information about warranties, EMI options, or special offers if applicable",
		currentDate, preferenceText, details.String())
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func ratingOrNA(rating float64) string {
	if rating == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%g", rating)
}
