package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopsage/backend/internal/domain"
)

// priceRangeRegex matches phrases like "between ₹1,50,000 and ₹2,00,000",
// "90000 to 150000" or "₹50,000-₹1,00,000". Only the first occurrence in the
// text is considered.
var priceRangeRegex = regexp.MustCompile(`(?i)(?:between\s+)?(?:₹)?(\d+[,\d]*(?:\.\d+)?)\s*(?:to|-|and)\s*(?:₹)?(\d+[,\d]*(?:\.\d+)?)`)

// PreferenceExtractor parses free-text shopper preferences into a PreferenceSet.
type PreferenceExtractor struct {
	enableDebugLogging bool
}

// NewPreferenceExtractor creates a new preference extractor
func NewPreferenceExtractor(enableDebugLogging bool) *PreferenceExtractor {
	return &PreferenceExtractor{
		enableDebugLogging: enableDebugLogging,
	}
}

// Extract parses rawText into a PreferenceSet. Absence of a price range or
// of attribute markers is a valid unset state, never an error.
func (e *PreferenceExtractor) Extract(rawText string) domain.PreferenceSet {
	prefs := domain.PreferenceSet{RawText: rawText}

	prefs.MinPrice, prefs.MaxPrice = extractPriceRange(rawText)
	prefs.AttributeTokens = extractAttributeTokens(rawText)

	if e.enableDebugLogging {
		log.Printf("[EXTRACT] Input: %q | Price: %v-%v | Tokens: %v",
			rawText, prefs.MinPrice, prefs.MaxPrice, prefs.AttributeTokens)
	}

	return prefs
}

// extractPriceRange pulls the first numeric pair separated by to/and/hyphen
// out of the text. Grouping commas are stripped before parsing. Both bounds
// are nil when no phrase matches.
func extractPriceRange(text string) (*float64, *float64) {
	match := priceRangeRegex.FindStringSubmatch(text)
	if match == nil {
		return nil, nil
	}

	minVal, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return nil, nil
	}
	maxVal, err := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", ""), 64)
	if err != nil {
		return nil, nil
	}

	// Keep the min <= max invariant even when the phrase lists the bounds
	// in reverse.
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}

	return &minVal, &maxVal
}

// extractAttributeTokens runs every vocabulary rule against the text. Rules
// are independent: a single text can trigger many tokens, and ambiguous
// numeric markers are recorded once per category that claims them.
func extractAttributeTokens(text string) []string {
	textLower := strings.ToLower(text)

	var tokens []string
	for _, rule := range attributeRules {
		if matchesAny(textLower, rule.PrefPatterns) {
			tokens = append(tokens, rule.Token)
		}
	}

	return tokens
}
