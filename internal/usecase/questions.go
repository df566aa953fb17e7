package usecase

import (
	"fmt"
	"strings"
	"time"
)

// QuestionAnswer pairs a follow-up question with the shopper's answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FollowUpQuestions returns the preference questions for a product category.
// The lists are tuned for the Indian market.
func FollowUpQuestions(baseProduct string) []string {
	productLower := strings.ToLower(baseProduct)

	switch {
	case strings.Contains(productLower, "macbook"):
		return []string{
			"Do you prefer MacBook Pro or MacBook Air?",
			"What screen size are you looking for? (13-inch, 14-inch, 16-inch)",
			"How much storage do you need? (256GB, 512GB, 1TB)",
			"What's your budget range in rupees? (e.g., ₹90,000-₹1,50,000)",
			"Any specific RAM requirements? (8GB, 16GB, 32GB)",
			"Do you prefer any particular color? (Silver, Space Grey, Gold)",
			"Are you looking for new or refurbished?",
			"Do you have any preferred seller? (Amazon, Flipkart, Apple Store, Croma, etc.)",
		}
	case strings.Contains(productLower, "iphone"):
		return []string{
			"Which iPhone model are you interested in? (e.g., 14, 15, Pro, Pro Max)",
			"What storage capacity do you need? (128GB, 256GB, 512GB, 1TB)",
			"What's your budget range in rupees?",
			"Do you have a color preference?",
			"Are you looking for new or refurbished?",
			"Do you have any preferred seller? (Amazon, Flipkart, Apple Store, Croma, etc.)",
			"Are you interested in exchange offers?",
		}
	default:
		return []string{
			"What's your budget range in rupees?",
			"Any specific features you're looking for?",
			"Do you have a brand preference?",
			"Are you looking for new or refurbished items?",
			"Do you have any preferred seller? (Amazon, Flipkart, etc.)",
			"Is warranty an important factor for you?",
		}
	}
}

// JoinPreferences folds answered questions into the single free-text blob
// the extractor and ranking engine consume. Unanswered questions are skipped.
func JoinPreferences(answers []QuestionAnswer, userName string) string {
	var b strings.Builder
	for _, qa := range answers {
		if qa.Answer == "" {
			continue
		}
		b.WriteString(qa.Question)
		b.WriteString(": ")
		b.WriteString(qa.Answer)
		b.WriteString(". ")
	}

	if userName != "" {
		b.WriteString(fmt.Sprintf(" For user: %s.", userName))
	}

	return b.String()
}

// Greeting returns a time-of-day greeting for the session welcome message.
func Greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 4 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 22:
		return "Good evening"
	default:
		return "Hello"
	}
}
