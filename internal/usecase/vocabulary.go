package usecase

import "strings"

// AttributeCategory groups attribute rules that describe the same product facet.
type AttributeCategory string

const (
	CategoryModel      AttributeCategory = "model"
	CategoryScreenSize AttributeCategory = "screen_size"
	CategoryStorage    AttributeCategory = "storage"
	CategoryRAM        AttributeCategory = "ram"
	CategoryColor      AttributeCategory = "color"
)

// AttributeRule is one entry of the shared attribute vocabulary. The same
// table drives preference extraction, query building, and ranking so the
// three stay in sync.
type AttributeRule struct {
	// Token is the canonical name recorded in a PreferenceSet.
	Token string

	Category AttributeCategory

	// PrefPatterns are lowercase substrings that mark this attribute in
	// free-text preferences. Numeric patterns like "16" are deliberately
	// loose: a "16" can mean screen size or RAM, and each category checks
	// it independently.
	PrefPatterns []string

	// TitlePatterns are lowercase substrings matched against listing titles
	// during ranking.
	TitlePatterns []string

	// QuerySuffix is the display form appended to the search query.
	QuerySuffix string

	// Points is the ranking contribution when the attribute appears in both
	// the preference text and a listing title.
	Points int
}

// attributeRules is the fixed vocabulary, in query-suffix order. Storage and
// RAM rules are mutually exclusive when building a query (first match wins);
// ranking evaluates every rule independently.
var attributeRules = []AttributeRule{
	{Token: "pro", Category: CategoryModel, PrefPatterns: []string{"pro"}, TitlePatterns: []string{"pro"}, QuerySuffix: "Pro", Points: 5},
	{Token: "air", Category: CategoryModel, PrefPatterns: []string{"air"}, TitlePatterns: []string{"air"}, QuerySuffix: "Air", Points: 5},

	{Token: "16-inch", Category: CategoryScreenSize, PrefPatterns: []string{"16"}, TitlePatterns: []string{"16"}, QuerySuffix: "16-inch", Points: 4},
	{Token: "14-inch", Category: CategoryScreenSize, PrefPatterns: []string{"14"}, TitlePatterns: []string{"14"}, QuerySuffix: "14-inch", Points: 4},
	{Token: "13-inch", Category: CategoryScreenSize, PrefPatterns: []string{"13"}, TitlePatterns: []string{"13"}, QuerySuffix: "13-inch", Points: 4},

	{Token: "512gb", Category: CategoryStorage, PrefPatterns: []string{"512"}, TitlePatterns: []string{"512"}, QuerySuffix: "512GB", Points: 3},
	{Token: "1tb", Category: CategoryStorage, PrefPatterns: []string{"1tb", "1 tb"}, TitlePatterns: []string{"1tb", "1 tb"}, QuerySuffix: "1TB", Points: 3},
	{Token: "2tb", Category: CategoryStorage, PrefPatterns: []string{"2tb", "2 tb"}, TitlePatterns: []string{"2tb", "2 tb"}, QuerySuffix: "2TB", Points: 3},

	{Token: "16gb", Category: CategoryRAM, PrefPatterns: []string{"16gb", "16 gb"}, TitlePatterns: []string{"16gb", "16 gb"}, QuerySuffix: "16GB", Points: 2},
	{Token: "32gb", Category: CategoryRAM, PrefPatterns: []string{"32gb", "32 gb"}, TitlePatterns: []string{"32gb", "32 gb"}, QuerySuffix: "32GB", Points: 2},

	{Token: "silver", Category: CategoryColor, PrefPatterns: []string{"silver"}, TitlePatterns: []string{"silver"}, QuerySuffix: "silver", Points: 3},
	{Token: "space grey", Category: CategoryColor, PrefPatterns: []string{"space grey"}, TitlePatterns: []string{"space grey"}, QuerySuffix: "space grey", Points: 3},
	{Token: "space gray", Category: CategoryColor, PrefPatterns: []string{"space gray"}, TitlePatterns: []string{"space gray"}, QuerySuffix: "space gray", Points: 3},
	{Token: "gold", Category: CategoryColor, PrefPatterns: []string{"gold"}, TitlePatterns: []string{"gold"}, QuerySuffix: "gold", Points: 3},
	{Token: "black", Category: CategoryColor, PrefPatterns: []string{"black"}, TitlePatterns: []string{"black"}, QuerySuffix: "black", Points: 3},
	{Token: "white", Category: CategoryColor, PrefPatterns: []string{"white"}, TitlePatterns: []string{"white"}, QuerySuffix: "white", Points: 3},
	{Token: "blue", Category: CategoryColor, PrefPatterns: []string{"blue"}, TitlePatterns: []string{"blue"}, QuerySuffix: "blue", Points: 3},
	{Token: "green", Category: CategoryColor, PrefPatterns: []string{"green"}, TitlePatterns: []string{"green"}, QuerySuffix: "green", Points: 3},
	{Token: "purple", Category: CategoryColor, PrefPatterns: []string{"purple"}, TitlePatterns: []string{"purple"}, QuerySuffix: "purple", Points: 3},
	{Token: "red", Category: CategoryColor, PrefPatterns: []string{"red"}, TitlePatterns: []string{"red"}, QuerySuffix: "red", Points: 3},
}

// preferredSellers are Indian retailers that earn a ranking bonus when they
// appear in a listing's source.
var preferredSellers = []string{
	"amazon", "flipkart", "croma", "vijay sales", "reliance digital", "apple",
}

// usedConditionTerms mark a listing as not-new in its title.
var usedConditionTerms = []string{"refurbished", "used"}

const (
	preferredSellerPoints = 3
	usedConditionPenalty  = -10
)

// matchesAny reports whether any of the patterns is a substring of text.
// Text must already be lower-cased.
func matchesAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
