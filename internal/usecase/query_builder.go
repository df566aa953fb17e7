package usecase

import (
	"strings"

	"github.com/shopsage/backend/internal/domain"
)

// BuildQuery combines the base product name with the display suffixes of the
// detected attribute tokens into one whitespace-joined search query. Suffixes
// follow the fixed vocabulary order. Storage and RAM suffixes are mutually
// exclusive (first detected size in priority order wins); every other
// detected token contributes its own suffix. No escaping happens here - the
// fetcher URL-encodes the final query.
func BuildQuery(baseProduct string, prefs domain.PreferenceSet) string {
	parts := []string{baseProduct}

	storageDone := false
	ramDone := false
	for _, rule := range attributeRules {
		if !prefs.HasToken(rule.Token) {
			continue
		}
		switch rule.Category {
		case CategoryStorage:
			if storageDone {
				continue
			}
			storageDone = true
		case CategoryRAM:
			if ramDone {
				continue
			}
			ramDone = true
		}
		parts = append(parts, rule.QuerySuffix)
	}

	return strings.Join(parts, " ")
}
