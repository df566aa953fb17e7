package serpapi

import (
	"regexp"
	"strconv"
	"strings"
)

// usdToINRRate is a fixed approximation used when the API leaks a USD price
// into an INR-pinned search. Not authoritative.
const usdToINRRate = 83.5

// currencyValueRegex extracts the numeric magnitude from a price string
var currencyValueRegex = regexp.MustCompile(`[\d,]+\.?\d*`)

// EnsureRupeeFormat normalizes a display price to rupees: a missing currency
// glyph gets ₹ prepended, and a dollar amount is converted at the fixed rate
// and re-rendered with two decimals and grouping separators. Applying it to
// an already-rupee-formatted value changes nothing.
func EnsureRupeeFormat(price string) string {
	if price == "" || price == "N/A" {
		return "N/A"
	}

	if !strings.HasPrefix(price, "₹") {
		price = "₹" + price
	}

	if strings.Contains(price, "$") {
		if raw := currencyValueRegex.FindString(price); raw != "" {
			if usd, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
				price = "₹" + formatAmount(usd*usdToINRRate)
			}
		}
	}

	return price
}

// formatAmount renders an amount with two decimals and comma grouping in the
// integer part, e.g. 41750 -> "41,750.00".
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	grouped := b.String()
	if negative {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}
