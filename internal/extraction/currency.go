package extraction

import "regexp"

// currencyPattern pairs a cue pattern with the symbol it implies.
type currencyPattern struct {
	re     *regexp.Regexp
	symbol string
}

// currencyPatterns is checked in priority order: literal symbols first, then
// currency codes, then geographic cues. Receipts rarely carry a
// machine-readable currency code, so country and city names serve as a
// low-confidence proxy; the fixed order resolves ambiguity when multiple
// cues co-occur. The first match wins.
var currencyPatterns = []currencyPattern{
	{regexp.MustCompile(`€`), "€"},
	{regexp.MustCompile(`£`), "£"},
	{regexp.MustCompile(`¥`), "¥"},
	{regexp.MustCompile(`\$`), "$"},
	{regexp.MustCompile(`(?i)\bPKR\b`), "PKR"},
	{regexp.MustCompile(`(?i)\bRs\.?\b`), "Rs"},
	{regexp.MustCompile(`(?i)\bUSD\b`), "$"},
	{regexp.MustCompile(`(?i)\bEUR\b`), "€"},
	{regexp.MustCompile(`(?i)\bGBP\b`), "£"},
	{regexp.MustCompile(`(?i)PAKISTAN`), "PKR"},
	{regexp.MustCompile(`(?i)LAHORE`), "PKR"},
	{regexp.MustCompile(`(?i)USA`), "$"},
	{regexp.MustCompile(`(?i)UK`), "£"},
	{regexp.MustCompile(`(?i)IRELAND`), "€"},
	{regexp.MustCompile(`(?i)DUBLIN`), "€"},
	{regexp.MustCompile(`(?i)CANADA`), "CAD"},
}

// DetectCurrency infers a currency symbol from symbol, code, or geographic
// cues in the text. It returns "" when nothing matches; an undetermined
// currency is a valid outcome, not an error.
func DetectCurrency(text string) string {
	for _, p := range currencyPatterns {
		if p.re.MatchString(text) {
			return p.symbol
		}
	}
	return ""
}
