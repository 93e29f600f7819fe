package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Stage 1: explicit total phrases. High confidence — these rarely label
	// anything but the amount owed.
	statedTotalRe = regexp.MustCompile(
		`(?i)(?:NET AMOUNT|GRAND TOTAL|AMOUNT DUE|TOTAL PAYABLE|BALANCE DUE|TOTAL PAID)[^\d]*([\d,]+(?:\.\d{2})?)`)

	// Stage 2: the bare word TOTAL, unless it heads a count line such as
	// "Total Qty 3". RE2 has no negative lookahead, so occurrences are
	// located first and the count words are rejected separately.
	totalWordRe   = regexp.MustCompile(`(?i)\bTOTAL\b`)
	countLabelRe  = regexp.MustCompile(`^\s+(?i:QTY|ITEMS?|COUNT|CNTS)`)
	amountAfterRe = regexp.MustCompile(`^[^\d]*([\d,]+(?:\.\d{2})?)`)
)

// ExtractTotal finds the receipt's stated total. It prefers explicit phrases
// like GRAND TOTAL or AMOUNT DUE and falls back to the bare word TOTAL,
// skipping "Total Qty"-style item counts. The result is a decimal string with
// two fractional digits and no thousands separators; "0.00" when no total
// can be found.
func ExtractTotal(text string) string {
	if m := statedTotalRe.FindStringSubmatch(text); m != nil {
		if v, ok := normalizeAmount(m[1]); ok {
			return v
		}
	}

	for _, loc := range totalWordRe.FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		if countLabelRe.MatchString(rest) {
			continue
		}
		m := amountAfterRe.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		if v, ok := normalizeAmount(m[1]); ok {
			return v
		}
	}

	return DefaultTotal
}

// normalizeAmount strips thousands separators and reformats the token to two
// fractional digits. Tokens that do not parse are discarded.
func normalizeAmount(token string) (string, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
	if err != nil {
		return "", false
	}
	return d.StringFixed(2), true
}
