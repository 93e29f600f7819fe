package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
	"github.com/shopspring/decimal"
)

// denylistMarkers marks a line as non-item metadata when any of them appears
// as a substring of the upper-cased line: totals/tax/payment vocabulary,
// identifiers, account and terminal vocabulary, card brands, software
// strings, table headers, address tokens, and unit tokens.
var denylistMarkers = []string{
	"SUBTOTAL", "NET AMOUNT", "TAX", "CASH", "CHANGE", "CREDIT", "BALANCE",
	"TEL", "FAX", "PHONE", "CONTACT", "HELPLINE", "NTN", "STRN", "TRN", "GST", "FBR",
	"DATE", "TIME", "BILL", "ORDER", "RECEIPT", "ST#", "OP#", "TE#", "TR#", "TC#", "REF #",
	"CUSTOMER", "USER", "CASHIER", "ACCOUNT", "APPROVAL", "TERMINAL", "MERCHANT",
	"VISA", "MASTERCARD", "AMEX", "SOFTWARE", "POWERED BY", "VERSION",
	"QTY", "DESCRIPTION", "PRICE", "AMOUNT", "ITEM", "TOTAL",
	"STREET", "AVENUE", "ROAD", "DUBLIN", "IRELAND", "PAYMENT METHOD", "VAT", "CARD", "INVOICE",
	"SOLD", "COPY", "STORE", "LB", "KG",
	"MANAGER", "CITY", "STATE", "ZIP", "LANE", "DRIVE", "BLVD", "HWY", "WALL ST",
}

// denyMatcher finds any denylist marker in a single pass over the line.
var denyMatcher = ahocorasick.NewStringMatcher(denylistMarkers)

var (
	// Trailing price token, anchored at line end: thousands separators, an
	// optional two-digit fraction, and up to three letters of currency code.
	priceAtEndRe = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*[A-Z]{0,3}$`)

	// Stricter fallback requiring an explicit two-digit fraction.
	strictPriceRe = regexp.MustCompile(`(\d{1,5}\.\d{2})\s*[A-Z]{0,3}$`)

	// Numeric value within a matched price span.
	priceValueRe = regexp.MustCompile(`[\d,]+(?:\.\d{2})?`)

	postalCodeRe = regexp.MustCompile(`^\d{5}$`)
	yearRe       = regexp.MustCompile(`^(?:19|20)\d{2}$`)

	longDigitRunRe  = regexp.MustCompile(`\d{5,}`)
	trailingJunkRe  = regexp.MustCompile(`[\d.#*\-:]+$`)
	containsUpperRe = regexp.MustCompile(`[A-Z]`)
)

// ParseLineItems segments text into purchased items with prices, preserving
// top-to-bottom order. Each line is trimmed and upper-cased before matching;
// the upper-cased form is also the emitted item name. Lines are rejected at
// the first failing guard: too short, denylisted, no trailing price, price
// fails the sanity filters, or no usable name remains.
func ParseLineItems(text string) []LineItem {
	items := []LineItem{}
	for _, line := range strings.Split(text, "\n") {
		if item, ok := parseItemLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseItemLine(line string) (LineItem, bool) {
	clean := strings.ToUpper(strings.TrimSpace(line))
	if utf8.RuneCountInString(clean) < 4 {
		return LineItem{}, false
	}
	if len(denyMatcher.Match([]byte(clean))) > 0 {
		return LineItem{}, false
	}

	loc := priceAtEndRe.FindStringIndex(clean)
	if loc == nil {
		loc = strictPriceRe.FindStringIndex(clean)
	}
	if loc == nil {
		return LineItem{}, false
	}

	price, ok := priceToken(clean[loc[0]:loc[1]])
	if !ok {
		return LineItem{}, false
	}

	name := itemName(clean[:loc[0]])
	if utf8.RuneCountInString(name) <= 2 || !containsUpperRe.MatchString(name) {
		return LineItem{}, false
	}

	return LineItem{Name: name, Price: price, Qty: 1}, true
}

// priceToken extracts the numeric value from a matched price span and applies
// the sanity filters that separate prices from postal codes, bare counts,
// and calendar years.
func priceToken(span string) (string, bool) {
	raw := priceValueRe.FindString(span)
	if raw == "" {
		return "", false
	}
	price := strings.ReplaceAll(raw, ",", "")

	// Five digits with no fraction reads as a postal code, not a price.
	if postalCodeRe.MatchString(price) {
		return "", false
	}
	v, err := decimal.NewFromString(price)
	if err != nil || v.IsZero() {
		return "", false
	}
	// Small whole numbers are quantities or counts, not prices.
	if v.LessThan(decimal.NewFromInt(10)) && !strings.Contains(price, ".") {
		return "", false
	}
	if yearRe.MatchString(price) {
		return "", false
	}
	return price, true
}

// itemName derives the item name from the text preceding the price: long
// digit runs (phone and reference numbers) are removed and trailing
// separator punctuation is trimmed.
func itemName(prefix string) string {
	name := longDigitRunRe.ReplaceAllString(strings.TrimSpace(prefix), "")
	name = trailingJunkRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
