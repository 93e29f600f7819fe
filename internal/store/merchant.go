package store

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	merchantDigits  = regexp.MustCompile(`\d{4,}`)
	merchantSpecial = regexp.MustCompile(`[^\w\s&'-]`)
)

var titleCaser = cases.Title(language.English)

// DeriveMerchant guesses a display name for a scan from the first plausible
// line of the recognized text. Returns "Unknown Merchant" when nothing fits.
func DeriveMerchant(rawText string) string {
	for _, line := range strings.Split(rawText, "\n") {
		name := formatMerchantName(line)
		if len(name) > 2 {
			return name
		}
	}
	return "Unknown Merchant"
}

// formatMerchantName formats a raw header line for display.
func formatMerchantName(raw string) string {
	cleaned := merchantDigits.ReplaceAllString(raw, "")
	cleaned = merchantSpecial.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	words := strings.Fields(cleaned)
	for i, word := range words {
		if len(word) > 2 {
			words[i] = titleCaser.String(strings.ToLower(word))
		} else {
			words[i] = strings.ToUpper(word)
		}
	}

	result := strings.Join(words, " ")
	if len(result) > 50 {
		result = result[:50]
	}
	return result
}
