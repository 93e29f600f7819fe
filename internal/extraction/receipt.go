// Package extraction turns raw OCR text into a structured receipt record
// using deterministic, rule-based parsing. Every stage degrades to a default
// value instead of failing, so a single pass over arbitrary text always
// yields a complete record.
package extraction

import (
	"strings"
)

// LineItem is a purchased product or service inferred from one line of text.
// Qty is always 1; multi-quantity detection is not attempted.
type LineItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}

// Receipt is the structured result of extracting one receipt text.
// It is constructed once and never mutated afterwards.
type Receipt struct {
	Total    string     `json:"total"`
	Date     string     `json:"date"`
	Category string     `json:"category"`
	Currency string     `json:"currency"`
	Items    []LineItem `json:"items"`
	RawText  string     `json:"raw_text"`
}

// Defaults used when a stage finds nothing.
const (
	DefaultTotal    = "0.00"
	DefaultDate     = "Unknown"
	DefaultCategory = "EXPENSE"
)

// Extract runs the full pipeline over raw OCR text: currency detection,
// total extraction, line-item parsing, date extraction, categorization, and
// finally reconciliation of the stated total against the item sum.
//
// The only failure is ErrEmptyText for empty or whitespace-only input; an
// empty receipt is otherwise indistinguishable from one with no discernible
// content. All other inputs produce a well-formed record.
func Extract(text string) (*Receipt, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	items := ParseLineItems(text)
	total := Reconcile(ExtractTotal(text), items)

	return &Receipt{
		Total:    total,
		Date:     ExtractDate(text),
		Category: Classify(text),
		Currency: DetectCurrency(text),
		Items:    items,
		RawText:  text,
	}, nil
}
